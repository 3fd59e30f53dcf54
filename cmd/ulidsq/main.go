// ulidsq CLI - convert ULIDs to compact Sqids strings and back
package main

import "github.com/ulidsq/ulidsq/pkg/cli"

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
