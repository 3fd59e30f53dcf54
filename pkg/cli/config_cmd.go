package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ulidsq/ulidsq/pkg/cli/internal/output"
	"github.com/ulidsq/ulidsq/pkg/cliconfig"
)

// configOutput is the JSON form of config.
type configOutput struct {
	Config  *cliconfig.CLIConfig `json:"config"`
	Sources map[string]string    `json:"sources"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if a.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), configOutput{Config: cfg, Sources: cfg.Sources})
			}

			blocklist := "default"
			switch {
			case cfg.DisableBlocklist:
				blocklist = "disabled"
			case len(cfg.Blocklist) > 0:
				blocklist = strings.Join(cfg.Blocklist, ",")
			}

			w := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
			fmt.Fprintf(w, "alphabet\t%s\t%s\n", cfg.Alphabet, cfg.Sources["alphabet"])
			fmt.Fprintf(w, "minLength\t%d\t%s\n", cfg.MinLength, cfg.Sources["minLength"])
			fmt.Fprintf(w, "blocklist\t%s\t%s\n", blocklist, cfg.Sources["blocklist"])
			fmt.Fprintf(w, "logLevel\t%s\t%s\n", cfg.LogLevel, cfg.Sources["logLevel"])
			fmt.Fprintf(w, "logFormat\t%s\t%s\n", cfg.LogFormat, cfg.Sources["logFormat"])
			return w.Flush()
		},
	}
}
