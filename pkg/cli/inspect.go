package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ulidsq/ulidsq/internal/id"
	"github.com/ulidsq/ulidsq/pkg/cli/internal/output"
)

// inspectOutput is the JSON form of inspect.
type inspectOutput struct {
	ULID       string `json:"ulid"`
	Compact    string `json:"compact"`
	Timestamp  uint64 `json:"timestamp"`
	Time       string `json:"time"`
	Randomness string `json:"randomness"`
	High       uint64 `json:"high"`
	Low        uint64 `json:"low"`
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <ULID|COMPACT>",
		Short: "Show the fields encoded in an identifier",
		Long: `Show the timestamp and randomness fields of an identifier.

The argument may be a ULID or a compact ID; compact IDs are decoded first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := a.compactCodec()
			if err != nil {
				return err
			}

			ulid, short := args[0], ""
			if id.IsValidULID(ulid) {
				if short, err = codec.Encode(ulid); err != nil {
					return err
				}
			} else {
				short = args[0]
				if ulid, err = codec.Decode(short); err != nil {
					return err
				}
			}

			d, err := id.Parse(ulid)
			if err != nil {
				return err
			}
			ts, err := id.ULIDTime(ulid)
			if err != nil {
				return err
			}

			out := inspectOutput{
				ULID:       ulid,
				Compact:    short,
				Timestamp:  d.Timestamp,
				Time:       ts.UTC().Format(time.RFC3339Nano),
				Randomness: fmt.Sprintf("%020x", d.Randomness()),
				High:       d.High,
				Low:        d.Low,
			}
			if a.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), out)
			}

			w := output.Table(cmd.OutOrStdout())
			fmt.Fprintf(w, "ULID:\t%s\n", out.ULID)
			fmt.Fprintf(w, "Compact:\t%s\n", out.Compact)
			fmt.Fprintf(w, "Timestamp:\t%d (%s)\n", out.Timestamp, out.Time)
			fmt.Fprintf(w, "Randomness:\t%s\n", out.Randomness)
			fmt.Fprintf(w, "  High:\t%d\n", out.High)
			fmt.Fprintf(w, "  Low:\t%d\n", out.Low)
			return w.Flush()
		},
	}
}
