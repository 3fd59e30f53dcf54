package cli

import "github.com/spf13/cobra"

func newDecodeCmd(a *app) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "decode [COMPACT...]",
		Short: "Convert compact IDs back to ULIDs",
		Long: `Convert compact IDs back to ULIDs.

Compact IDs are read from the arguments, or one per line from stdin when none
are given. Decoding only succeeds with the alphabet, minimum length and
blocklist that produced the ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := a.compactCodec()
			if err != nil {
				return err
			}
			return a.runBatch(cmd, args, "decoded", keepGoing, codec.Decode)
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Report malformed inputs and continue")
	return cmd
}
