package cli

import "github.com/spf13/cobra"

func newEncodeCmd(a *app) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "encode [ULID...]",
		Short: "Convert ULIDs to compact IDs",
		Long: `Convert ULIDs to compact IDs.

ULIDs are read from the arguments, or one per line from stdin when none are given.`,
		Example: `  ulidsq encode 01ARZ3NDEKTSV4RRFFQ69G5FAV
  cat ids.txt | ulidsq encode --keep-going --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := a.compactCodec()
			if err != nil {
				return err
			}
			return a.runBatch(cmd, args, "encoded", keepGoing, codec.Encode)
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Report invalid inputs and continue")
	return cmd
}
