package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/elemwise/backend/cpu"
)

func newPathCmd(opts *globalOptions) *cobra.Command {
	flags := &callFlags{}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the execution strategy a binary call would use",
		Example: `  elemwise path --a 1,2,3,4,5,6 --a-shape 2,3 --b 1,2,3
  elemwise path --a 1,2 --a-shape 2,1 --b 1,2,3 --b-shape 1,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops, err := flags.build()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cpu.SelectPath(ops.a, ops.b, ops.out))
			return nil
		},
	}
	flags.register(cmd, false)
	return cmd
}
