package root

import (
	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the seed tasks from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			printRows(cmd.OutOrStdout(), sess.store.Project())
			return nil
		},
	}

	return cmd
}
