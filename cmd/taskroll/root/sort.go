package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskroll/internal/ui"
)

func newSortCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "List the seed tasks by priority, highest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			sess.store.Sort()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSort, "By priority"))
			printRows(cmd.OutOrStdout(), sess.store.Project())
			return nil
		},
	}

	return cmd
}
