package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskroll/internal/ui"
)

func newAddCmd(opts *globalOptions) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "add <description> <due-days> <difficulty>",
		Short: "Preview a task's priority against the seed list",
		Long: `Add a task to the seed list and print the result.

Nothing is saved: the list lives only for this command. Difficulty is
1-5 and due-days must not be negative.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("description, due-days and difficulty are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := sess.store.Add(args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("task not added: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconPlus+" Added"), t.Description, ui.Muted.Render(fmt.Sprintf("(prio %.2f)", t.Priority)))
			if sorted {
				sess.store.Sort()
			}
			printRows(cmd.OutOrStdout(), sess.store.Project())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&sorted, "sort", "s", false, "Sort by priority before printing")

	return cmd
}
