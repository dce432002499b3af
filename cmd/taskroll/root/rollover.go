package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskroll/internal/ui"
)

func newRolloverCmd(opts *globalOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "rollover",
		Short: "Simulate midnight rollovers on the seed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return errors.New("--days must be at least 1")
			}
			sess, cleanup, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconList, "Today"))
			printRows(out, sess.store.Project())
			for day := 1; day <= days; day++ {
				n := sess.store.Rollover()
				fmt.Fprintln(out, "")
				fmt.Fprintf(out, "%s %s\n", ui.Heading(ui.IconLoop, fmt.Sprintf("Day +%d", day)), ui.Muted.Render(fmt.Sprintf("(%d due dates moved)", n)))
				printRows(out, sess.store.Project())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 1, "Number of midnights to simulate")

	return cmd
}
