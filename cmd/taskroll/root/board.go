package root

import (
	"io"

	"github.com/spf13/cobra"

	"taskroll/internal/schedule"
	"taskroll/internal/tui"
)

func newBoardCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the task board",
		Long: `Open the interactive task board.

The midnight scheduler runs while the board is open: at every local
midnight each task's due count drops by one and priorities are recomputed.
Logs go to log.file, or nowhere, since the board owns the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := openSession(opts, io.Discard)
			if err != nil {
				return err
			}
			defer cleanup()

			var sched *schedule.Scheduler
			if sess.cfg.Scheduler.Enabled {
				sched = schedule.New(schedule.Options{Logger: sess.logger})
			}
			return tui.RunBoard(cmd.Context(), sess.store, sched, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	return cmd
}
