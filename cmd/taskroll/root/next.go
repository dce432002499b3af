package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskroll/internal/schedule"
	"taskroll/internal/ui"
)

func newNextCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show when the next midnight rollover fires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if from != "" {
				t, err := time.ParseInLocation("2006-01-02T15:04:05", from, time.Local)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				now = t
			}

			next := schedule.NextMidnight(now)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Next rollover"))
			fmt.Fprintln(out, ui.LabelValue("At", next.Format("Mon 2006-01-02 15:04:05 MST")))
			fmt.Fprintln(out, ui.LabelValue("In", next.Sub(now).Round(time.Second)))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Reference local time (2006-01-02T15:04:05) instead of now")

	return cmd
}
