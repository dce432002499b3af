package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskroll/internal/schedule"
	"taskroll/internal/taskstore"
)

// RunBoard opens the board on out. When sched is non-nil it is started
// with a callback that rolls the store over and tells the board to
// re-pull; it is stopped before RunBoard returns.
func RunBoard(ctx context.Context, store *taskstore.Store, sched *schedule.Scheduler, in io.Reader, out io.Writer) error {
	m := newBoardModel(store)
	if sched != nil {
		m.nextFire = sched.NextFire
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(out), tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	p := tea.NewProgram(m, opts...)

	if sched != nil {
		err := sched.Start(ctx, func(at time.Time) {
			n := store.Rollover()
			p.Send(rolloverMsg{at: at, decremented: n})
		})
		if err != nil {
			return err
		}
		defer sched.Stop()
	}

	_, err := p.Run()
	return err
}
