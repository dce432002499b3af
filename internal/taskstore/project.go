package taskstore

import "fmt"

// Row is one rendered line of the list. Priority is carried so views can
// color a row without a second read.
type Row struct {
	Label    string
	Index    int
	Selected bool
	Priority float64
}

func Label(t Task) string {
	return fmt.Sprintf("%s | Due: %d | Diff: %d | Prio: %.2f", t.Description, t.DaysUntilDue, t.Difficulty, t.Priority)
}

// Project renders the current list. Views call it after every operation;
// the store never pushes updates.
func (s *Store) Project() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]Row, len(s.tasks))
	for i, t := range s.tasks {
		rows[i] = Row{
			Label:    Label(t),
			Index:    i,
			Selected: i == s.selected,
			Priority: t.Priority,
		}
	}
	return rows
}
