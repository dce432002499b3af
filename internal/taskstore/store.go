package taskstore

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
)

const noSelection = -1

// Store owns the ordered task list and the selection cursor. Every
// mutation runs under the write lock so a scheduled rollover can never
// interleave with a view action.
type Store struct {
	mu       sync.RWMutex
	tasks    []Task
	selected int

	logger *slog.Logger
	newID  func() string
}

type Options struct {
	// Logger receives debug records for each mutation. Defaults to slog.Default().
	Logger *slog.Logger
}

func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		selected: noSelection,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Add appends a task built from raw form text. Invalid input leaves the
// list untouched and returns a *ValidationError. Selection is not changed.
func (s *Store) Add(description, dueText, difficultyText string) (Task, error) {
	in, err := parseAddInput(description, dueText, difficultyText)
	if err != nil {
		s.logger.Debug("task rejected", "error", err)
		return Task{}, err
	}

	t := Task{
		ID:           s.newID(),
		Description:  in.description,
		DaysUntilDue: in.daysUntilDue,
		Difficulty:   in.difficulty,
	}
	t.recompute()

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()

	s.logger.Debug("task added", "id", t.ID, "due", t.DaysUntilDue, "difficulty", int(t.Difficulty), "priority", t.Priority)
	return t, nil
}

// Remove deletes the selected task and clears the selection. It reports
// false when nothing was removed.
func (s *Store) Remove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == noSelection {
		return false
	}
	idx := s.selected
	s.selected = noSelection
	if idx < 0 || idx >= len(s.tasks) {
		return false
	}

	removed := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.logger.Debug("task removed", "id", removed.ID, "index", idx)
	return true
}

// Select toggles the selection: picking the selected row clears it,
// picking any other row moves it there. Indices outside the list are
// ignored and report false.
func (s *Store) Select(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.tasks) {
		return false
	}
	if s.selected == index {
		s.selected = noSelection
	} else {
		s.selected = index
	}
	return true
}

// Sort orders tasks by priority, highest first. Equal priorities keep
// their relative order. The selection is cleared.
func (s *Store) Sort() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Priority > s.tasks[j].Priority
	})
	s.selected = noSelection
}

// Rollover ages every task by one day and recomputes priorities. It
// returns how many due counts were decremented. Selection is kept since
// the order does not change.
func (s *Store) Rollover() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.tasks {
		if s.tasks[i].age() {
			n++
		}
	}
	s.logger.Info("rollover applied", "tasks", len(s.tasks), "decremented", n)
	return n
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Tasks returns a copy of the list in its current order.
func (s *Store) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Selected() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}
