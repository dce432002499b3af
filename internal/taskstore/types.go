package taskstore

type Difficulty int

const (
	DifficultyTrivial Difficulty = 1
	DifficultyEasy    Difficulty = 2
	DifficultyMedium  Difficulty = 3
	DifficultyHard    Difficulty = 4
	DifficultyEpic    Difficulty = 5
)

func (d Difficulty) IsValid() bool {
	return d >= DifficultyTrivial && d <= DifficultyEpic
}

// Task is one entry in the list. Priority is derived from Difficulty and
// DaysUntilDue; callers only ever see copies handed out by the Store.
type Task struct {
	ID           string
	Description  string
	DaysUntilDue int
	Difficulty   Difficulty
	Priority     float64
}

// PriorityFor returns difficulty/days for days > 0, otherwise difficulty.
func PriorityFor(difficulty Difficulty, daysUntilDue int) float64 {
	if daysUntilDue > 0 {
		return float64(difficulty) / float64(daysUntilDue)
	}
	return float64(difficulty)
}

func (t *Task) recompute() {
	t.Priority = PriorityFor(t.Difficulty, t.DaysUntilDue)
}

// age moves the task one day closer to due, never below zero.
func (t *Task) age() bool {
	decremented := false
	if t.DaysUntilDue > 0 {
		t.DaysUntilDue--
		decremented = true
	}
	t.recompute()
	return decremented
}
