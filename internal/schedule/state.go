package schedule

// State of a Scheduler.
//
//	Idle -> Armed -> Fired -> Armed -> ...
//	any  -> Cancelled (terminal)
type State int

const (
	StateIdle State = iota
	StateArmed
	StateFired
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateFired:
		return "fired"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
