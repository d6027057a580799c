package session

// State is the lifecycle state of a study session.
type State int

const (
	StateStarting  State = iota // start-session call in flight
	StateActive                 // countdown running
	StatePaused                 // countdown frozen, local only
	StateEnding                 // complete-session call in flight
	StateCompleted              // terminal
	StateFailed                 // terminal
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateEnding:
		return "ending"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}
