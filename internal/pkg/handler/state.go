package handler

// State is the lifecycle state of one stream call.
type State int32

// Lifecycle states. Closed and Rejected are terminal.
const (
	StateOpening State = iota
	StateActive
	StateClosed
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateOpening:
		return "OPENING"
	case StateActive:
		return "ACTIVE"
	case StateClosed:
		return "CLOSED"
	case StateRejected:
		return "REJECTED"
	}
	return "UNKNOWN"
}

// Terminal reports whether no further transitions are possible from s.
func (s State) Terminal() bool {
	return s == StateClosed || s == StateRejected
}
