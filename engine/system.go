package engine

import "time"

// System is one ordered step of the per-tick update
type System interface {
	// Name returns system's name
	Name() string
	// Priority orders systems ascending, see constant.Priority*
	Priority() int
	// Update mutates state for one tick of dt simulated time
	Update(s *State, dt time.Duration)
}
