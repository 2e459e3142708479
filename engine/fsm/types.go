package fsm

import "errors"

// StateID is a unique identifier for a node
type StateID int

// Trigger names a command that may cause a transition
type Trigger int

// GuardFunc vetoes a transition by returning a non-nil error
type GuardFunc[T any] func(ctx T) error

// ActionFunc runs on state entry
type ActionFunc[T any] func(ctx T)

// Node represents a state in the machine
type Node[T any] struct {
	ID      StateID
	Name    string
	OnEnter []ActionFunc[T]

	// Transitions keyed by trigger
	Transitions map[Trigger]Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = Always true
}

var (
	ErrUnknownState = errors.New("fsm: unknown state")
	ErrNoTransition = errors.New("fsm: no transition for trigger")
)
