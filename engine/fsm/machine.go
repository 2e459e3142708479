package fsm

import "fmt"

// Machine is a flat finite state machine over context type T
type Machine[T any] struct {
	nodes map[StateID]*Node[T]

	// InitialStateID is entered by Init and Reset
	InitialStateID StateID

	activeStateID StateID
	transitions   int
}

// NewMachine creates a new FSM instance
func NewMachine[T any](initial StateID) *Machine[T] {
	return &Machine[T]{
		nodes:          make(map[StateID]*Node[T]),
		InitialStateID: initial,
	}
}

// AddState registers a node with optional entry actions
func (m *Machine[T]) AddState(id StateID, name string, onEnter ...ActionFunc[T]) {
	m.nodes[id] = &Node[T]{
		ID:          id,
		Name:        name,
		OnEnter:     onEnter,
		Transitions: make(map[Trigger]Transition[T]),
	}
}

// AddTransition links from to target on trigger; guard may be nil
func (m *Machine[T]) AddTransition(from StateID, trigger Trigger, target StateID, guard GuardFunc[T]) error {
	node, ok := m.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownState, from)
	}
	if _, ok := m.nodes[target]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownState, target)
	}
	node.Transitions[trigger] = Transition[T]{TargetID: target, Guard: guard}
	return nil
}

// Init enters the initial state, running its entry actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("%w: initial %d", ErrUnknownState, m.InitialStateID)
	}
	m.enter(ctx, node)
	return nil
}

// Fire evaluates trigger against the active state
// Guard errors are returned unchanged so callers can match sentinels
func (m *Machine[T]) Fire(ctx T, trigger Trigger) error {
	node := m.nodes[m.activeStateID]
	if node == nil {
		return fmt.Errorf("%w: active %d", ErrUnknownState, m.activeStateID)
	}
	tr, ok := node.Transitions[trigger]
	if !ok {
		return fmt.Errorf("%w: %d from %s", ErrNoTransition, trigger, node.Name)
	}
	if tr.Guard != nil {
		if err := tr.Guard(ctx); err != nil {
			return err
		}
	}
	m.enter(ctx, m.nodes[tr.TargetID])
	m.transitions++
	return nil
}

func (m *Machine[T]) enter(ctx T, node *Node[T]) {
	m.activeStateID = node.ID
	for _, action := range node.OnEnter {
		action(ctx)
	}
}

// Current returns the active state
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// StateName returns the display name of a state
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return "unknown"
}

// Transitions returns how many transitions fired since creation
func (m *Machine[T]) Transitions() int {
	return m.transitions
}
