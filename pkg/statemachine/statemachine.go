package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Action runs before the state changes. An error aborts the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E, data any) error

// Transition moves From to To when Event fires.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Actions []Action[S, E]
}

// Machine is a thread-safe in-memory finite state machine.
// Each state has at most one transition per event.
type Machine[S, E comparable] struct {
	mu          sync.RWMutex
	current     S
	transitions map[S]map[E]Transition[S, E]
}

// New creates a machine in initial state. It returns ErrDuplicateTransition
// when two options register the same from state and event.
func New[S, E comparable](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	m := &Machine[S, E]{
		current:     initial,
		transitions: make(map[S]map[E]Transition[S, E]),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Machine[S, E]) add(t Transition[S, E]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[t.From]
	if !ok {
		byEvent = make(map[E]Transition[S, E])
		m.transitions[t.From] = byEvent
	}
	if existing, ok := byEvent[t.Event]; ok {
		return &ErrDuplicateTransition{
			State:    fmt.Sprint(t.From),
			Event:    fmt.Sprint(t.Event),
			Existing: fmt.Sprint(existing.To),
		}
	}
	byEvent[t.Event] = t
	return nil
}

// Fire applies event atomically: actions first, then the state change.
// It returns ErrNoTransition when the current state has no transition for
// event.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.transitions[m.current][event]
	if !ok {
		return &ErrNoTransition{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
	}

	for _, action := range t.Actions {
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}
