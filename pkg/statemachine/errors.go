package statemachine

import (
	"errors"
	"fmt"
)

// ErrNoTransition means the current state has no transition for the event.
type ErrNoTransition struct {
	State string
	Event string
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.State, e.Event)
}

// ErrDuplicateTransition means a state already has a transition for the event.
type ErrDuplicateTransition struct {
	State    string
	Event    string
	Existing string
}

func (e *ErrDuplicateTransition) Error() string {
	return fmt.Sprintf("state '%s' already moves to '%s' on event '%s'", e.State, e.Existing, e.Event)
}

func IsNoTransitionError(err error) bool {
	var e *ErrNoTransition
	return errors.As(err, &e)
}

func IsDuplicateTransitionError(err error) bool {
	var e *ErrDuplicateTransition
	return errors.As(err, &e)
}
