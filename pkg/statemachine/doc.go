// Package statemachine implements a small generic finite state machine.
//
// States and events are any comparable types, typically string-based
// constants:
//
//	type Status string
//	type Event string
//
//	m := statemachine.MustNew[Status, Event]("idle",
//		statemachine.WithTransition[Status, Event]("idle", "sending", "submit"),
//		statemachine.WithTransition[Status, Event]("sending", "success", "succeed"),
//	)
//	err := m.Fire(ctx, "submit", nil)
//
// A state has at most one transition per event; New rejects duplicates.
// Fire is atomic: concurrent callers observe each transition exactly once,
// which makes the machine usable as a gate for in-flight operations.
package statemachine
