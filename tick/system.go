// Package tick runs a fixed sequence of systems once per tick, either on
// demand with Once or at a fixed interval with Run. It is single-threaded:
// systems execute in registration order on the caller's goroutine.
package tick

// System is one phase of a tick. Systems may hold Resource fields, which the
// Scheduler wires up on Register, and any state they want to keep between
// ticks.
type System interface {
	Execute(frame *Frame)
}
