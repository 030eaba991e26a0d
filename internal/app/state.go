// Package app provides the application driver: the loop that pulls
// terminal events, drains the bus, and advances the screen stack.
package app

// RunState is the application's lifecycle phase.
type RunState int

const (
	// Pending is the state before the terminal has been entered.
	Pending RunState = iota
	// Running is normal operation.
	Running
	// Closing means finish the current screen's closing sequence, then
	// proceed up the stack.
	Closing
	// Quitting means tear down immediately, skipping per-screen closing.
	Quitting
	// Finished is terminal: the run loop must exit.
	Finished
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Quitting:
		return "quitting"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
