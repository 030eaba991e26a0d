// Package event defines the messages exchanged between the terminal event
// source, the application driver and the screens, along with the unbounded
// bus that carries them.
package event

import "github.com/gdamore/tcell/v2"

// Event is the single message type that flows through the Bus. The concrete
// types below group by origin: terminal, application, and screen.
type Event interface {
	event()
}

// Terminal-origin events, produced by tui.Source.

// Hello is emitted exactly once when the event source starts. It is a
// liveness probe: the driver logs it and never forwards it.
type Hello struct{}

// Tick is the fixed-rate application-logic pulse.
type Tick struct{}

// Render is the fixed-rate draw pulse, independent of Tick.
type Render struct{}

// Resize reports the new terminal dimensions.
type Resize struct {
	Width  int
	Height int
}

// Key carries a single key press.
type Key struct {
	Key *tcell.EventKey
}

// Mouse carries a single mouse action.
type Mouse struct {
	Mouse *tcell.EventMouse
}

// Paste carries the full text of one bracketed paste.
type Paste struct {
	Text string
}

// FocusChanged reports the terminal gaining or losing focus.
type FocusChanged struct {
	Gained bool
}

// Application-origin events.

// Close requests a graceful shutdown: screens get to run their closing
// sequences before the application exits.
type Close struct{}

// Quit requests an immediate shutdown, skipping per-screen closing logic.
type Quit struct{}

// ErrorOccurred reports a recoverable error by message.
type ErrorOccurred struct {
	Message string
}

// UserInputs is the ordered batch of raw input events buffered between two
// ticks, flushed as a unit.
type UserInputs struct {
	Inputs []Event
}

// Screen-origin events, sent by the active screen through its bus sender.

// CloseActiveScreen asks the stack to begin closing the active screen.
type CloseActiveScreen struct{}

// Finish declares the active screen fully done; it may be popped without
// running its close logic again.
type Finish struct{}

// Rename changes the active screen's title.
type Rename struct {
	Title string
}

// CreateChild asks the stack to push a new screen above the active one.
// Screen holds a screen.Screen; the concrete type lives a package up to
// keep this package free of UI dependencies.
type CreateChild struct {
	Screen any
}

func (Hello) event()             {}
func (Tick) event()              {}
func (Render) event()            {}
func (Resize) event()            {}
func (Key) event()               {}
func (Mouse) event()             {}
func (Paste) event()             {}
func (FocusChanged) event()      {}
func (Close) event()             {}
func (Quit) event()              {}
func (ErrorOccurred) event()     {}
func (UserInputs) event()        {}
func (CloseActiveScreen) event() {}
func (Finish) event()            {}
func (Rename) event()            {}
func (CreateChild) event()       {}

// Noisy reports whether an event arrives at tick or frame frequency and
// should be kept out of the log.
func Noisy(ev Event) bool {
	switch ev.(type) {
	case Tick, Render:
		return true
	}
	return false
}
