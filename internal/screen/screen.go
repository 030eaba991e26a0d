// Package screen defines the page abstraction the launcher hosts (welcome
// menu, game select, per-game setup, popups) and the stack manager that
// owns their lifetime and routes events to the active one.
package screen

import (
	"errors"
	"fmt"

	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/tui"
)

// ErrNoScreens is returned when an event is routed while the stack is
// empty. This never happens in normal running operation; seeing it means
// the application drained its screens without finishing.
var ErrNoScreens = errors.New("no screens left in stack to receive events")

// RunState is the lifecycle phase of a screen or of the stack itself.
type RunState int

const (
	// Running is normal operation.
	Running RunState = iota
	// Closing means the closing sequence has begun but is not done.
	Closing
	// Finished is terminal: a finished screen is popped and dropped.
	Finished
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is the per-instance data that accompanies every screen: its title,
// run state, whether it renders as a popup over its parent, and the
// pending-child slot used to request navigation.
type State struct {
	Title string
	Run   RunState
	Popup bool

	child Screen
}

// SpawnChild requests that a screen be pushed above this one on the next
// stack update. The slot overwrites: setting it twice before an update
// keeps only the most recent value.
func (s *State) SpawnChild(child Screen) {
	s.child = child
}

// takeChild consumes the pending-child slot, guaranteeing at most one
// spawn per update pass.
func (s *State) takeChild() (Screen, bool) {
	if s.child == nil {
		return nil, false
	}
	child := s.child
	s.child = nil
	return child, true
}

// transition moves the run state, rejecting any attempt to leave Finished.
func (s *State) transition(to RunState) error {
	if s.Run == Finished && to != Finished {
		return fmt.Errorf("illegal screen run-state transition: %s -> %s", s.Run, to)
	}
	s.Run = to
	return nil
}

// Screen is the contract every page implements. Hooks receive the screen's
// own State and a bus sender; they must not block, since the driver calls
// them synchronously from its loop.
type Screen interface {
	// InitialState is called exactly once, at push time.
	InitialState() State

	// HandleEvent reacts to one routed event. It may mutate state
	// (including SpawnChild) and send new events onto the bus.
	HandleEvent(st *State, send event.Sender, ev event.Event) error

	// Update is the per-loop advance hook, called while the screen is
	// Running or finishing its Closing work.
	Update(st *State, send event.Sender) error

	// Render draws into the provided frame only. Siblings and parents may
	// draw into the same terminal buffer (popups over dimmed parents).
	Render(st *State, f *tui.Frame)

	// Close begins the screen's teardown. The default sends Finish
	// immediately; screens with cleanup work override it.
	Close(st *State, send event.Sender) error
}

// Base supplies default hook implementations for screens that need no
// per-loop logic or teardown. Embedding screens still provide InitialState
// and Render.
type Base struct{}

// HandleEvent ignores the event.
func (Base) HandleEvent(*State, event.Sender, event.Event) error { return nil }

// Update does nothing.
func (Base) Update(*State, event.Sender) error { return nil }

// Close finishes immediately.
func (Base) Close(st *State, send event.Sender) error {
	return send.Send(event.Finish{})
}
