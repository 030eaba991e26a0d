package screen

import (
	"log"

	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/tui"
)

// Stack owns the ordered collection of live screens. The last element is
// the active screen: it renders and receives routed events. Exactly one
// goroutine, the application driver, ever calls into a Stack.
type Stack struct {
	run     RunState
	handles []*Handle
	send    event.Sender
}

// NewStack constructs an empty, running stack whose screens will send
// events through send.
func NewStack(send event.Sender) *Stack {
	return &Stack{run: Running, send: send}
}

// Push constructs a handle for sc and makes it the active screen.
func (s *Stack) Push(sc Screen) *Handle {
	h := NewHandle(sc, s.send)
	s.handles = append(s.handles, h)
	log.Printf("pushed screen %q (%s), stack depth %d", h.Title(), h.ID, len(s.handles))
	return h
}

// Pop removes and returns the active screen, or nil if the stack is empty.
func (s *Stack) Pop() *Handle {
	if len(s.handles) == 0 {
		return nil
	}
	h := s.handles[len(s.handles)-1]
	s.handles = s.handles[:len(s.handles)-1]
	log.Printf("popped screen %q (%s), stack depth %d", h.Title(), h.ID, len(s.handles))
	return h
}

// Active returns the top handle, or nil if the stack is empty.
func (s *Stack) Active() *Handle {
	if len(s.handles) == 0 {
		return nil
	}
	return s.handles[len(s.handles)-1]
}

// Len reports the number of live screens.
func (s *Stack) Len() int {
	return len(s.handles)
}

// RunState returns the stack's own lifecycle phase. Finished tells the
// owning application to finish as well.
func (s *Stack) RunState() RunState {
	return s.run
}

// Close asks the stack to wind down gracefully: each screen in turn gets a
// Close round-trip before being popped.
func (s *Stack) Close() {
	if s.run == Running {
		s.run = Closing
	}
}

// Quit drops every screen immediately, skipping the per-screen closing
// sequence.
func (s *Stack) Quit() {
	s.handles = nil
	s.run = Finished
}

// RouteEvent delivers one event to the active screen.
func (s *Stack) RouteEvent(ev event.Event) error {
	active := s.Active()
	if active == nil {
		return ErrNoScreens
	}
	return active.HandleEvent(ev)
}

// Update advances the stack by one step. At most one screen is popped per
// call; the popped handle is returned so the owner can inspect it. The
// action is chosen by (stack run state, active screen run state):
//
//	finished x any      : no-op
//	any x finished      : pop and return the screen
//	running x running   : delegate to the screen's update hook
//	running x closing   : delegate, letting it finish closing work
//	closing x running   : send CloseActiveScreen, requesting it wind down
//	closing x closing   : wait
//
// A pending child set by the active screen is consumed here, after the
// delegation step, so at most one spawn happens per update pass.
func (s *Stack) Update() (*Handle, error) {
	if len(s.handles) == 0 {
		s.run = Finished
		return nil, nil
	}
	if s.run == Finished {
		return nil, nil
	}

	active := s.Active()
	if active.state.Run == Finished {
		closed := s.Pop()
		if len(s.handles) == 0 {
			s.run = Finished
		}
		return closed, nil
	}

	switch {
	case s.run == Running:
		// Running or closing screens both get their update hook; a
		// closing screen uses it to finish its teardown work.
		if err := active.Update(); err != nil {
			return nil, err
		}
		if child, ok := active.state.takeChild(); ok {
			s.Push(child)
		}
	case s.run == Closing && active.state.Run == Running:
		if err := s.send.Send(event.CloseActiveScreen{}); err != nil {
			return nil, err
		}
	case s.run == Closing && active.state.Run == Closing:
		// Wait for the screen to request Finish.
	}
	return nil, nil
}

// Render composes the visible screens into f. The nearest non-popup screen
// from the top is the base; it draws first and is dimmed if any popups
// stack above it, then the popups draw in order.
func (s *Stack) Render(f *tui.Frame) {
	if len(s.handles) == 0 {
		return
	}
	base := len(s.handles) - 1
	for base > 0 && s.handles[base].state.Popup {
		base--
	}
	s.handles[base].Render(f)
	if base < len(s.handles)-1 {
		f.Dim()
	}
	for i := base + 1; i < len(s.handles); i++ {
		s.handles[i].Render(f)
	}
}
