package screen

import (
	"github.com/google/uuid"

	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/tui"
)

// Handle pairs a screen with its state and the bus sender it uses to talk
// back to the application. The stack is the sole owner of every handle.
type Handle struct {
	// ID names the screen instance in logs and trace spans.
	ID uuid.UUID

	screen Screen
	state  State
	send   event.Sender
}

// NewHandle wraps a screen, building its state from InitialState.
func NewHandle(sc Screen, send event.Sender) *Handle {
	return &Handle{
		ID:     uuid.New(),
		screen: sc,
		state:  sc.InitialState(),
		send:   send,
	}
}

// Title returns the screen's current title.
func (h *Handle) Title() string {
	return h.state.Title
}

// RunState returns the screen's lifecycle phase.
func (h *Handle) RunState() RunState {
	return h.state.Run
}

// Popup reports whether the screen renders above its parent.
func (h *Handle) Popup() bool {
	return h.state.Popup
}

// HandleEvent processes one routed event. Screen-origin control events
// mutate the handle's own state; a UserInputs batch is unpacked and fed to
// the screen one input at a time, in order.
func (h *Handle) HandleEvent(ev event.Event) error {
	switch e := ev.(type) {
	case event.UserInputs:
		for _, input := range e.Inputs {
			if err := h.screen.HandleEvent(&h.state, h.send, input); err != nil {
				return err
			}
		}
		return nil
	case event.CloseActiveScreen:
		return h.BeginClose()
	case event.Finish:
		return h.state.transition(Finished)
	case event.Rename:
		h.state.Title = e.Title
		return nil
	}
	return h.screen.HandleEvent(&h.state, h.send, ev)
}

// BeginClose moves a running screen into Closing and invokes its Close
// hook. Calling it on a screen that is already past Running is a no-op.
func (h *Handle) BeginClose() error {
	if h.state.Run != Running {
		return nil
	}
	if err := h.state.transition(Closing); err != nil {
		return err
	}
	return h.screen.Close(&h.state, h.send)
}

// Update delegates to the screen's per-loop hook.
func (h *Handle) Update() error {
	return h.screen.Update(&h.state, h.send)
}

// Render delegates drawing to the screen.
func (h *Handle) Render(f *tui.Frame) {
	h.screen.Render(&h.state, f)
}
