// Package tui wraps the tcell terminal backend: session setup and teardown,
// frame-based drawing, and the asynchronous terminal event source.
package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal owns the process-wide terminal session. Enter and Exit must be
// paired; Exit is idempotent so that both the normal shutdown path and a
// panic-recovery path may call it without corrupting terminal state.
type Terminal struct {
	screen  tcell.Screen
	mouse   bool
	mu      sync.Mutex
	entered bool
}

// NewTerminal allocates a terminal over the real tcell backend.
// The terminal is not entered yet; call Enter.
func NewTerminal(mouse bool) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return AttachTerminal(s, mouse), nil
}

// AttachTerminal wraps an existing tcell screen. Tests hand in a
// tcell.SimulationScreen here.
func AttachTerminal(s tcell.Screen, mouse bool) *Terminal {
	return &Terminal{screen: s, mouse: mouse}
}

// Enter initializes the screen: raw mode, alternate buffer, hidden cursor,
// and bracketed paste / focus reporting. Mouse capture is enabled only when
// configured.
func (t *Terminal) Enter() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entered {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	t.screen.EnablePaste()
	t.screen.EnableFocus()
	if t.mouse {
		t.screen.EnableMouse()
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.entered = true
	return nil
}

// Exit restores the terminal to cooked mode and the primary buffer.
// Safe to call more than once and before Enter.
func (t *Terminal) Exit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.entered {
		return
	}
	t.screen.Fini()
	t.entered = false
}

// Entered reports whether the terminal session is currently active.
func (t *Terminal) Entered() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entered
}

// Draw clears the backing buffer, hands the full-screen frame to fn, and
// flushes the result in one step.
func (t *Terminal) Draw(fn func(*Frame)) {
	t.screen.Clear()
	w, h := t.screen.Size()
	fn(&Frame{screen: t.screen, area: Rect{W: w, H: h}})
	t.screen.Show()
}

// Suspend temporarily hands the terminal back to the shell, for example
// around an external process. No-op unless entered.
func (t *Terminal) Suspend() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.entered {
		return nil
	}
	return t.screen.Suspend()
}

// Resume reclaims the terminal after Suspend.
func (t *Terminal) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.entered {
		return nil
	}
	return t.screen.Resume()
}

// Resize resynchronizes the cell buffer after the terminal reports a new
// size.
func (t *Terminal) Resize() {
	t.screen.Sync()
}

// Size returns the current terminal dimensions.
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Screen exposes the underlying tcell screen for the event source.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}
