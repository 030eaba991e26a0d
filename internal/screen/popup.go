package screen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/tui"
)

// MessagePopup is a modal screen drawn over its dimmed parent: a bordered
// box with a title and a few lines of text. Any key dismisses it.
type MessagePopup struct {
	Base
	title  string
	lines  []string
	accent tcell.Color
}

// NewMessagePopup builds a dismissable popup.
func NewMessagePopup(title string, lines []string) *MessagePopup {
	return &MessagePopup{title: title, lines: lines, accent: tcell.ColorYellow}
}

// NewControlsPopup lists the global key bindings.
func NewControlsPopup() *MessagePopup {
	return NewMessagePopup("Controls", []string{
		"j/k or arrows   move",
		"enter           select",
		"esc             back one screen",
		"q               quit from the menu",
		"ctrl-c          quit immediately",
	})
}

// NewErrorPopup surfaces a reported error over the current screen.
func NewErrorPopup(msg string) *MessagePopup {
	p := NewMessagePopup("Error", []string{msg, "", "press any key to dismiss"})
	p.accent = tcell.ColorRed
	return p
}

func (p *MessagePopup) InitialState() State {
	return State{Title: p.title, Popup: true}
}

func (p *MessagePopup) HandleEvent(st *State, send event.Sender, ev event.Event) error {
	if _, ok := ev.(event.Key); ok {
		return send.Send(event.CloseActiveScreen{})
	}
	return nil
}

func (p *MessagePopup) Render(st *State, f *tui.Frame) {
	w := runewidth.StringWidth(p.title)
	for _, line := range p.lines {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}

	box := f.Centered(w+4, len(p.lines)+4)
	box.Fill(' ', tcell.StyleDefault)
	box.Box(tcell.StyleDefault.Foreground(p.accent))
	box.PrintCentered(1, p.title, tcell.StyleDefault.Foreground(p.accent).Bold(true))
	for i, line := range p.lines {
		box.Print(2, 2+i, line, tcell.StyleDefault)
	}
}
