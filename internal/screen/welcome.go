package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arcade/internal/config"
	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/games"
	"github.com/samdwyer/arcade/internal/tui"
)

// Welcome is the launcher's root screen: a small menu over the catalog.
type Welcome struct {
	Base
	registry *games.Registry
	cfg      config.Config
	cursor   int
}

var welcomeItems = []string{"Play", "Settings", "Controls", "Quit"}

// NewWelcome builds the root screen.
func NewWelcome(registry *games.Registry, cfg config.Config) *Welcome {
	return &Welcome{registry: registry, cfg: cfg}
}

func (w *Welcome) InitialState() State {
	return State{Title: "Terminal Arcade"}
}

func (w *Welcome) HandleEvent(st *State, send event.Sender, ev event.Event) error {
	key, ok := ev.(event.Key)
	if !ok {
		return nil
	}
	switch key.Key.Key() {
	case tcell.KeyUp:
		w.move(-1)
	case tcell.KeyDown:
		w.move(1)
	case tcell.KeyEnter:
		return w.choose(st, send, welcomeItems[w.cursor])
	case tcell.KeyEscape:
		return send.Send(event.Close{})
	case tcell.KeyRune:
		switch key.Key.Rune() {
		case 'k':
			w.move(-1)
		case 'j':
			w.move(1)
		case 'p':
			return w.choose(st, send, "Play")
		case 's':
			return w.choose(st, send, "Settings")
		case '?':
			return w.choose(st, send, "Controls")
		case 'q':
			return send.Send(event.Close{})
		}
	}
	return nil
}

func (w *Welcome) choose(st *State, send event.Sender, item string) error {
	switch item {
	case "Play":
		st.SpawnChild(NewGameSelect(w.registry))
	case "Settings":
		st.SpawnChild(NewConfigView(w.cfg))
	case "Controls":
		// Through the bus rather than the child slot: the driver pushes
		// the popup on the next drain instead of the next stack update.
		return send.Send(event.CreateChild{Screen: NewControlsPopup()})
	case "Quit":
		return send.Send(event.Close{})
	}
	return nil
}

func (w *Welcome) move(delta int) {
	w.cursor += delta
	if w.cursor < 0 {
		w.cursor = 0
	}
	if w.cursor >= len(welcomeItems) {
		w.cursor = len(welcomeItems) - 1
	}
}

func (w *Welcome) Render(st *State, f *tui.Frame) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	f.PrintCentered(1, "T E R M I N A L   A R C A D E", titleStyle)
	f.PrintCentered(2, fmt.Sprintf("%d games in the cabinet", w.registry.Count()),
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	for i, item := range welcomeItems {
		style := tcell.StyleDefault
		label := "  " + item
		if i == w.cursor {
			style = style.Foreground(tcell.ColorYellow).Bold(true)
			label = "> " + item
		}
		f.PrintCentered(4+i, label, style)
	}

	_, h := f.Size()
	f.PrintCentered(h-1, "j/k move · enter select · q quit",
		tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
}
