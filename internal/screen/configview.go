package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arcade/internal/config"
	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/tui"
)

// ConfigView shows the effective configuration. Values are edited in the
// config file, not here; rates only apply at the next launch because the
// event source's timers are fixed at startup.
type ConfigView struct {
	Base
	cfg config.Config
}

// NewConfigView builds a read-only view of cfg.
func NewConfigView(cfg config.Config) *ConfigView {
	return &ConfigView{cfg: cfg}
}

func (c *ConfigView) InitialState() State {
	return State{Title: "Settings"}
}

func (c *ConfigView) HandleEvent(st *State, send event.Sender, ev event.Event) error {
	key, ok := ev.(event.Key)
	if !ok {
		return nil
	}
	switch key.Key.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		return send.Send(event.CloseActiveScreen{})
	case tcell.KeyRune:
		if key.Key.Rune() == 'q' {
			return send.Send(event.CloseActiveScreen{})
		}
	}
	return nil
}

func (c *ConfigView) Render(st *State, f *tui.Frame) {
	f.PrintCentered(1, st.Title, tcell.StyleDefault.Bold(true))

	label := tcell.StyleDefault.Foreground(tcell.ColorGray)
	value := tcell.StyleDefault

	path, err := config.Path()
	if err != nil {
		path = "(unavailable)"
	}

	rows := []struct{ k, v string }{
		{"tick rate", fmt.Sprintf("%.1f/s", c.cfg.TickRate)},
		{"frame rate", fmt.Sprintf("%.1f/s", c.cfg.FrameRate)},
		{"mouse", fmt.Sprintf("%v", c.cfg.Mouse)},
		{"config file", path},
	}
	for i, row := range rows {
		f.Print(2, 3+i, fmt.Sprintf("%-12s", row.k), label)
		f.Print(15, 3+i, row.v, value)
	}

	_, h := f.Size()
	f.PrintCentered(h-1, "edit the file and relaunch to apply · esc back",
		tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
}
