package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/games"
	"github.com/samdwyer/arcade/internal/tui"
)

// GameSelect lets the user search the catalog and pick a game to set up.
// Typing narrows the result list; the cursor walks it.
type GameSelect struct {
	Base
	registry *games.Registry
	query    []rune
	results  []games.GameDef
	cursor   int
}

// NewGameSelect builds a selection screen over the full catalog.
func NewGameSelect(registry *games.Registry) *GameSelect {
	g := &GameSelect{registry: registry}
	g.refresh()
	return g
}

func (g *GameSelect) InitialState() State {
	return State{Title: "Game Select"}
}

func (g *GameSelect) HandleEvent(st *State, send event.Sender, ev event.Event) error {
	switch e := ev.(type) {
	case event.Paste:
		g.query = append(g.query, []rune(e.Text)...)
		g.refresh()
	case event.Key:
		return g.handleKey(st, send, e.Key)
	}
	return nil
}

func (g *GameSelect) handleKey(st *State, send event.Sender, key *tcell.EventKey) error {
	switch key.Key() {
	case tcell.KeyEscape:
		return send.Send(event.CloseActiveScreen{})
	case tcell.KeyUp:
		g.move(-1)
	case tcell.KeyDown:
		g.move(1)
	case tcell.KeyEnter:
		g.open(st)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.query) > 0 {
			g.query = g.query[:len(g.query)-1]
			g.refresh()
		}
	case tcell.KeyRune:
		g.query = append(g.query, key.Rune())
		g.refresh()
	}
	return nil
}

// open spawns the setup screen for the selected game. Entries that are not
// playable, or whose ID has no launcher wired here yet, get an explanatory
// popup so a stale playable flag in the catalog cannot make Enter a no-op.
func (g *GameSelect) open(st *State) {
	if g.cursor >= len(g.results) {
		return
	}
	def := g.results[g.cursor]
	if def.Playable {
		switch def.ID {
		case "minesweeper":
			st.SpawnChild(NewMinesweeperSetup(def.AccentColor()))
			return
		}
	}
	st.SpawnChild(NewMessagePopup("Under Construction", []string{
		fmt.Sprintf("%s is not playable yet.", def.Title),
		"Check back in a future release.",
	}))
}

func (g *GameSelect) refresh() {
	g.results = g.registry.Search(string(g.query))
	if g.cursor >= len(g.results) {
		g.cursor = 0
	}
}

func (g *GameSelect) move(delta int) {
	if len(g.results) == 0 {
		return
	}
	g.cursor += delta
	if g.cursor < 0 {
		g.cursor = 0
	}
	if g.cursor >= len(g.results) {
		g.cursor = len(g.results) - 1
	}
}

func (g *GameSelect) Render(st *State, f *tui.Frame) {
	f.Print(1, 0, "Search: "+string(g.query)+"▌",
		tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	if len(g.results) == 0 {
		f.Print(1, 2, "no games match", tcell.StyleDefault.Foreground(tcell.ColorGray))
		return
	}

	for i, def := range g.results {
		style := tcell.StyleDefault.Foreground(def.AccentColor())
		marker := "  "
		if i == g.cursor {
			style = style.Bold(true).Underline(true)
			marker = "> "
		}
		label := def.Title
		if !def.Playable {
			label += " (soon)"
		}
		f.Print(1, 2+i, marker+label, style)
	}

	if g.cursor < len(g.results) {
		_, h := f.Size()
		f.Print(1, h-1, g.results[g.cursor].Blurb,
			tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}
