package screen

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/games/minesweeper"
	"github.com/samdwyer/arcade/internal/tui"
)

// MinesweeperSetup adjusts board parameters before play. Rows hold width,
// height and mine count; presets 1-3 jump to the classic difficulties.
type MinesweeperSetup struct {
	Base
	setup  minesweeper.Setup
	row    int
	accent tcell.Color
}

// NewMinesweeperSetup starts from the beginner preset.
func NewMinesweeperSetup(accent tcell.Color) *MinesweeperSetup {
	return &MinesweeperSetup{setup: minesweeper.Beginner, accent: accent}
}

func (m *MinesweeperSetup) InitialState() State {
	return State{Title: "Minesweeper Setup"}
}

func (m *MinesweeperSetup) HandleEvent(st *State, send event.Sender, ev event.Event) error {
	key, ok := ev.(event.Key)
	if !ok {
		return nil
	}
	switch key.Key.Key() {
	case tcell.KeyEscape:
		return send.Send(event.CloseActiveScreen{})
	case tcell.KeyUp:
		if m.row > 0 {
			m.row--
		}
	case tcell.KeyDown:
		if m.row < 2 {
			m.row++
		}
	case tcell.KeyLeft:
		m.adjust(-1)
	case tcell.KeyRight:
		m.adjust(1)
	case tcell.KeyEnter:
		st.SpawnChild(NewMinesweeperPlay(m.setup, m.accent))
	case tcell.KeyRune:
		switch key.Key.Rune() {
		case '1':
			m.setup = minesweeper.Beginner
		case '2':
			m.setup = minesweeper.Intermediate
		case '3':
			m.setup = minesweeper.Expert
		case '-':
			m.adjust(-1)
		case '+', '=':
			m.adjust(1)
		}
	}
	return nil
}

func (m *MinesweeperSetup) adjust(delta int) {
	switch m.row {
	case 0:
		m.setup.Width += delta
	case 1:
		m.setup.Height += delta
	case 2:
		m.setup.Mines += delta
	}
	m.setup = m.setup.Clamp()
}

func (m *MinesweeperSetup) Render(st *State, f *tui.Frame) {
	f.PrintCentered(1, "Minesweeper", tcell.StyleDefault.Foreground(m.accent).Bold(true))

	rows := []string{
		fmt.Sprintf("Width   %3d", m.setup.Width),
		fmt.Sprintf("Height  %3d", m.setup.Height),
		fmt.Sprintf("Mines   %3d", m.setup.Mines),
	}
	for i, row := range rows {
		style := tcell.StyleDefault
		marker := "  "
		if i == m.row {
			style = style.Foreground(m.accent).Bold(true)
			marker = "> "
		}
		f.PrintCentered(3+i, marker+row, style)
	}

	_, h := f.Size()
	f.PrintCentered(h-1, "←/→ adjust · 1/2/3 presets · enter play · esc back",
		tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
}

// MinesweeperPlay hosts one game of minesweeper. Closing is deferred by one
// update pass so the outcome can be recorded before the screen finishes.
type MinesweeperPlay struct {
	setup    minesweeper.Setup
	board    *minesweeper.Board
	cx, cy   int
	accent   tcell.Color
	reported bool
}

// NewMinesweeperPlay generates a fresh board from the wall clock.
func NewMinesweeperPlay(setup minesweeper.Setup, accent tcell.Color) *MinesweeperPlay {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &MinesweeperPlay{
		setup:  setup,
		board:  minesweeper.NewBoard(setup.Width, setup.Height, setup.Mines, rng),
		accent: accent,
	}
}

func (m *MinesweeperPlay) InitialState() State {
	return State{Title: "Minesweeper"}
}

func (m *MinesweeperPlay) HandleEvent(st *State, send event.Sender, ev event.Event) error {
	key, ok := ev.(event.Key)
	if !ok {
		return nil
	}
	switch key.Key.Key() {
	case tcell.KeyEscape:
		return send.Send(event.CloseActiveScreen{})
	case tcell.KeyUp:
		m.moveCursor(0, -1)
	case tcell.KeyDown:
		m.moveCursor(0, 1)
	case tcell.KeyLeft:
		m.moveCursor(-1, 0)
	case tcell.KeyRight:
		m.moveCursor(1, 0)
	case tcell.KeyEnter:
		return m.reveal(send)
	case tcell.KeyRune:
		switch key.Key.Rune() {
		case 'h':
			m.moveCursor(-1, 0)
		case 'j':
			m.moveCursor(0, 1)
		case 'k':
			m.moveCursor(0, -1)
		case 'l':
			m.moveCursor(1, 0)
		case ' ':
			return m.reveal(send)
		case 'f':
			m.board.ToggleFlag(m.cx, m.cy)
		case 'r':
			m.restart(send)
		}
	}
	return nil
}

func (m *MinesweeperPlay) reveal(send event.Sender) error {
	if m.board.Status() != minesweeper.Playing {
		return nil
	}
	m.board.Reveal(m.cx, m.cy)
	switch m.board.Status() {
	case minesweeper.Won:
		return send.Send(event.Rename{Title: "Minesweeper: cleared!"})
	case minesweeper.Lost:
		m.board.RevealAllMines()
		return send.Send(event.Rename{Title: "Minesweeper: boom"})
	}
	return nil
}

func (m *MinesweeperPlay) restart(send event.Sender) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m.board = minesweeper.NewBoard(m.setup.Width, m.setup.Height, m.setup.Mines, rng)
	m.cx, m.cy = 0, 0
	m.reported = false
	_ = send.Send(event.Rename{Title: "Minesweeper"})
}

func (m *MinesweeperPlay) moveCursor(dx, dy int) {
	nx, ny := m.cx+dx, m.cy+dy
	if m.board.InBounds(nx, ny) {
		m.cx, m.cy = nx, ny
	}
}

// Close records the outcome without finishing; Update finishes on the next
// pass, exercising the full closing round-trip.
func (m *MinesweeperPlay) Close(st *State, send event.Sender) error {
	if !m.reported {
		m.reported = true
		log.Printf("minesweeper over: %dx%d/%d mines, outcome %d",
			m.setup.Width, m.setup.Height, m.setup.Mines, m.board.Status())
	}
	return nil
}

// Update requests Finish once the closing sequence has begun.
func (m *MinesweeperPlay) Update(st *State, send event.Sender) error {
	if st.Run == Closing {
		return send.Send(event.Finish{})
	}
	return nil
}

func (m *MinesweeperPlay) Render(st *State, f *tui.Frame) {
	bw, bh := m.board.Width, m.board.Height
	w, _ := f.Size()
	offX := (w - bw*2) / 2
	if offX < 0 {
		offX = 0
	}
	offY := 2

	f.PrintCentered(0, fmt.Sprintf("%s   mines %d · flags %d",
		st.Title, m.board.Mines, m.board.FlagCount()),
		tcell.StyleDefault.Foreground(m.accent).Bold(true))

	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			r, style := m.cellGlyph(x, y)
			if x == m.cx && y == m.cy {
				style = style.Reverse(true)
			}
			f.SetCell(offX+x*2, offY+y, r, style)
		}
	}

	_, h := f.Size()
	f.PrintCentered(h-1, "hjkl move · space reveal · f flag · r restart · esc back",
		tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
}

var adjacentColors = []tcell.Color{
	tcell.ColorGray, tcell.ColorBlue, tcell.ColorGreen, tcell.ColorRed,
	tcell.ColorNavy, tcell.ColorMaroon, tcell.ColorTeal, tcell.ColorBlack,
	tcell.ColorDarkGray,
}

func (m *MinesweeperPlay) cellGlyph(x, y int) (rune, tcell.Style) {
	c := m.board.Cell(x, y)
	switch {
	case c.Flagged && !c.Revealed:
		return '⚑', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case !c.Revealed:
		return '·', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case c.Mine:
		return '✸', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case c.Adjacent == 0:
		return ' ', tcell.StyleDefault
	default:
		return rune('0' + c.Adjacent),
			tcell.StyleDefault.Foreground(adjacentColors[c.Adjacent])
	}
}
