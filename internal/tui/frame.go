package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Rect is a rectangle in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the absolute cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks the rect by margin cells on every side, clamping at zero.
func (r Rect) Inset(margin int) Rect {
	out := Rect{
		X: r.X + margin,
		Y: r.Y + margin,
		W: r.W - 2*margin,
		H: r.H - 2*margin,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Frame is a clipped rectangular drawing surface handed to screens. All
// coordinates are relative to the frame's own origin. Screens must not
// assume exclusive access to the terminal: popups draw over their dimmed
// parents.
type Frame struct {
	screen tcell.Screen
	area   Rect
}

// Area returns the frame's rectangle in absolute screen coordinates.
func (f *Frame) Area() Rect {
	return f.area
}

// Size returns the frame's width and height.
func (f *Frame) Size() (width, height int) {
	return f.area.W, f.area.H
}

// SetCell draws one rune at frame-relative (x, y), clipped to the frame.
func (f *Frame) SetCell(x, y int, r rune, style tcell.Style) {
	ax, ay := f.area.X+x, f.area.Y+y
	if !f.area.Contains(ax, ay) {
		return
	}
	f.screen.SetContent(ax, ay, r, nil, style)
}

// Print draws text starting at frame-relative (x, y) and returns the number
// of cells consumed. Wide runes take two cells; output is clipped at the
// frame edge.
func (f *Frame) Print(x, y int, text string, style tcell.Style) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > f.area.W {
			break
		}
		f.SetCell(col, y, r, style)
		col += w
	}
	return col - x
}

// PrintCentered draws text horizontally centered on row y.
func (f *Frame) PrintCentered(y int, text string, style tcell.Style) {
	x := (f.area.W - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	f.Print(x, y, text, style)
}

// Fill paints the whole frame with one rune.
func (f *Frame) Fill(r rune, style tcell.Style) {
	for y := 0; y < f.area.H; y++ {
		for x := 0; x < f.area.W; x++ {
			f.SetCell(x, y, r, style)
		}
	}
}

// Box draws a single-line border along the frame edge.
func (f *Frame) Box(style tcell.Style) {
	w, h := f.area.W, f.area.H
	if w < 2 || h < 2 {
		return
	}
	for x := 1; x < w-1; x++ {
		f.SetCell(x, 0, tcell.RuneHLine, style)
		f.SetCell(x, h-1, tcell.RuneHLine, style)
	}
	for y := 1; y < h-1; y++ {
		f.SetCell(0, y, tcell.RuneVLine, style)
		f.SetCell(w-1, y, tcell.RuneVLine, style)
	}
	f.SetCell(0, 0, tcell.RuneULCorner, style)
	f.SetCell(w-1, 0, tcell.RuneURCorner, style)
	f.SetCell(0, h-1, tcell.RuneLLCorner, style)
	f.SetCell(w-1, h-1, tcell.RuneLRCorner, style)
}

// Dim repaints every cell already drawn in the frame with the dim
// attribute. The stack manager uses this to fade a base screen before a
// popup draws over it.
func (f *Frame) Dim() {
	for y := 0; y < f.area.H; y++ {
		for x := 0; x < f.area.W; x++ {
			ax, ay := f.area.X+x, f.area.Y+y
			mainc, combc, style, _ := f.screen.GetContent(ax, ay)
			f.screen.SetContent(ax, ay, mainc, combc, style.Dim(true))
		}
	}
}

// Sub returns a frame clipped to r, where r is relative to f.
func (f *Frame) Sub(r Rect) *Frame {
	abs := Rect{X: f.area.X + r.X, Y: f.area.Y + r.Y, W: r.W, H: r.H}
	if abs.X+abs.W > f.area.X+f.area.W {
		abs.W = f.area.X + f.area.W - abs.X
	}
	if abs.Y+abs.H > f.area.Y+f.area.H {
		abs.H = f.area.Y + f.area.H - abs.Y
	}
	if abs.W < 0 {
		abs.W = 0
	}
	if abs.H < 0 {
		abs.H = 0
	}
	return &Frame{screen: f.screen, area: abs}
}

// Centered returns a w×h frame centered inside f, clamped to f's size.
func (f *Frame) Centered(w, h int) *Frame {
	if w > f.area.W {
		w = f.area.W
	}
	if h > f.area.H {
		h = f.area.H
	}
	return f.Sub(Rect{X: (f.area.W - w) / 2, Y: (f.area.H - h) / 2, W: w, H: h})
}
