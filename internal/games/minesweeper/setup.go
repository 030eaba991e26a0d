package minesweeper

// Setup holds the board parameters chosen on the setup screen.
type Setup struct {
	Width  int
	Height int
	Mines  int
}

// Board size limits. The lower bounds keep the game meaningful; the upper
// bounds keep the board drawable on a normal terminal.
const (
	MinWidth  = 5
	MaxWidth  = 60
	MinHeight = 5
	MaxHeight = 24
	MinMines  = 1
)

// Preset difficulty levels.
var (
	Beginner     = Setup{Width: 9, Height: 9, Mines: 10}
	Intermediate = Setup{Width: 16, Height: 16, Mines: 40}
	Expert       = Setup{Width: 30, Height: 16, Mines: 99}
)

// Clamp forces every parameter into its legal range. Mines are capped so
// at least one cell stays safe.
func (s Setup) Clamp() Setup {
	out := s
	out.Width = clamp(out.Width, MinWidth, MaxWidth)
	out.Height = clamp(out.Height, MinHeight, MaxHeight)
	out.Mines = clamp(out.Mines, MinMines, out.Width*out.Height-1)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
