// Package minesweeper implements the board logic for the launcher's
// minesweeper game.
package minesweeper

import "math/rand"

// Status is the overall state of one game.
type Status int

const (
	// Playing means the game is still in progress.
	Playing Status = iota
	// Won means every safe cell is revealed.
	Won
	// Lost means a mine was revealed.
	Lost
)

// Cell is one square of the board.
type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // number of neighboring mines
}

// Board is a minesweeper field. Mine placement comes from the injected rng,
// so the same seed always produces the same board.
type Board struct {
	Width  int
	Height int
	Mines  int

	cells    [][]Cell
	status   Status
	revealed int
}

// NewBoard generates a board with mines placed by rng.
func NewBoard(width, height, mines int, rng *rand.Rand) *Board {
	if mines >= width*height {
		mines = width*height - 1
	}
	b := &Board{
		Width:  width,
		Height: height,
		Mines:  mines,
		cells:  make([][]Cell, height),
	}
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}

	placed := 0
	for placed < mines {
		x, y := rng.Intn(width), rng.Intn(height)
		if b.cells[y][x].Mine {
			continue
		}
		b.cells[y][x].Mine = true
		placed++
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.cells[y][x].Adjacent = b.countAdjacent(x, y)
		}
	}
	return b
}

// InBounds reports whether (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Cell returns the cell at (x, y). Callers must check InBounds first.
func (b *Board) Cell(x, y int) Cell {
	return b.cells[y][x]
}

// Status returns the game's overall state.
func (b *Board) Status() Status {
	return b.status
}

// Reveal uncovers the cell at (x, y). Revealing a mine loses the game;
// revealing a cell with no adjacent mines flood-fills its neighborhood.
// Flagged and already-revealed cells are untouched.
func (b *Board) Reveal(x, y int) {
	if b.status != Playing || !b.InBounds(x, y) {
		return
	}
	c := &b.cells[y][x]
	if c.Revealed || c.Flagged {
		return
	}
	if c.Mine {
		c.Revealed = true
		b.status = Lost
		return
	}
	b.flood(x, y)
	if b.revealed == b.Width*b.Height-b.Mines {
		b.status = Won
	}
}

// flood reveals (x, y) and, for zero-adjacency cells, spreads to all eight
// neighbors.
func (b *Board) flood(x, y int) {
	if !b.InBounds(x, y) {
		return
	}
	c := &b.cells[y][x]
	if c.Revealed || c.Flagged || c.Mine {
		return
	}
	c.Revealed = true
	b.revealed++
	if c.Adjacent > 0 {
		return
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				b.flood(x+dx, y+dy)
			}
		}
	}
}

// ToggleFlag flips the flag on an unrevealed cell.
func (b *Board) ToggleFlag(x, y int) {
	if b.status != Playing || !b.InBounds(x, y) {
		return
	}
	c := &b.cells[y][x]
	if c.Revealed {
		return
	}
	c.Flagged = !c.Flagged
}

// FlagCount returns the number of flags currently placed.
func (b *Board) FlagCount() int {
	count := 0
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c.Flagged {
				count++
			}
		}
	}
	return count
}

// RevealAllMines uncovers every mine. Used when rendering a lost game.
func (b *Board) RevealAllMines() {
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].Mine {
				b.cells[y][x].Revealed = true
			}
		}
	}
}

func (b *Board) countAdjacent(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) && b.cells[ny][nx].Mine {
				count++
			}
		}
	}
	return count
}
