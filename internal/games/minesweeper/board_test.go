package minesweeper

import (
	"math/rand"
	"testing"
)

func TestBoardReproducibility(t *testing.T) {
	// Two boards built from the same seed must be identical
	seed := int64(12345)

	b1 := NewBoard(16, 16, 40, rand.New(rand.NewSource(seed)))
	b2 := NewBoard(16, 16, 40, rand.New(rand.NewSource(seed)))

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c1, c2 := b1.Cell(x, y), b2.Cell(x, y)
			if c1.Mine != c2.Mine || c1.Adjacent != c2.Adjacent {
				t.Errorf("Cell mismatch at (%d,%d): %+v != %+v", x, y, c1, c2)
			}
		}
	}
}

func TestBoardMineCount(t *testing.T) {
	b := NewBoard(9, 9, 10, rand.New(rand.NewSource(1)))

	mines := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cell(x, y).Mine {
				mines++
			}
		}
	}
	if mines != 10 {
		t.Errorf("Expected 10 mines, got %d", mines)
	}
}

func TestAdjacentCounts(t *testing.T) {
	b := NewBoard(9, 9, 10, rand.New(rand.NewSource(7)))

	// Every cell's count must equal the mines actually around it
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if b.InBounds(nx, ny) && b.Cell(nx, ny).Mine {
						want++
					}
				}
			}
			if got := b.Cell(x, y).Adjacent; got != want {
				t.Errorf("Adjacent at (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestRevealMineLoses(t *testing.T) {
	b := NewBoard(9, 9, 10, rand.New(rand.NewSource(3)))

	// Find a mine and step on it
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cell(x, y).Mine {
				b.Reveal(x, y)
				if b.Status() != Lost {
					t.Fatalf("Expected Lost after revealing a mine, got %v", b.Status())
				}
				return
			}
		}
	}
	t.Fatal("No mine found on board")
}

func TestRevealFloodFill(t *testing.T) {
	// A single mine in the corner leaves a large zero-adjacency region;
	// revealing the far corner must flood everything except the mine's
	// neighborhood remainder, winning the game.
	var b *Board
	for seed := int64(0); ; seed++ {
		b = NewBoard(9, 9, 1, rand.New(rand.NewSource(seed)))
		if b.Cell(0, 0).Mine {
			break
		}
		if seed > 1000 {
			t.Fatal("No seed placed the mine at the origin")
		}
	}

	b.Reveal(8, 8)
	if b.Status() != Won {
		t.Fatalf("Expected Won after flood reveal, got %v", b.Status())
	}
	if b.Cell(0, 0).Revealed {
		t.Error("The mine itself must not be revealed by the flood")
	}
}

func TestFlagBlocksReveal(t *testing.T) {
	b := NewBoard(9, 9, 10, rand.New(rand.NewSource(5)))

	b.ToggleFlag(4, 4)
	if !b.Cell(4, 4).Flagged {
		t.Fatal("Expected cell to be flagged")
	}
	b.Reveal(4, 4)
	if b.Cell(4, 4).Revealed {
		t.Error("Flagged cell must not be revealed")
	}

	b.ToggleFlag(4, 4)
	if b.Cell(4, 4).Flagged {
		t.Error("Expected flag to toggle off")
	}
	if b.FlagCount() != 0 {
		t.Errorf("Expected 0 flags, got %d", b.FlagCount())
	}
}

func TestSetupClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Setup
		want Setup
	}{
		{"too small", Setup{Width: 1, Height: 1, Mines: 0}, Setup{Width: 5, Height: 5, Mines: 1}},
		{"too large", Setup{Width: 999, Height: 999, Mines: 5}, Setup{Width: 60, Height: 24, Mines: 5}},
		{"too many mines", Setup{Width: 5, Height: 5, Mines: 100}, Setup{Width: 5, Height: 5, Mines: 24}},
		{"beginner untouched", Beginner, Beginner},
	}

	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.want {
			t.Errorf("%s: Clamp() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
