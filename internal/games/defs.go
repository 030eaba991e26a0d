package games

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// GameDef describes one entry in the launcher's catalog.
type GameDef struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Blurb    string   `json:"blurb"`
	Tags     []string `json:"tags"`
	Accent   string   `json:"accent"` // hex color, e.g. "#FFB000"
	Playable bool     `json:"playable"`
}

// AccentColor resolves the entry's accent color, falling back to the
// terminal default when the hex string is malformed.
func (g *GameDef) AccentColor() tcell.Color {
	color, err := ParseHexColor(g.Accent)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000")
// to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
