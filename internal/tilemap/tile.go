// Package tilemap loads orthogonal tile maps from JSON into OrthoMap grids.
package tilemap

import "github.com/gdamore/tcell/v2"

// TileDef describes one legend entry in a map file.
type TileDef struct {
	Name     string `json:"name"`     // Human-readable tile name (e.g., "floor")
	Passable bool   `json:"passable"` // Whether the tile can be walked on
	Color    string `json:"color"`    // Hex color code (e.g., "#3A3A3A")
}

// Tile is a single resolved map cell: the glyph it was read from plus its
// legend definition.
type Tile struct {
	Glyph rune
	Def   TileDef
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return t.Glyph
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t.Def.Passable
}

// TCellColor returns the tile's color for terminal rendering.
func (t Tile) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Def.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}
