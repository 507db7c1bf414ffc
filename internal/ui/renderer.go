package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/orthogrid/internal/grid"
	"github.com/samdwyer/orthogrid/internal/tilemap"
)

// Renderer draws a loaded tile map to the screen, one terminal cell per
// tile, with the cursor and its current neighbor set highlighted.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the cursor at the given coordinate, and the
// neighbor highlight for the selected topology.
func (r *Renderer) Render(m *tilemap.Map, cursor grid.RowCol, topo grid.Topology) {
	r.screen.Clear()

	for row := 0; row < m.Grid.NumRows(); row++ {
		for col := 0; col < m.Grid.NumCols(); col++ {
			tile, err := m.Grid.TileAt(grid.RowCol{Row: row, Col: col})
			if err != nil {
				continue
			}
			style := tcell.StyleDefault.Foreground(tile.TCellColor())
			r.screen.SetContent(col, row, tile.Rune(), style)
		}
	}

	// Highlight the neighbor set under the cursor.
	highlight := tcell.StyleDefault.
		Background(tcell.ColorDarkBlue).
		Foreground(tcell.ColorWhite)
	for c := range m.Grid.NeighborCoords(cursor, topo) {
		tile, err := m.Grid.TileAt(c)
		if err != nil {
			continue
		}
		r.screen.SetContent(c.Col, c.Row, tile.Rune(), highlight)
	}

	// Cursor on top, even when the topology excludes the center.
	cursorStyle := tcell.StyleDefault.
		Background(tcell.ColorDarkRed).
		Foreground(tcell.ColorYellow).
		Bold(true)
	if tile, err := m.Grid.TileAt(cursor); err == nil {
		r.screen.SetContent(cursor.Col, cursor.Row, tile.Rune(), cursorStyle)
	}

	r.renderStatus(m, cursor, topo)
	r.screen.Show()
}

// renderStatus draws map and cursor information below the grid.
func (r *Renderer) renderStatus(m *tilemap.Map, cursor grid.RowCol, topo grid.Topology) {
	y := m.Grid.NumRows() + 1
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	tileName := "-"
	if tile, err := m.Grid.TileAt(cursor); err == nil {
		tileName = tile.Def.Name
	}

	r.screen.Print(0, y, fmt.Sprintf("%s  %dx%d tiles of %dx%dpx  cursor %v (%s)  topology %s",
		m.Name, m.Grid.NumRows(), m.Grid.NumCols(),
		m.Grid.TileWidth(), m.Grid.TileHeight(),
		cursor, tileName, topo), style)
	r.screen.Print(0, y+1, "arrows/hjkl move  t cycles topology  click inspects by pixel  q quits", dim)
}

// RenderMessage displays a transient message on the line under the help text.
func (r *Renderer) RenderMessage(m *tilemap.Map, msg string) {
	y := m.Grid.NumRows() + 3
	r.screen.Print(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorTeal))
	r.screen.Show()
}
