package mapgen

import "github.com/samdwyer/orthogrid/internal/grid"

// Room is a rectangular carved area in a generated map.
type Room struct {
	TopLeft grid.RowCol
	Rows    int
	Cols    int
}

// Center returns the room's center coordinate.
func (r Room) Center() grid.RowCol {
	return r.TopLeft.Add(grid.RowCol{Row: r.Rows / 2, Col: r.Cols / 2})
}

// BottomRight returns the exclusive far corner of the room.
func (r Room) BottomRight() grid.RowCol {
	return r.TopLeft.Add(grid.RowCol{Row: r.Rows, Col: r.Cols})
}

// Contains returns true if the coordinate is inside the room.
func (r Room) Contains(rc grid.RowCol) bool {
	return rc.Row >= r.TopLeft.Row && rc.Row < r.TopLeft.Row+r.Rows &&
		rc.Col >= r.TopLeft.Col && rc.Col < r.TopLeft.Col+r.Cols
}
