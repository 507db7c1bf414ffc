// Package grid provides coordinate and tile-grid utilities for orthogonal
// (non-isometric) 2D tile maps.
package grid

import (
	"fmt"
	"iter"
)

// RowCol identifies a single tile cell by row and column.
// Either component may be negative; whether a coordinate is valid depends
// on the map it is checked against, not on the coordinate itself.
type RowCol struct {
	Row, Col int
}

// North returns the coordinate dist rows up. A negative dist reverses
// direction; zero is the identity. No bounds checking is performed.
func (rc RowCol) North(dist int) RowCol {
	return RowCol{Row: rc.Row - dist, Col: rc.Col}
}

// South returns the coordinate dist rows down.
func (rc RowCol) South(dist int) RowCol {
	return RowCol{Row: rc.Row + dist, Col: rc.Col}
}

// East returns the coordinate dist columns right.
func (rc RowCol) East(dist int) RowCol {
	return RowCol{Row: rc.Row, Col: rc.Col + dist}
}

// West returns the coordinate dist columns left.
func (rc RowCol) West(dist int) RowCol {
	return RowCol{Row: rc.Row, Col: rc.Col - dist}
}

// Add returns the component-wise sum of two coordinates.
func (rc RowCol) Add(other RowCol) RowCol {
	return RowCol{Row: rc.Row + other.Row, Col: rc.Col + other.Col}
}

// Sub returns the component-wise difference of two coordinates.
func (rc RowCol) Sub(other RowCol) RowCol {
	return RowCol{Row: rc.Row - other.Row, Col: rc.Col - other.Col}
}

// Adjacent returns the neighboring coordinates of rc in row-major scan
// order. With diagonals the eight neighbors are produced as
// NW, N, NE, W, E, SW, S, SE; without, the four orthogonal neighbors as
// N, W, E, S. Callers depend on this ordering. The sequence is lazy and
// can be ranged over more than once. Neighbors outside any particular
// grid are not filtered here.
func (rc RowCol) Adjacent(includeDiagonals bool) iter.Seq[RowCol] {
	return func(yield func(RowCol) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if !includeDiagonals && dr != 0 && dc != 0 {
					continue
				}
				if !yield(RowCol{Row: rc.Row + dr, Col: rc.Col + dc}) {
					return
				}
			}
		}
	}
}

// String returns the coordinate as "(row,col)".
func (rc RowCol) String() string {
	return fmt.Sprintf("(%d,%d)", rc.Row, rc.Col)
}
