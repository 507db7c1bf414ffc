package grid

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfBounds reports a tile access outside the map. Wrapped errors
// carry the offending coordinate; test with errors.Is.
var ErrOutOfBounds = errors.New("coordinate out of map bounds")

// OrthoMap is a rectangular grid of tiles for an orthogonal 2D tile map.
// The grid is row-major: the first index is the row, the second the
// column. The map owns its tile grid; dimensions are fixed after
// construction, tile values may be replaced in place via SetTile.
//
// An OrthoMap is intended for single-owner, single-threaded use. Callers
// needing concurrent access must synchronize externally.
type OrthoMap[T any] struct {
	tileWidth  int
	tileHeight int
	numRows    int
	numCols    int
	tiles      [][]T
}

// NewOrthoMap builds a map from tile pixel dimensions and a rectangular
// tile grid. It returns an error when a tile dimension is not positive,
// the grid is empty, or any row's length differs from the first row's
// (a jagged grid). These are contract violations on the caller's side;
// use MustOrthoMap to panic instead of handling them.
func NewOrthoMap[T any](tileWidth, tileHeight int, tiles [][]T) (*OrthoMap[T], error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", tileWidth, tileHeight)
	}
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, fmt.Errorf("tile grid must have at least one row and one column")
	}
	numCols := len(tiles[0])
	for r, row := range tiles {
		if len(row) != numCols {
			return nil, fmt.Errorf("tile grid is not rectangular: row %d has %d columns, expected %d",
				r, len(row), numCols)
		}
	}
	return &OrthoMap[T]{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		numRows:    len(tiles),
		numCols:    numCols,
		tiles:      tiles,
	}, nil
}

// MustOrthoMap is like NewOrthoMap but panics on error. Use it for grids
// that must be well-formed for the program to function.
func MustOrthoMap[T any](tileWidth, tileHeight int, tiles [][]T) *OrthoMap[T] {
	m, err := NewOrthoMap(tileWidth, tileHeight, tiles)
	if err != nil {
		panic(err)
	}
	return m
}

// NumRows returns the number of tile rows.
func (m *OrthoMap[T]) NumRows() int { return m.numRows }

// NumCols returns the number of tile columns.
func (m *OrthoMap[T]) NumCols() int { return m.numCols }

// TileWidth returns the pixel width of one tile.
func (m *OrthoMap[T]) TileWidth() int { return m.tileWidth }

// TileHeight returns the pixel height of one tile.
func (m *OrthoMap[T]) TileHeight() int { return m.tileHeight }

// Tiles exposes the backing grid so callers can read values directly.
func (m *OrthoMap[T]) Tiles() [][]T { return m.tiles }

// GridCoordAt maps a pixel position to the grid coordinate of the tile
// containing it, by truncating integer division. No bounds validation is
// performed; the result may lie outside the map.
func (m *OrthoMap[T]) GridCoordAt(p Pixeler) RowCol {
	x, y := p.XY()
	return RowCol{
		Row: int(y) / m.tileHeight,
		Col: int(x) / m.tileWidth,
	}
}

// Contains reports whether the coordinate lies inside the map.
func (m *OrthoMap[T]) Contains(rc RowCol) bool {
	return rc.Row >= 0 && rc.Row < m.numRows && rc.Col >= 0 && rc.Col < m.numCols
}

// ContainsPixel reports whether the pixel position lies inside the map.
func (m *OrthoMap[T]) ContainsPixel(p Pixeler) bool {
	return m.Contains(m.GridCoordAt(p))
}

// TileAt returns the tile at the given coordinate. It returns an error
// wrapping ErrOutOfBounds when the coordinate is outside the map; guard
// with Contains to avoid the error path.
func (m *OrthoMap[T]) TileAt(rc RowCol) (T, error) {
	if !m.Contains(rc) {
		var zero T
		return zero, fmt.Errorf("tile at %v: %w", rc, ErrOutOfBounds)
	}
	return m.tiles[rc.Row][rc.Col], nil
}

// TileAtPixel returns the tile containing the pixel position, with the
// same failure mode as TileAt.
func (m *OrthoMap[T]) TileAtPixel(p Pixeler) (T, error) {
	return m.TileAt(m.GridCoordAt(p))
}

// SetTile replaces the tile at the given coordinate. It returns an error
// wrapping ErrOutOfBounds when the coordinate is outside the map.
func (m *OrthoMap[T]) SetTile(rc RowCol, tile T) error {
	if !m.Contains(rc) {
		return fmt.Errorf("set tile at %v: %w", rc, ErrOutOfBounds)
	}
	m.tiles[rc.Row][rc.Col] = tile
	return nil
}

// NeighborCoords enumerates the in-bounds coordinates around rc selected
// by the topology: the center first when requested, then the edge
// neighbors in order north, west, south, east, then the vertex neighbors
// in order northwest, northeast, southwest, southeast. Candidates outside
// the map are silently dropped. This ordering differs from
// RowCol.Adjacent's scan order and is its own contract. The sequence is
// lazy and can be ranged over more than once.
func (m *OrthoMap[T]) NeighborCoords(rc RowCol, topo Topology) iter.Seq[RowCol] {
	return func(yield func(RowCol) bool) {
		emit := func(c RowCol) bool {
			if !m.Contains(c) {
				return true
			}
			return yield(c)
		}
		if topo.Has(Center) {
			if !emit(rc) {
				return
			}
		}
		if topo.Has(Edge) {
			for _, c := range [4]RowCol{rc.North(1), rc.West(1), rc.South(1), rc.East(1)} {
				if !emit(c) {
					return
				}
			}
		}
		if topo.Has(Vertex) {
			for _, c := range [4]RowCol{
				rc.North(1).West(1),
				rc.North(1).East(1),
				rc.South(1).West(1),
				rc.South(1).East(1),
			} {
				if !emit(c) {
					return
				}
			}
		}
	}
}

// Neighbors enumerates the tile values at the coordinates NeighborCoords
// would produce, in the same order.
func (m *OrthoMap[T]) Neighbors(rc RowCol, topo Topology) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range m.NeighborCoords(rc, topo) {
			if !yield(m.tiles[c.Row][c.Col]) {
				return
			}
		}
	}
}
