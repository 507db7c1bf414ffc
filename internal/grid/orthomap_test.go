package grid

import (
	"errors"
	"slices"
	"testing"
)

// testMap builds a 5x5 map of 32x32 tiles where each tile value encodes
// its own coordinate as row*10+col.
func testMap(t *testing.T) *OrthoMap[int] {
	t.Helper()

	tiles := make([][]int, 5)
	for r := range tiles {
		tiles[r] = make([]int, 5)
		for c := range tiles[r] {
			tiles[r][c] = r*10 + c
		}
	}

	m, err := NewOrthoMap(32, 32, tiles)
	if err != nil {
		t.Fatalf("failed to build test map: %v", err)
	}
	return m
}

func TestNewOrthoMapValidation(t *testing.T) {
	tests := []struct {
		name  string
		tileW int
		tileH int
		tiles [][]int
	}{
		{"zero tile width", 0, 32, [][]int{{1}}},
		{"negative tile height", 32, -1, [][]int{{1}}},
		{"empty grid", 32, 32, nil},
		{"empty first row", 32, 32, [][]int{{}}},
		{"jagged grid", 32, 32, [][]int{{1, 2}, {3}}},
	}

	for _, tt := range tests {
		if _, err := NewOrthoMap(tt.tileW, tt.tileH, tt.tiles); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestMustOrthoMapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on jagged grid")
		}
	}()
	MustOrthoMap(32, 32, [][]int{{1, 2}, {3}})
}

func TestAccessors(t *testing.T) {
	m := testMap(t)

	if m.NumRows() != 5 || m.NumCols() != 5 {
		t.Errorf("dimensions: got %dx%d, want 5x5", m.NumRows(), m.NumCols())
	}
	if m.TileWidth() != 32 || m.TileHeight() != 32 {
		t.Errorf("tile size: got %dx%d, want 32x32", m.TileWidth(), m.TileHeight())
	}
	if got := m.Tiles()[3][4]; got != 34 {
		t.Errorf("raw grid access: got %d, want 34", got)
	}
}

func TestTileAt(t *testing.T) {
	m := testMap(t)

	tile, err := m.TileAt(RowCol{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tile != 0 {
		t.Errorf("TileAt((0,0)): got %d, want 0", tile)
	}

	tile, err = m.TileAt(RowCol{4, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tile != 42 {
		t.Errorf("TileAt((4,2)): got %d, want 42", tile)
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	m := testMap(t)

	for _, rc := range []RowCol{{5, 0}, {0, 5}, {-1, 0}, {0, -1}} {
		if _, err := m.TileAt(rc); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt(%v): expected ErrOutOfBounds, got %v", rc, err)
		}
	}
}

func TestGridCoordAt(t *testing.T) {
	m := testMap(t)

	tests := []struct {
		pixel PixelCoord
		want  RowCol
	}{
		{PixelCoord{X: 0, Y: 0}, RowCol{0, 0}},
		{PixelCoord{X: 31, Y: 31}, RowCol{0, 0}},
		{PixelCoord{X: 33, Y: 33}, RowCol{1, 1}},
		{PixelCoord{X: 32, Y: 0}, RowCol{0, 1}},
		{PixelCoord{X: 300, Y: 300}, RowCol{9, 9}}, // outside the map, no clamping
	}

	for _, tt := range tests {
		if got := m.GridCoordAt(tt.pixel); got != tt.want {
			t.Errorf("GridCoordAt(%v): got %v, want %v", tt.pixel, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	m := testMap(t)

	if !m.Contains(RowCol{0, 0}) || !m.Contains(RowCol{4, 4}) {
		t.Error("corners should be contained")
	}
	for _, rc := range []RowCol{{5, 0}, {0, 5}, {-1, 2}, {2, -1}} {
		if m.Contains(rc) {
			t.Errorf("Contains(%v): got true, want false", rc)
		}
	}
}

func TestContainsPixel(t *testing.T) {
	m := testMap(t)

	if !m.ContainsPixel(PixelCoord{X: 159, Y: 159}) {
		t.Error("pixel (159,159) should be inside a 5x5 map of 32x32 tiles")
	}
	if m.ContainsPixel(PixelCoord{X: 160, Y: 0}) {
		t.Error("pixel (160,0) should be outside")
	}
}

func TestTileAtPixel(t *testing.T) {
	m := testMap(t)

	tile, err := m.TileAtPixel(PixelCoord{X: 33, Y: 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tile != 21 {
		t.Errorf("TileAtPixel((33,70)): got %d, want 21", tile)
	}

	if _, err := m.TileAtPixel(PixelCoord{X: 500, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestTileAtPixelHostVector(t *testing.T) {
	m := testMap(t)

	tile, err := m.TileAtPixel(screenVec{px: 100, py: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tile != 13 {
		t.Errorf("TileAtPixel(screenVec{100,40}): got %d, want 13", tile)
	}
}

func TestSetTile(t *testing.T) {
	m := testMap(t)

	if err := m.SetTile(RowCol{2, 2}, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tile, _ := m.TileAt(RowCol{2, 2})
	if tile != 99 {
		t.Errorf("after SetTile: got %d, want 99", tile)
	}

	if err := m.SetTile(RowCol{9, 9}, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestNeighborsEdge(t *testing.T) {
	m := testMap(t)

	// Edge neighbors in order north, west, south, east.
	got := slices.Collect(m.Neighbors(RowCol{2, 2}, Edge))
	want := []int{12, 21, 32, 23}

	if !slices.Equal(got, want) {
		t.Errorf("Neighbors((2,2), Edge): got %v, want %v", got, want)
	}
}

func TestNeighborsVertex(t *testing.T) {
	m := testMap(t)

	// Vertex neighbors in order NW, NE, SW, SE.
	got := slices.Collect(m.Neighbors(RowCol{2, 2}, Vertex))
	want := []int{11, 13, 31, 33}

	if !slices.Equal(got, want) {
		t.Errorf("Neighbors((2,2), Vertex): got %v, want %v", got, want)
	}
}

func TestNeighborsAll(t *testing.T) {
	m := testMap(t)

	// Center first, then the four edges, then the four vertices.
	got := slices.Collect(m.Neighbors(RowCol{2, 2}, All))
	want := []int{22, 12, 21, 32, 23, 11, 13, 31, 33}

	if !slices.Equal(got, want) {
		t.Errorf("Neighbors((2,2), All): got %v, want %v", got, want)
	}
}

func TestNeighborsAtCorner(t *testing.T) {
	m := testMap(t)

	// Out-of-bounds candidates are dropped silently; (0,0) keeps only its
	// south and east edge neighbors.
	got := slices.Collect(m.Neighbors(RowCol{0, 0}, Edge))
	want := []int{10, 1}

	if !slices.Equal(got, want) {
		t.Errorf("Neighbors((0,0), Edge): got %v, want %v", got, want)
	}

	// Surround at the corner keeps three neighbors in total.
	got = slices.Collect(m.Neighbors(RowCol{0, 0}, Surround))
	want = []int{10, 1, 11}

	if !slices.Equal(got, want) {
		t.Errorf("Neighbors((0,0), Surround): got %v, want %v", got, want)
	}
}

func TestNeighborsOutsideMap(t *testing.T) {
	m := testMap(t)

	// A coordinate fully outside the map has no in-bounds candidates.
	got := slices.Collect(m.Neighbors(RowCol{-3, -3}, All))
	if len(got) != 0 {
		t.Errorf("Neighbors((-3,-3), All): got %v, want empty", got)
	}
}

func TestNeighborCoords(t *testing.T) {
	m := testMap(t)

	got := slices.Collect(m.NeighborCoords(RowCol{0, 1}, Surround))
	want := []RowCol{{0, 0}, {1, 1}, {0, 2}, {1, 0}, {1, 2}}

	if !slices.Equal(got, want) {
		t.Errorf("NeighborCoords((0,1), Surround): got %v, want %v", got, want)
	}
}

func TestNeighborsRestartable(t *testing.T) {
	m := testMap(t)
	seq := m.Neighbors(RowCol{2, 2}, Surround)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	if !slices.Equal(first, second) {
		t.Errorf("second pass differs: %v vs %v", first, second)
	}
}
