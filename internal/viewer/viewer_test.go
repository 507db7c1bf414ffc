package viewer

import (
	"testing"

	"github.com/samdwyer/orthogrid/internal/grid"
	"github.com/samdwyer/orthogrid/internal/tilemap"
)

func testViewer(t *testing.T) *Viewer {
	t.Helper()

	m, err := tilemap.Parse([]byte(`{
		"name": "t",
		"tile_width": 16,
		"tile_height": 16,
		"legend": {
			"#": {"name": "wall", "passable": false},
			".": {"name": "floor", "passable": true}
		},
		"rows": ["###", "#.#", "###"]
	}`))
	if err != nil {
		t.Fatalf("Failed to parse test map: %v", err)
	}

	return &Viewer{
		tileMap: m,
		cursor:  grid.RowCol{Row: 1, Col: 1},
		topo:    grid.Edge,
		running: true,
	}
}

func TestTryMoveStaysInBounds(t *testing.T) {
	v := testViewer(t)

	v.tryMove(v.cursor.North(1))
	if v.cursor != (grid.RowCol{Row: 0, Col: 1}) {
		t.Errorf("cursor: got %v, want (0,1)", v.cursor)
	}

	// Moving off the top edge is refused.
	v.tryMove(v.cursor.North(1))
	if v.cursor != (grid.RowCol{Row: 0, Col: 1}) {
		t.Errorf("cursor should not leave the map, got %v", v.cursor)
	}
}

func TestCycleTopology(t *testing.T) {
	v := testViewer(t)

	want := []grid.Topology{grid.Vertex, grid.Surround, grid.All, grid.Edge, grid.Vertex}
	for i, w := range want {
		v.cycleTopology()
		if v.topo != w {
			t.Errorf("cycle %d: got %v, want %v", i, v.topo, w)
		}
	}
}
