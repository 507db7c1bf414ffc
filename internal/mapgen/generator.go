// Package mapgen generates random room-and-corridor tile maps using BSP
// splitting, for use when no map file is supplied.
package mapgen

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/orthogrid/internal/grid"
	"github.com/samdwyer/orthogrid/internal/telemetry"
	"github.com/samdwyer/orthogrid/internal/tilemap"
)

const (
	// Default generated map dimensions, in tiles.
	DefaultRows = 24
	DefaultCols = 80

	// Pixel size assigned to generated tiles.
	tileSize = 32

	// BSP parameters
	minRoomSize = 4  // Minimum room dimension
	maxRoomSize = 10 // Maximum room dimension
	minLeafSize = 6  // Minimum BSP leaf size before stopping split
)

var (
	wallDef  = tilemap.TileDef{Name: "wall", Passable: false, Color: "#707070"}
	floorDef = tilemap.TileDef{Name: "floor", Passable: true, Color: "#B8B8B8"}

	wallTile  = tilemap.Tile{Glyph: '#', Def: wallDef}
	floorTile = tilemap.Tile{Glyph: '.', Def: floorDef}
)

// Generator builds random maps of a fixed size from a seeded RNG.
type Generator struct {
	rows, cols int
	rng        *rand.Rand
	rooms      []Room
	tiles      *grid.OrthoMap[tilemap.Tile]
}

// New creates a generator for the given dimensions. Passing rng allows
// reproducible maps; a nil rng is seeded from the clock.
func New(rows, cols int, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rows: rows, cols: cols, rng: rng}
}

// Generate builds a map: walls everywhere, then BSP-placed rooms joined
// by corridors. The returned map's start is the first room's center.
func (g *Generator) Generate(ctx context.Context) *tilemap.Map {
	tracer := telemetry.Tracer("mapgen")
	_, span := tracer.Start(ctx, "mapgen.generate")
	defer span.End()

	startTime := time.Now()

	tiles := make([][]tilemap.Tile, g.rows)
	for r := range tiles {
		tiles[r] = make([]tilemap.Tile, g.cols)
		for c := range tiles[r] {
			tiles[r][c] = wallTile
		}
	}
	g.tiles = grid.MustOrthoMap(tileSize, tileSize, tiles)
	g.rooms = g.rooms[:0]

	// Split the interior recursively, leaving a one-tile border.
	root := &bspNode{
		topLeft: grid.RowCol{Row: 1, Col: 1},
		rows:    g.rows - 2,
		cols:    g.cols - 2,
	}
	g.splitNode(root)
	g.createRooms(root)
	g.connectRooms(root)

	start := grid.RowCol{Row: g.rows / 2, Col: g.cols / 2}
	if len(g.rooms) > 0 {
		start = g.rooms[0].Center()
	}

	span.SetAttributes(
		attribute.Int("map.rows", g.rows),
		attribute.Int("map.cols", g.cols),
		attribute.Int("map.room_count", len(g.rooms)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &tilemap.Map{
		Name:  "generated",
		Start: start,
		Grid:  g.tiles,
	}
}

// Rooms returns the rooms placed by the last Generate call.
func (g *Generator) Rooms() []Room {
	return g.rooms
}

// bspNode is a node in the binary space partition tree.
type bspNode struct {
	topLeft     grid.RowCol
	rows, cols  int
	left, right *bspNode
	room        *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node until leaves are small.
func (g *Generator) splitNode(node *bspNode) {
	if node.rows < minLeafSize*2 && node.cols < minLeafSize*2 {
		return
	}

	// Split across the longer axis when possible.
	var splitRows bool
	switch {
	case node.cols > node.rows && node.cols >= minLeafSize*2:
		splitRows = false
	case node.rows >= minLeafSize*2:
		splitRows = true
	case node.cols >= minLeafSize*2:
		splitRows = false
	default:
		return
	}

	extent := node.cols
	if splitRows {
		extent = node.rows
	}
	low, high := minLeafSize, extent-minLeafSize
	if high <= low {
		return
	}
	splitPos := low + g.rng.Intn(high-low+1)

	if splitRows {
		node.left = &bspNode{topLeft: node.topLeft, rows: splitPos, cols: node.cols}
		node.right = &bspNode{
			topLeft: node.topLeft.South(splitPos),
			rows:    node.rows - splitPos,
			cols:    node.cols,
		}
	} else {
		node.left = &bspNode{topLeft: node.topLeft, rows: node.rows, cols: splitPos}
		node.right = &bspNode{
			topLeft: node.topLeft.East(splitPos),
			rows:    node.rows,
			cols:    node.cols - splitPos,
		}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms places one room inside each leaf and carves it out.
func (g *Generator) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		g.createRooms(node.left)
		g.createRooms(node.right)
		return
	}

	roomRows := g.roomExtent(node.rows)
	roomCols := g.roomExtent(node.cols)
	if roomRows < minRoomSize || roomCols < minRoomSize {
		return // leaf too small
	}

	offset := grid.RowCol{
		Row: 1 + g.rng.Intn(max(node.rows-roomRows-1, 1)),
		Col: 1 + g.rng.Intn(max(node.cols-roomCols-1, 1)),
	}
	room := Room{
		TopLeft: node.topLeft.Add(offset),
		Rows:    roomRows,
		Cols:    roomCols,
	}
	node.room = &room
	g.rooms = append(g.rooms, room)
	g.carveRoom(room)
}

// roomExtent picks a room dimension that fits inside a leaf extent.
func (g *Generator) roomExtent(leafExtent int) int {
	extent := minRoomSize + g.rng.Intn(max(min(maxRoomSize, leafExtent-2)-minRoomSize+1, 1))
	if extent > leafExtent-2 {
		extent = leafExtent - 2
	}
	return extent
}

// carveRoom floors every tile the room spans.
func (g *Generator) carveRoom(room Room) {
	for rc := range grid.Span(room.TopLeft, room.BottomRight()) {
		g.setFloor(rc)
	}
}

// connectRooms joins the two subtrees of every internal node with a
// corridor.
func (g *Generator) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(node.left)
	g.connectRooms(node.right)

	leftRoom := g.anyRoom(node.left)
	rightRoom := g.anyRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(leftRoom.Center(), rightRoom.Center())
	}
}

// anyRoom returns a room from a subtree, or nil when it has none.
func (g *Generator) anyRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := g.anyRoom(node.left); room != nil {
		return room
	}
	return g.anyRoom(node.right)
}

// carveCorridor connects two coordinates with an L-shaped corridor,
// randomly choosing which leg comes first.
func (g *Generator) carveCorridor(from, to grid.RowCol) {
	if g.rng.Intn(2) == 0 {
		g.carveCols(from, to.Col)
		g.carveRows(grid.RowCol{Row: from.Row, Col: to.Col}, to.Row)
	} else {
		g.carveRows(from, to.Row)
		g.carveCols(grid.RowCol{Row: to.Row, Col: from.Col}, to.Col)
	}
}

// carveCols floors tiles from the coordinate horizontally to the target
// column, inclusive.
func (g *Generator) carveCols(from grid.RowCol, toCol int) {
	step := 1
	if toCol < from.Col {
		step = -1
	}
	for col := from.Col; col != toCol+step; col += step {
		g.setFloor(grid.RowCol{Row: from.Row, Col: col})
	}
}

// carveRows floors tiles from the coordinate vertically to the target
// row, inclusive.
func (g *Generator) carveRows(from grid.RowCol, toRow int) {
	step := 1
	if toRow < from.Row {
		step = -1
	}
	for row := from.Row; row != toRow+step; row += step {
		g.setFloor(grid.RowCol{Row: row, Col: from.Col})
	}
}

// setFloor floors a tile, keeping the outer border walled.
func (g *Generator) setFloor(rc grid.RowCol) {
	if rc.Row <= 0 || rc.Row >= g.rows-1 || rc.Col <= 0 || rc.Col >= g.cols-1 {
		return
	}
	// Interior coordinates are always in bounds.
	_ = g.tiles.SetTile(rc, floorTile)
}
