// Package viewer provides the interactive terminal map inspector.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/orthogrid/data"
	"github.com/samdwyer/orthogrid/internal/grid"
	"github.com/samdwyer/orthogrid/internal/mapgen"
	"github.com/samdwyer/orthogrid/internal/telemetry"
	"github.com/samdwyer/orthogrid/internal/tilemap"
	"github.com/samdwyer/orthogrid/internal/ui"
)

// Viewer holds the inspector state: the loaded map, the cursor and the
// selected neighbor topology.
type Viewer struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	tileMap  *tilemap.Map
	cursor   grid.RowCol
	topo     grid.Topology
	message  string
	running  bool
}

// New creates a new viewer instance.
func New(cfg Config) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		topo:     grid.Edge,
		running:  true,
	}, nil
}

// Run executes the main event loop.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")

	ctx, initSpan := tracer.Start(ctx, "viewer.init")
	m, err := v.loadMap(ctx)
	if err != nil {
		initSpan.End()
		v.screen.Close()
		return err
	}
	v.tileMap = m
	v.cursor = m.Start

	initSpan.SetAttributes(
		attribute.String("map.name", m.Name),
		attribute.Int("map.rows", m.Grid.NumRows()),
		attribute.Int("map.cols", m.Grid.NumCols()),
	)
	initSpan.End()

	for v.running {
		v.renderer.Render(v.tileMap, v.cursor, v.topo)
		if v.message != "" {
			v.renderer.RenderMessage(v.tileMap, v.message)
		}
		v.handleInput()
	}

	v.screen.Close()
	return nil
}

// loadMap builds a random map or loads the configured file or embedded
// sample.
func (v *Viewer) loadMap(ctx context.Context) (*tilemap.Map, error) {
	if v.cfg.Generate {
		var rng *rand.Rand
		if v.cfg.Seed != 0 {
			rng = rand.New(rand.NewSource(v.cfg.Seed))
		}
		return mapgen.New(mapgen.DefaultRows, mapgen.DefaultCols, rng).Generate(ctx), nil
	}
	if v.cfg.MapPath != "" {
		return tilemap.LoadFile(ctx, v.cfg.MapPath)
	}
	name := v.cfg.MapName
	if name == "" {
		name = data.SampleMaps[0]
	}
	return data.LoadSample(ctx, name)
}

// handleInput processes a single input event.
func (v *Viewer) handleInput() {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ev)
	case *tcell.EventMouse:
		v.handleMouseEvent(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.tryMove(v.cursor.North(1))
	case tcell.KeyDown:
		v.tryMove(v.cursor.South(1))
	case tcell.KeyLeft:
		v.tryMove(v.cursor.West(1))
	case tcell.KeyRight:
		v.tryMove(v.cursor.East(1))

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			v.tryMove(v.cursor.North(1))
		case 'j':
			v.tryMove(v.cursor.South(1))
		case 'h':
			v.tryMove(v.cursor.West(1))
		case 'l':
			v.tryMove(v.cursor.East(1))
		case 't', 'T':
			v.cycleTopology()
		case 'q', 'Q':
			v.running = false
		}
	}
}

// handleMouseEvent resolves a click through the pixel-lookup path: the
// clicked cell is mapped to the center pixel of the tile it displays,
// then looked up by pixel coordinate.
func (v *Viewer) handleMouseEvent(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	cx, cy := ev.Position()

	g := v.tileMap.Grid
	pixel := grid.PixelCoord{
		X: (float64(cx) + 0.5) * float64(g.TileWidth()),
		Y: (float64(cy) + 0.5) * float64(g.TileHeight()),
	}

	tile, err := g.TileAtPixel(pixel)
	switch {
	case errors.Is(err, grid.ErrOutOfBounds):
		v.message = fmt.Sprintf("pixel (%.0f,%.0f) is outside the map", pixel.X, pixel.Y)
	case err != nil:
		v.message = err.Error()
	default:
		rc := g.GridCoordAt(pixel)
		v.message = fmt.Sprintf("pixel (%.0f,%.0f) -> %v %s", pixel.X, pixel.Y, rc, tile.Def.Name)
		v.cursor = rc
	}
}

// tryMove moves the cursor when the destination is inside the map.
func (v *Viewer) tryMove(dest grid.RowCol) {
	if v.tileMap.Grid.Contains(dest) {
		v.cursor = dest
		v.message = ""
	}
}

// cycleTopology steps through the neighbor topologies in a fixed order.
func (v *Viewer) cycleTopology() {
	switch v.topo {
	case grid.Edge:
		v.topo = grid.Vertex
	case grid.Vertex:
		v.topo = grid.Surround
	case grid.Surround:
		v.topo = grid.All
	default:
		v.topo = grid.Edge
	}
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
	}
}
