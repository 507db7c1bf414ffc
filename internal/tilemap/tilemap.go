package tilemap

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/orthogrid/internal/grid"
	"github.com/samdwyer/orthogrid/internal/telemetry"
)

// StartPoint is an optional cursor/spawn position in a map file.
type StartPoint struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MapFile is the on-disk JSON representation of a tile map. Legend keys
// are single-character glyphs; each row string supplies one grid row,
// one glyph per column.
type MapFile struct {
	Name       string             `json:"name"`
	TileWidth  int                `json:"tile_width"`
	TileHeight int                `json:"tile_height"`
	Legend     map[string]TileDef `json:"legend"`
	Start      *StartPoint        `json:"start,omitempty"`
	Rows       []string           `json:"rows"`
}

// Map is a loaded tile map: the tile grid plus its metadata.
type Map struct {
	Name  string
	Start grid.RowCol
	Grid  *grid.OrthoMap[Tile]
}

// Load reads and resolves a map from the given filesystem.
func Load(ctx context.Context, fsys fs.FS, path string) (*Map, error) {
	tracer := telemetry.Tracer("tilemap")
	_, span := tracer.Start(ctx, "tilemap.load")
	defer span.End()

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	m, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("invalid map file %s: %w", path, err)
	}

	span.SetAttributes(
		attribute.String("map.name", m.Name),
		attribute.Int("map.rows", m.Grid.NumRows()),
		attribute.Int("map.cols", m.Grid.NumCols()),
	)
	return m, nil
}

// LoadFile reads and resolves a map from a path on the host filesystem.
func LoadFile(ctx context.Context, path string) (*Map, error) {
	tracer := telemetry.Tracer("tilemap")
	_, span := tracer.Start(ctx, "tilemap.loadfile")
	defer span.End()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	m, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("invalid map file %s: %w", path, err)
	}
	span.SetAttributes(attribute.String("map.name", m.Name))
	return m, nil
}

// Parse unmarshals and resolves map file content. Every row must have the
// same number of glyphs as the first, every glyph must appear in the
// legend, and the start position (when present) must be inside the grid.
func Parse(content []byte) (*Map, error) {
	var file MapFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse map JSON: %w", err)
	}
	return resolve(&file)
}

// resolve turns a MapFile into a Map backed by an OrthoMap.
func resolve(file *MapFile) (*Map, error) {
	if len(file.Rows) == 0 {
		return nil, fmt.Errorf("map %q has no rows", file.Name)
	}
	if len(file.Legend) == 0 {
		return nil, fmt.Errorf("map %q has no legend", file.Name)
	}

	legend := make(map[rune]TileDef, len(file.Legend))
	for key, def := range file.Legend {
		glyphs := []rune(key)
		if len(glyphs) != 1 {
			return nil, fmt.Errorf("map %q: legend key %q must be a single glyph", file.Name, key)
		}
		legend[glyphs[0]] = def
	}

	tiles := make([][]Tile, len(file.Rows))
	for r, row := range file.Rows {
		glyphs := []rune(row)
		tiles[r] = make([]Tile, len(glyphs))
		for c, glyph := range glyphs {
			def, ok := legend[glyph]
			if !ok {
				return nil, fmt.Errorf("map %q: glyph %q at row %d col %d not in legend",
					file.Name, glyph, r, c)
			}
			tiles[r][c] = Tile{Glyph: glyph, Def: def}
		}
	}

	// NewOrthoMap rejects ragged rows and bad tile dimensions.
	g, err := grid.NewOrthoMap(file.TileWidth, file.TileHeight, tiles)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", file.Name, err)
	}

	start := grid.RowCol{}
	if file.Start != nil {
		start = grid.RowCol{Row: file.Start.Row, Col: file.Start.Col}
		if !g.Contains(start) {
			return nil, fmt.Errorf("map %q: start %v is out of bounds", file.Name, start)
		}
	}

	return &Map{
		Name:  file.Name,
		Start: start,
		Grid:  g,
	}, nil
}
