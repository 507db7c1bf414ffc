package data

import (
	"context"
	"fmt"

	"github.com/samdwyer/orthogrid/internal/tilemap"
)

// SampleMaps lists the embedded map files by name.
var SampleMaps = []string{
	"chamber.json",
	"courtyard.json",
}

// LoadSample loads one of the embedded sample maps by file name.
func LoadSample(ctx context.Context, name string) (*tilemap.Map, error) {
	m, err := tilemap.Load(ctx, dataFS, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load sample map %s: %w", name, err)
	}
	return m, nil
}

// MustLoadSample loads an embedded sample map, panicking on error.
// Use this for maps that must be present for the program to function.
func MustLoadSample(ctx context.Context, name string) *tilemap.Map {
	m, err := LoadSample(ctx, name)
	if err != nil {
		panic(err)
	}
	return m
}
