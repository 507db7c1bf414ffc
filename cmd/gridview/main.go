// Package main is the entry point for the gridview map inspector.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/orthogrid/internal/telemetry"
	"github.com/samdwyer/orthogrid/internal/viewer"
)

func main() {
	mapName := flag.String("map", "", "embedded sample map to open (chamber.json, courtyard.json)")
	mapPath := flag.String("file", "", "path to an external map JSON file")
	generate := flag.Bool("generate", false, "generate a random map instead of loading one")
	seed := flag.Int64("seed", 0, "seed for -generate (0 picks a random seed)")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Viewer will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	v, err := viewer.New(viewer.Config{
		MapName:  *mapName,
		MapPath:  *mapPath,
		Generate: *generate,
		Seed:     *seed,
	})
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	if err := v.Run(ctx); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers here; the .env file may carry an unexpanded
	// variable reference that doesn't work.
	apiKey := os.Getenv("HONEYCOMB_ORTHOGRID_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ORTHOGRID_DATASET")
	if dataset == "" {
		dataset = "orthogrid" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
