package main

import (
	"log"
	"os"

	"gridcast/internal/assets"
	"gridcast/internal/config"
	"gridcast/internal/level"
	"gridcast/internal/platform"
)

// assetSource resolves textures from the local asset directory, or over
// HTTP when GRIDCAST_ASSET_URL is set (the browser build serves assets
// next to the wasm binary).
func assetSource(cfg *config.Config) assets.Source {
	if url := os.Getenv("GRIDCAST_ASSET_URL"); url != "" {
		return assets.HTTPSource{BaseURL: url}
	}
	return assets.DirSource{Root: cfg.Assets.Dir}
}

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Kick off texture loading while the map is parsed
	load := assets.Begin(assetSource(cfg), cfg.Assets)

	mapData, err := level.LoadMap(cfg.Level.MapFile, cfg.Level.SpriteMarkers)
	if err != nil {
		log.Fatalf("loading map: %v", err)
	}

	app := platform.NewApp(cfg, mapData, load)
	if err := platform.Run(app); err != nil {
		log.Fatal(err)
	}
}
