package renderer

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

func TestNewTileGrid(t *testing.T) {
	tiles := NewTileGrid(10, 7, 4)
	if len(tiles) != 6 {
		t.Fatalf("Expected 6 tiles, got %d", len(tiles))
	}

	// every pixel is covered exactly once
	covered := make(map[image.Point]int)
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[image.Pt(x, y)]++
			}
		}
	}
	if len(covered) != 70 {
		t.Errorf("Expected 70 covered pixels, got %d", len(covered))
	}
	for p, n := range covered {
		if n != 1 {
			t.Errorf("Pixel %v covered %d times", p, n)
		}
	}

	last := tiles[len(tiles)-1].Bounds
	if last != image.Rect(8, 4, 10, 7) {
		t.Errorf("Expected the last tile to be clipped to (8,4)-(10,7), got %v", last)
	}
}

func TestRaytracer_MatchesSequentialRender(t *testing.T) {
	w := world.NewDefault()
	camera := newDefaultCamera()

	expected := camera.Render(w, world.DefaultMaxDepth)

	config := RenderConfig{TileSize: 4, NumWorkers: 3, MaxDepth: world.DefaultMaxDepth}
	rt := NewRaytracer(w, camera, config, core.NopLogger{})

	var tileCount int
	var lastReported int
	canvas, stats, err := rt.Render(context.Background(), func(result TileCompletionResult) {
		tileCount++
		lastReported = result.TileNumber
		if result.TotalTiles != 9 {
			t.Errorf("Expected 9 tiles in total, got %d", result.TotalTiles)
		}
		if result.TileImage.Bounds().Dx() != result.Bounds.Dx() {
			t.Errorf("Tile image does not match tile bounds %v", result.Bounds)
		}
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if tileCount != 9 || lastReported != 9 {
		t.Errorf("Expected 9 tile callbacks, got %d (last %d)", tileCount, lastReported)
	}
	if stats.TotalPixels != 121 || stats.TotalTiles != 9 || stats.NumWorkers != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			if !canvas.At(x, y).Equals(expected.At(x, y)) {
				t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, expected.At(x, y), canvas.At(x, y))
			}
		}
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	rt := NewRaytracer(world.NewDefault(), newDefaultCamera(), DefaultRenderConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, stats, err := rt.Render(ctx, func(TileCompletionResult) { called = true })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("No tile should be reported after cancellation")
	}
	if stats.TotalPixels != 0 {
		t.Errorf("Expected no pixels to be traced, got %d", stats.TotalPixels)
	}
}

func TestNewRaytracer_FillsDefaults(t *testing.T) {
	rt := NewRaytracer(world.NewDefault(), newDefaultCamera(), RenderConfig{MaxDepth: -3}, nil)
	cfg := rt.Config()
	if cfg.TileSize != DefaultRenderConfig().TileSize {
		t.Errorf("Expected default tile size, got %d", cfg.TileSize)
	}
	if cfg.MaxDepth != 0 {
		t.Errorf("Expected negative depth to clamp to 0, got %d", cfg.MaxDepth)
	}
}
