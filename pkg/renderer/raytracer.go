package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each tile (32x32 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	MaxDepth   int // Recursion budget for reflected and refracted rays
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		MaxDepth:   world.DefaultMaxDepth,
	}
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle // Pixel bounds within the full image
	TileImage *image.RGBA     // Image data for just this tile

	// Progress information
	TileNumber int // Completed tiles so far (1-based)
	TotalTiles int
}

// Raytracer renders a world through a camera, one tile per task, on a pool
// of workers. Every pixel gets exactly one primary ray.
type Raytracer struct {
	world  *world.World
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(w *world.World, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if config.MaxDepth < 0 {
		config.MaxDepth = 0
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:  w,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Config returns the effective render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces the whole image. tileCallback, if not nil, is invoked from
// the calling goroutine after each tile finishes. Cancelling ctx stops
// workers from starting new tiles; Render then returns ctx.Err() along
// with the partially filled canvas.
func (rt *Raytracer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (*Canvas, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.HSize(), rt.camera.VSize()

	canvas := NewCanvas(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	pool := NewWorkerPool(NewTileRenderer(rt.world, rt.camera, rt.config.MaxDepth), len(tiles), rt.config.NumWorkers)
	stats := RenderStats{
		TotalTiles: len(tiles),
		NumWorkers: pool.GetNumWorkers(),
		MaxDepth:   rt.config.MaxDepth,
	}

	rt.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		width, height, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Canvas: canvas})
	}

	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}

		stats.TotalPixels += result.Pixels

		if tileCallback != nil {
			tile := tiles[result.TaskID]
			tileCallback(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / rt.config.TileSize,
				TileY:      tile.Bounds.Min.Y / rt.config.TileSize,
				Bounds:     tile.Bounds,
				TileImage:  canvas.SubImage(tile.Bounds),
				TileNumber: i + 1,
				TotalTiles: len(tiles),
			})
		}
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	if renderErr != nil {
		rt.logger.Printf("Rendering stopped after %d pixels: %v\n", stats.TotalPixels, renderErr)
		return canvas, stats, renderErr
	}

	rt.logger.Printf("Rendered %v\n", stats)
	return canvas, stats, nil
}
