package renderer

import (
	"image"

	"github.com/ljanyst/ray-tracer/pkg/world"
)

// TileRenderer traces the pixels of one tile into a shared canvas
type TileRenderer struct {
	world    *world.World
	camera   *Camera
	maxDepth int
}

// NewTileRenderer creates a tile renderer for the given world and camera
func NewTileRenderer(w *world.World, camera *Camera, maxDepth int) *TileRenderer {
	return &TileRenderer{
		world:    w,
		camera:   camera,
		maxDepth: maxDepth,
	}
}

// RenderTileBounds traces every pixel within bounds and writes it to
// canvas. Tiles never overlap, so concurrent calls with different bounds
// need no locking. Returns the number of pixels traced.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, canvas *Canvas) int {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.RayForPixel(x, y)
			canvas.Set(x, y, tr.world.ColorAt(ray, tr.maxDepth))
		}
	}
	return bounds.Dx() * bounds.Dy()
}
