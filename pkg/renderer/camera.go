package renderer

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// Camera maps pixels of an hsize x vsize canvas onto rays. The view plane
// sits at z=-1 in camera space; the transform orients the camera in the
// world, typically built with core.ViewTransform.
type Camera struct {
	hsize int
	vsize int
	fov   float64

	transform core.Matrix
	inverse   core.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the given canvas size and horizontal
// field of view in radians, looking down -z from the origin
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		hsize:     hsize,
		vsize:     vsize,
		fov:       fov,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fov }

// PixelSize returns the world-space size of one pixel on the view plane
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetTransform replaces the view transform
func (c *Camera) SetTransform(m core.Matrix) *Camera {
	c.inverse = m.Inverse()
	c.transform = m
	return c
}

// RayForPixel returns the ray from the camera through the center of pixel
// (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	// the inverse leaves rounding error in W
	origin.W, direction.W = 1, 0
	return core.NewRay(origin, direction)
}

// Render traces every pixel on the calling goroutine. Use a Raytracer for
// anything bigger than a test image.
func (c *Camera) Render(w *world.World, depth int) *Canvas {
	canvas := NewCanvas(c.hsize, c.vsize)
	for y := 0; y < c.vsize; y++ {
		for x := 0; x < c.hsize; x++ {
			canvas.Set(x, y, w.ColorAt(c.RayForPixel(x, y), depth))
		}
	}
	return canvas
}
