package geometry

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// Plane is the infinite xz plane through the origin
type Plane struct{}

// NewPlane creates an xz plane shape
func NewPlane() *Shape {
	return NewShape(Plane{})
}

// LocalIntersect returns the single crossing of the y=0 plane. Rays with a
// near-zero y direction count as parallel and miss, coplanar ones included.
func (Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is constant
func (Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
