package geometry

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// Cylinder has radius 1 around the y axis, truncated to the open interval
// (Minimum, Maximum). Closed cylinders have caps at both ends.
type Cylinder struct {
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates a truncated cylinder shape
func NewCylinder(minimum, maximum float64, closed bool) *Shape {
	return NewShape(Cylinder{Minimum: minimum, Maximum: maximum, Closed: closed})
}

// NewInfiniteCylinder creates an open cylinder without height bounds
func NewInfiniteCylinder() *Shape {
	return NewCylinder(math.Inf(-1), math.Inf(1), false)
}

func (c Cylinder) intersectCaps(ray core.Ray) []float64 {
	if !c.Closed {
		return nil
	}
	return intersectCaps(ray, c.Minimum, c.Maximum, func(float64) float64 { return 1 })
}

// LocalIntersect solves x^2 + z^2 = 1 along the ray, then adds the caps
func (c Cylinder) LocalIntersect(ray core.Ray) []float64 {
	d, o := ray.Direction, ray.Origin

	// parallel to the y axis: only the caps can be hit
	a := d.X*d.X + d.Z*d.Z
	if a < core.Epsilon {
		return sortedRoots(c.intersectCaps(ray))
	}

	b := 2*o.X*d.X + 2*o.Z*d.Z
	cc := o.X*o.X + o.Z*o.Z - 1

	var xs []float64
	for _, t := range solveQuadratic(a, b, cc) {
		if withinHeight(ray, t, c.Minimum, c.Maximum) {
			xs = append(xs, t)
		}
	}
	xs = append(xs, c.intersectCaps(ray)...)
	return sortedRoots(xs)
}

// LocalNormalAt is radial on the wall and along y on the caps
func (c Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < 1 {
		if point.Y >= c.Maximum-core.Epsilon {
			return core.NewVector(0, 1, 0)
		}
		if point.Y <= c.Minimum+core.Epsilon {
			return core.NewVector(0, -1, 0)
		}
	}
	return core.NewVector(point.X, 0, point.Z)
}
