package geometry

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// Cone is the double cone x^2 + z^2 = y^2 around the y axis, truncated to
// the open interval (Minimum, Maximum). Cap radius equals |y| at the cap.
type Cone struct {
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates a truncated double cone shape
func NewCone(minimum, maximum float64, closed bool) *Shape {
	return NewShape(Cone{Minimum: minimum, Maximum: maximum, Closed: closed})
}

// NewInfiniteCone creates an open double cone without height bounds
func NewInfiniteCone() *Shape {
	return NewCone(math.Inf(-1), math.Inf(1), false)
}

func (c Cone) intersectCaps(ray core.Ray) []float64 {
	if !c.Closed {
		return nil
	}
	return intersectCaps(ray, c.Minimum, c.Maximum, math.Abs)
}

// LocalIntersect solves x^2 + z^2 = y^2 along the ray, then adds the caps
func (c Cone) LocalIntersect(ray core.Ray) []float64 {
	d, o := ray.Direction, ray.Origin

	a := d.X*d.X + d.Z*d.Z - d.Y*d.Y
	b := 2 * (o.X*d.X + o.Z*d.Z - o.Y*d.Y)
	cc := o.X*o.X + o.Z*o.Z - o.Y*o.Y

	// parallel to one of the halves: the equation is linear and there is
	// at most one wall hit
	if math.Abs(a) < core.Epsilon {
		if math.Abs(b) < core.Epsilon {
			return nil
		}
		var xs []float64
		if t := -cc / b; withinHeight(ray, t, c.Minimum, c.Maximum) {
			xs = append(xs, t)
		}
		xs = append(xs, c.intersectCaps(ray)...)
		return sortedRoots(xs)
	}

	var xs []float64
	for _, t := range solveQuadratic(a, b, cc) {
		if withinHeight(ray, t, c.Minimum, c.Maximum) {
			xs = append(xs, t)
		}
	}
	xs = append(xs, c.intersectCaps(ray)...)
	return sortedRoots(xs)
}

// LocalNormalAt is along y on the caps; on the wall the y component leans
// away from the apex
func (c Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < point.Y*point.Y {
		if point.Y >= c.Maximum-core.Epsilon {
			return core.NewVector(0, 1, 0)
		}
		if point.Y <= c.Minimum+core.Epsilon {
			return core.NewVector(0, -1, 0)
		}
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}
