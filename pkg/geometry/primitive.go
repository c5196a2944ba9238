package geometry

import (
	"math"
	"sort"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// Primitive is the local-frame geometry behind a Shape. Rays and points
// handed to a primitive are already in its canonical object space.
type Primitive interface {
	// LocalIntersect returns the t values where the ray crosses the surface
	LocalIntersect(ray core.Ray) []float64

	// LocalNormalAt returns the outward (not necessarily unit) normal at a
	// point on the surface
	LocalNormalAt(point core.Tuple) core.Tuple
}

// solveQuadratic returns the real roots of a*t^2 + b*t + c in ascending
// order, or nil if there are none
func solveQuadratic(a, b, c float64) []float64 {
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(disc)
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return []float64{t0, t1}
}

// withinHeight reports whether the ray at t lies strictly between the
// bounds along y
func withinHeight(ray core.Ray, t, minimum, maximum float64) bool {
	y := ray.Origin.Y + t*ray.Direction.Y
	return minimum < y && y < maximum
}

// intersectCaps tests the planes y=minimum and y=maximum, keeping hits whose
// distance from the y axis is within radius(y)
func intersectCaps(ray core.Ray, minimum, maximum float64, radius func(y float64) float64) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	var xs []float64
	for _, y := range []float64{minimum, maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		r := radius(y)
		if x*x+z*z <= r*r {
			xs = append(xs, t)
		}
	}
	return xs
}

func sortedRoots(xs []float64) []float64 {
	sort.Float64s(xs)
	return xs
}
