package geometry

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// Cube is the axis-aligned cube spanning -1..1 on every axis
type Cube struct{}

// NewCube creates an axis-aligned unit cube shape
func NewCube() *Shape {
	return NewShape(Cube{})
}

// checkAxis returns where a ray enters and leaves the slab -1..1 on a
// single axis. A zero direction yields signed infinities, which the max/min
// in LocalIntersect handle.
func checkAxis(origin, direction float64) (float64, float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	var tmin, tmax float64
	if math.Abs(direction) >= core.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalIntersect uses the slab method: the ray is inside the cube between
// the largest entry and the smallest exit over the three axes
func (Cube) LocalIntersect(ray core.Ray) []float64 {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}
	return []float64{tmin, tmax}
}

// LocalNormalAt picks the face by the component with the largest magnitude
func (Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	ax, ay, az := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(ax, math.Max(ay, az))

	switch maxc {
	case ax:
		return core.NewVector(point.X, 0, 0)
	case ay:
		return core.NewVector(0, point.Y, 0)
	}
	return core.NewVector(0, 0, point.Z)
}
