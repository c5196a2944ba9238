package geometry

import (
	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/material"
)

// Sphere is the unit sphere centered at the origin
type Sphere struct{}

// NewSphere creates a unit sphere shape
func NewSphere() *Shape {
	return NewShape(Sphere{})
}

// NewGlassSphere creates a unit sphere with the glass material
func NewGlassSphere() *Shape {
	s := NewSphere()
	s.SetMaterial(material.NewGlassMaterial())
	return s
}

// LocalIntersect solves |o + t*d|^2 = 1 for t. Both roots are returned,
// including negative ones and repeated tangent roots.
func (Sphere) LocalIntersect(ray core.Ray) []float64 {
	// vector from the sphere center to the ray origin
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	return solveQuadratic(a, b, c)
}

// LocalNormalAt points from the center through the surface point
func (Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
