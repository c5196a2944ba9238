package geometry

import (
	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/lights"
	"github.com/ljanyst/ray-tracer/pkg/material"
)

// Shape places a primitive in the world. It owns the primitive, a material,
// and the transform/inverse pair, which only change together.
//
// Shapes are compared by pointer: two shapes with identical geometry are
// still different objects for hit and refraction bookkeeping.
type Shape struct {
	transform core.Matrix
	inverse   core.Matrix
	material  material.Material
	primitive Primitive
}

// NewShape wraps a primitive with the identity transform and the default
// material
func NewShape(p Primitive) *Shape {
	return &Shape{
		transform: core.Identity(),
		inverse:   core.Identity(),
		material:  material.NewMaterial(),
		primitive: p,
	}
}

// Primitive returns the local geometry of the shape
func (s *Shape) Primitive() Primitive {
	return s.primitive
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix {
	return s.transform
}

// InverseTransform returns the cached world-to-object transform
func (s *Shape) InverseTransform() core.Matrix {
	return s.inverse
}

// ApplyTransform composes m on the left of the current transform and
// refreshes the inverse. It panics if the result is not invertible.
func (s *Shape) ApplyTransform(m core.Matrix) *Shape {
	transform := m.Multiply(s.transform)
	s.inverse = transform.Inverse()
	s.transform = transform
	return s
}

// Material returns the shape's material for in-place edits
func (s *Shape) Material() *material.Material {
	return &s.material
}

// SetMaterial replaces the shape's material
func (s *Shape) SetMaterial(m material.Material) *Shape {
	s.material = m
	return s
}

// Intersect returns the t values where a world-space ray crosses the shape.
// The ray is moved into object space; t stays valid on the original ray.
func (s *Shape) Intersect(ray core.Ray) []float64 {
	return s.primitive.LocalIntersect(ray.Transform(s.inverse))
}

// NormalAt returns the unit surface normal at a world-space point
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectPoint := s.inverse.MultiplyTuple(worldPoint)
	objectNormal := s.primitive.LocalNormalAt(objectPoint)

	// the inverse-transpose keeps normals perpendicular under non-uniform
	// scaling; translation leaks into w and is dropped
	worldNormal := s.inverse.Transpose().MultiplyTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// Lighting shades a point on the shape using its own material
func (s *Shape) Lighting(light lights.PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Tuple {
	return s.material.Lighting(s, light, point, eyev, normalv, inShadow)
}
