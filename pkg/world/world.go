package world

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/geometry"
	"github.com/ljanyst/ray-tracer/pkg/lights"
)

// DefaultMaxDepth is the recursion budget for reflected and refracted rays
const DefaultMaxDepth = 5

// World owns the shapes and lights of a scene. It must not be modified
// while a render is in progress; shading only reads from it, so it is safe
// to share between render workers.
type World struct {
	Shapes  []*geometry.Shape
	Lights  []lights.PointLight
	Shadows bool
}

// New returns an empty world with shadows enabled
func New() *World {
	return &World{Shadows: true}
}

// NewDefault returns the canonical test world: two concentric spheres lit
// by a white light above and to the left of the camera
func NewDefault() *World {
	w := New()
	w.Lights = append(w.Lights, lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	s1 := geometry.NewSphere()
	m := s1.Material()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2

	s2 := geometry.NewSphere().ApplyTransform(core.Scaling(0.5, 0.5, 0.5))

	w.Shapes = append(w.Shapes, s1, s2)
	return w
}

// AddShape appends shapes to the world
func (w *World) AddShape(shapes ...*geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// AddLight appends lights to the world
func (w *World) AddLight(ls ...lights.PointLight) {
	w.Lights = append(w.Lights, ls...)
}

// Intersect returns every intersection of ray with the world's shapes,
// sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	xs.Sort()
	return xs
}

// ShadeHit returns the color at a hit: direct lighting from every light
// plus the reflected and refracted contributions. Surfaces that both
// reflect and refract blend the two with the Schlick approximation.
func (w *World) ShadeHit(props geometry.Properties, depth int) core.Tuple {
	m := props.Shape.Material()

	surface := core.Black
	for _, light := range w.Lights {
		inShadow := w.Shadows && w.IsShadowed(light, props.OverPoint)
		surface = surface.Add(props.Shape.Lighting(light, props.OverPoint, props.EyeV, props.NormalV, inShadow))
	}

	reflected := w.ReflectedColor(props, depth)
	refracted := w.RefractedColor(props, depth)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := props.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ColorAt traces ray into the world and returns the color it sees. Misses
// are black.
func (w *World) ColorAt(ray core.Ray, depth int) core.Tuple {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(hit.Properties(ray, xs), depth)
}

// ReflectedColor follows the reflection vector from the hit. It is black
// for non-reflective surfaces and once the depth budget is spent.
func (w *World) ReflectedColor(props geometry.Properties, depth int) core.Tuple {
	reflective := props.Shape.Material().Reflective
	if reflective == 0 || depth <= 0 {
		return core.Black
	}

	ray := core.NewRay(props.OverPoint, props.ReflectV)
	return w.ColorAt(ray, depth-1).Multiply(reflective)
}

// RefractedColor bends the eye ray through the surface by Snell's law. It
// is black for opaque surfaces, under total internal reflection, and once
// the depth budget is spent.
func (w *World) RefractedColor(props geometry.Properties, depth int) core.Tuple {
	transparency := props.Shape.Material().Transparency
	if transparency == 0 || depth <= 0 {
		return core.Black
	}

	nRatio := props.N1 / props.N2
	cosI := props.EyeV.Dot(props.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := props.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(props.EyeV.Multiply(nRatio))

	ray := core.NewRay(props.UnderPoint, direction)
	return w.ColorAt(ray, depth-1).Multiply(transparency)
}

// IsShadowed reports whether something sits between point and the light
func (w *World) IsShadowed(light lights.PointLight, point core.Tuple) bool {
	v := light.Position.Subtract(point)
	distance := v.Length()

	ray := core.NewRay(point, v.Normalize())
	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}
