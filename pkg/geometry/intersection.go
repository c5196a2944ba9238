package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// Intersection records where a ray crossed a shape. It borrows the shape.
type Intersection struct {
	T     float64
	Shape *Shape
}

// NewIntersection creates an intersection at t on shape
func NewIntersection(t float64, shape *Shape) Intersection {
	return Intersection{T: t, Shape: shape}
}

// Equal reports whether both intersections hit the same shape at the same
// t, within epsilon
func (i Intersection) Equal(other Intersection) bool {
	return core.FloatEquals(i.T, other.T) && i.Shape == other.Shape
}

func (i Intersection) String() string {
	return fmt.Sprintf("Intersection{t=%g, shape=%p}", i.T, i.Shape)
}

// Intersections is a list of intersections along one ray. It is not kept
// sorted on append; call Sort once the list is complete.
type Intersections []Intersection

// Intersect returns one intersection per root the shape reports for ray
func Intersect(shape *Shape, ray core.Ray) Intersections {
	roots := shape.Intersect(ray)
	if len(roots) == 0 {
		return nil
	}

	xs := make(Intersections, len(roots))
	for i, t := range roots {
		xs[i] = Intersection{T: t, Shape: shape}
	}
	return xs
}

// Sort orders the intersections by ascending t
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the visible intersection: the one with the smallest
// non-negative t. Intersections behind the ray origin never count.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if x.T < 0 {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}

// Properties is everything the shader needs to know about a hit
type Properties struct {
	T     float64
	Shape *Shape

	Point   core.Tuple
	EyeV    core.Tuple
	NormalV core.Tuple
	Inside  bool // the normal was flipped to face the eye

	ReflectV core.Tuple

	// OverPoint sits just above the surface for shadow and reflection rays,
	// UnderPoint just below it for refraction rays
	OverPoint  core.Tuple
	UnderPoint core.Tuple

	// refractive indices of the media the ray leaves and enters
	N1 float64
	N2 float64
}

// Properties computes the shading state for the hit i on ray. xs must be
// the complete, sorted list of intersections along ray; it is walked to
// find the refractive indices on either side of the hit.
func (i Intersection) Properties(ray core.Ray, xs Intersections) Properties {
	props := Properties{
		T:     i.T,
		Shape: i.Shape,
		Point: ray.Position(i.T),
		EyeV:  ray.Direction.Negate(),
	}

	props.NormalV = i.Shape.NormalAt(props.Point)
	if props.NormalV.Dot(props.EyeV) < 0 {
		props.Inside = true
		props.NormalV = props.NormalV.Negate()
	}

	props.ReflectV = ray.Direction.Reflect(props.NormalV)
	offset := props.NormalV.Multiply(core.Epsilon)
	props.OverPoint = props.Point.Add(offset)
	props.UnderPoint = props.Point.Subtract(offset)

	props.N1, props.N2 = refractiveIndices(i, xs)
	return props
}

// refractiveIndices walks xs up to and including hit, keeping the stack of
// shapes the ray is currently inside. Crossing a shape already on the stack
// leaves it, anything else enters. hit must be an element of xs: it is
// matched exactly, since a grazing ray can cross one shape twice within
// Epsilon.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []*Shape

	topIndex := func() float64 {
		if len(containers) == 0 {
			return 1.0
		}
		return containers[len(containers)-1].Material().RefractiveIndex
	}

	for _, x := range xs {
		isHit := x.T == hit.T && x.Shape == hit.Shape
		if isHit {
			n1 = topIndex()
		}

		idx := -1
		for j, s := range containers {
			if s == x.Shape {
				idx = j
				break
			}
		}
		if idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if isHit {
			n2 = topIndex()
			break
		}
	}
	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light reflected rather than refracted. Total internal reflection gives 1.
func (p Properties) Schlick() float64 {
	cos := p.EyeV.Dot(p.NormalV)

	if p.N1 > p.N2 {
		n := p.N1 / p.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (p.N1 - p.N2) / (p.N1 + p.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
