package material

import (
	"fmt"
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// Object is the part of a shape a pattern needs to map world points into
// the shape's frame
type Object interface {
	InverseTransform() core.Matrix
}

// PatternKind selects the color function of a pattern
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripe
	PatternRing
	PatternChecker
	PatternGradient
	PatternRadialGradient
	PatternBlended
	PatternNoise
	PatternTest
)

var patternKindNames = map[PatternKind]string{
	PatternSolid:          "solid",
	PatternStripe:         "stripe",
	PatternRing:           "ring",
	PatternChecker:        "checker",
	PatternGradient:       "gradient",
	PatternRadialGradient: "radial_gradient",
	PatternBlended:        "blended",
	PatternNoise:          "noise",
	PatternTest:           "test",
}

func (k PatternKind) String() string {
	if name, ok := patternKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PatternKind(%d)", int(k))
}

// ParsePatternKind maps a pattern name back to its kind
func ParsePatternKind(name string) (PatternKind, bool) {
	for kind, n := range patternKindNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// Pattern is a node in a tree of color functions. Two-color variants own
// two sub-patterns, Noise owns one, Solid and Test own none. Sub-patterns
// receive the parent's pattern-space point and apply their own transform.
type Pattern struct {
	kind  PatternKind
	color core.Tuple // Solid only
	a, b  *Pattern

	transform core.Matrix
	inverse   core.Matrix
}

func newPattern(kind PatternKind, a, b *Pattern) *Pattern {
	return &Pattern{
		kind:      kind,
		a:         a,
		b:         b,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
}

// NewSolidPattern returns a pattern of a single color
func NewSolidPattern(color core.Tuple) *Pattern {
	p := newPattern(PatternSolid, nil, nil)
	p.color = color
	return p
}

// NewStripePattern alternates a and b along x at unit intervals
func NewStripePattern(a, b *Pattern) *Pattern {
	return newPattern(PatternStripe, a, b)
}

// NewRingPattern alternates a and b in concentric rings in the xz plane
func NewRingPattern(a, b *Pattern) *Pattern {
	return newPattern(PatternRing, a, b)
}

// NewCheckerPattern alternates a and b in unit cubes
func NewCheckerPattern(a, b *Pattern) *Pattern {
	return newPattern(PatternChecker, a, b)
}

// NewGradientPattern blends linearly from a to b over every unit of x
func NewGradientPattern(a, b *Pattern) *Pattern {
	return newPattern(PatternGradient, a, b)
}

// NewRadialGradientPattern blends from a to b and back again with the
// distance from the y axis, with a period of 2
func NewRadialGradientPattern(a, b *Pattern) *Pattern {
	return newPattern(PatternRadialGradient, a, b)
}

// NewBlendedPattern averages two sub-patterns
func NewBlendedPattern(a, b *Pattern) *Pattern {
	return newPattern(PatternBlended, a, b)
}

// NewNoisePattern jitters the sampling point of child with Perlin noise
func NewNoisePattern(child *Pattern) *Pattern {
	return newPattern(PatternNoise, child, nil)
}

// NewTestPattern returns the pattern-space point as a color
func NewTestPattern() *Pattern {
	return newPattern(PatternTest, nil, nil)
}

// Two-color shorthands

func StripeColors(a, b core.Tuple) *Pattern {
	return NewStripePattern(NewSolidPattern(a), NewSolidPattern(b))
}

func RingColors(a, b core.Tuple) *Pattern {
	return NewRingPattern(NewSolidPattern(a), NewSolidPattern(b))
}

func CheckerColors(a, b core.Tuple) *Pattern {
	return NewCheckerPattern(NewSolidPattern(a), NewSolidPattern(b))
}

func GradientColors(a, b core.Tuple) *Pattern {
	return NewGradientPattern(NewSolidPattern(a), NewSolidPattern(b))
}

func RadialGradientColors(a, b core.Tuple) *Pattern {
	return NewRadialGradientPattern(NewSolidPattern(a), NewSolidPattern(b))
}

// Kind returns the variant of the pattern
func (p *Pattern) Kind() PatternKind {
	return p.kind
}

// Children returns the owned sub-patterns
func (p *Pattern) Children() []*Pattern {
	switch {
	case p.a != nil && p.b != nil:
		return []*Pattern{p.a, p.b}
	case p.a != nil:
		return []*Pattern{p.a}
	}
	return nil
}

// Transform returns the object-to-pattern transform
func (p *Pattern) Transform() core.Matrix {
	return p.transform
}

// ApplyTransform composes m on the left of the current transform and
// refreshes the inverse. It returns p so construction can be chained.
func (p *Pattern) ApplyTransform(m core.Matrix) *Pattern {
	p.transform = m.Multiply(p.transform)
	p.inverse = p.transform.Inverse()
	return p
}

// ColorAt returns the color for a point in world space on obj
func (p *Pattern) ColorAt(obj Object, worldPoint core.Tuple) core.Tuple {
	return p.ShapeColorAt(obj.InverseTransform().MultiplyTuple(worldPoint))
}

// ShapeColorAt returns the color for a point in the owning shape's frame
func (p *Pattern) ShapeColorAt(objectPoint core.Tuple) core.Tuple {
	return p.localColorAt(p.inverse.MultiplyTuple(objectPoint))
}

func (p *Pattern) localColorAt(pt core.Tuple) core.Tuple {
	switch p.kind {
	case PatternSolid:
		return p.color

	case PatternTest:
		return pt

	case PatternNoise:
		nx := OctaveNoise(pt.Add(core.NewVector(100, 0, 0)), 3, 0.5)
		ny := OctaveNoise(pt.Add(core.NewVector(0, 100, 0)), 3, 0.5)
		nz := OctaveNoise(pt.Add(core.NewVector(0, 0, 100)), 3, 0.5)
		return p.a.ShapeColorAt(pt.Add(core.NewVector(nx, ny, nz)))
	}

	c1 := p.a.ShapeColorAt(pt)
	c2 := p.b.ShapeColorAt(pt)

	switch p.kind {
	case PatternStripe:
		if int(math.Floor(pt.X))%2 == 0 {
			return c1
		}
		return c2

	case PatternRing:
		if int(math.Sqrt(pt.X*pt.X+pt.Z*pt.Z))%2 == 0 {
			return c1
		}
		return c2

	case PatternChecker:
		if int(math.Floor(pt.X)+math.Floor(pt.Y)+math.Floor(pt.Z))%2 == 0 {
			return c1
		}
		return c2

	case PatternGradient:
		fraction := pt.X - math.Floor(pt.X)
		return c1.Add(c2.Subtract(c1).Multiply(fraction))

	case PatternRadialGradient:
		fraction := math.Mod(math.Sqrt(pt.X*pt.X+pt.Z*pt.Z), 2)
		if fraction > 1 {
			fraction = 2 - fraction
		}
		return c1.Add(c2.Subtract(c1).Multiply(fraction))

	case PatternBlended:
		return c1.Multiply(0.5).Add(c2.Multiply(0.5))
	}

	panic(fmt.Sprintf("unknown pattern kind %v", p.kind))
}
