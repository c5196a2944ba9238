package material

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ljanyst/ray-tracer/pkg/core"
)

var (
	white = core.White
	black = core.Black
)

func TestPattern_TwoColorVariants(t *testing.T) {
	tests := []struct {
		name     string
		pattern  *Pattern
		point    core.Tuple
		expected core.Tuple
	}{
		{"stripe constant in y", StripeColors(white, black), core.NewPoint(0, 1, 0), white},
		{"stripe constant in z", StripeColors(white, black), core.NewPoint(0, 0, 2), white},
		{"stripe at 0.9", StripeColors(white, black), core.NewPoint(0.9, 0, 0), white},
		{"stripe at 1", StripeColors(white, black), core.NewPoint(1, 0, 0), black},
		{"stripe at -0.1", StripeColors(white, black), core.NewPoint(-0.1, 0, 0), black},
		{"stripe at -1", StripeColors(white, black), core.NewPoint(-1, 0, 0), black},
		{"stripe at -1.1", StripeColors(white, black), core.NewPoint(-1.1, 0, 0), white},

		{"gradient at 0", GradientColors(white, black), core.NewPoint(0, 0, 0), white},
		{"gradient at 0.25", GradientColors(white, black), core.NewPoint(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{"gradient at 0.5", GradientColors(white, black), core.NewPoint(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{"gradient at 0.75", GradientColors(white, black), core.NewPoint(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},

		{"ring at origin", RingColors(white, black), core.NewPoint(0, 0, 0), white},
		{"ring along x", RingColors(white, black), core.NewPoint(1, 0, 0), black},
		{"ring along z", RingColors(white, black), core.NewPoint(0, 0, 1), black},
		{"ring diagonal", RingColors(white, black), core.NewPoint(0.708, 0, 0.708), black},

		{"checker repeats in x", CheckerColors(white, black), core.NewPoint(0.99, 0, 0), white},
		{"checker flips in x", CheckerColors(white, black), core.NewPoint(1.01, 0, 0), black},
		{"checker repeats in y", CheckerColors(white, black), core.NewPoint(0, 0.99, 0), white},
		{"checker flips in y", CheckerColors(white, black), core.NewPoint(0, 1.01, 0), black},
		{"checker repeats in z", CheckerColors(white, black), core.NewPoint(0, 0, 0.99), white},
		{"checker flips in z", CheckerColors(white, black), core.NewPoint(0, 0, 1.01), black},

		{"radial at 0.5", RadialGradientColors(white, black), core.NewPoint(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{"radial at 1.5 returns", RadialGradientColors(white, black), core.NewPoint(0, 0, 1.5), core.NewColor(0.5, 0.5, 0.5)},
		{"radial at 2.25 restarts", RadialGradientColors(white, black), core.NewPoint(2.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},

		{"blended", NewBlendedPattern(NewSolidPattern(white), NewSolidPattern(core.NewColor(0, 0.5, 1))), core.NewPoint(3, 4, 5), core.NewColor(0.5, 0.75, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pattern.ShapeColorAt(tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPattern_Transforms(t *testing.T) {
	tests := []struct {
		name     string
		object   core.Matrix
		pattern  core.Matrix
		point    core.Tuple
		expected core.Tuple
	}{
		{"object transformation", core.Scaling(2, 2, 2), core.Identity(), core.NewPoint(2, 3, 4), core.NewTuple(1, 1.5, 2, 1)},
		{"pattern transformation", core.Identity(), core.Scaling(2, 2, 2), core.NewPoint(2, 3, 4), core.NewTuple(1, 1.5, 2, 1)},
		{"object and pattern", core.Scaling(2, 2, 2), core.Translation(0.5, 1, 1.5), core.NewPoint(2.5, 3, 3.5), core.NewTuple(0.75, 0.5, 0.25, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTestPattern().ApplyTransform(tt.pattern)
			got := p.ColorAt(newTestObject(tt.object), tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPattern_ApplyTransformComposes(t *testing.T) {
	p := NewTestPattern()
	if !p.Transform().Equals(core.Identity()) {
		t.Errorf("Expected identity transform, got\n%v", p.Transform())
	}

	p.ApplyTransform(core.Scaling(2, 2, 2)).ApplyTransform(core.Translation(1, 0, 0))
	expected := core.Translation(1, 0, 0).Multiply(core.Scaling(2, 2, 2))
	if !p.Transform().Equals(expected) {
		t.Errorf("Expected\n%v got\n%v", expected, p.Transform())
	}

	// (3, 0, 0) -> translate back to (2, 0, 0) -> unscale to (1, 0, 0)
	if got := p.ShapeColorAt(core.NewPoint(3, 0, 0)); !got.Equals(core.NewPoint(1, 0, 0)) {
		t.Errorf("Inverse out of sync with transform, got %v", got)
	}
}

func TestPattern_NestedSubPatterns(t *testing.T) {
	// stripes of checkers; the sub-pattern sees the parent's pattern space
	inner := CheckerColors(white, black).ApplyTransform(core.Scaling(0.5, 0.5, 0.5))
	outer := NewStripePattern(inner, NewSolidPattern(core.NewColor(1, 0, 0)))

	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(0.25, 0.25, 0.25), white},
		{core.NewPoint(0.75, 0.25, 0.25), black},
		{core.NewPoint(1.25, 0.25, 0.25), core.NewColor(1, 0, 0)},
	}
	for _, tt := range tests {
		if got := outer.ShapeColorAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("At %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}

	if got := len(outer.Children()); got != 2 {
		t.Errorf("Expected 2 children, got %d", got)
	}
}

func TestPattern_NoisePerturbsChild(t *testing.T) {
	p := NewNoisePattern(NewTestPattern())
	pt := core.NewPoint(0.3, 1.7, -2.2)

	got := p.ShapeColorAt(pt)
	offset := got.Subtract(pt)
	for _, v := range []float64{offset.X, offset.Y, offset.Z} {
		if v < 0 || v > 1 {
			t.Errorf("Noise offset %v outside [0, 1]", offset)
		}
	}

	again := p.ShapeColorAt(pt)
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("Noise pattern is not deterministic (-first +second):\n%s", diff)
	}

	solid := NewNoisePattern(NewSolidPattern(core.NewColor(0.2, 0.4, 0.6)))
	if got := solid.ShapeColorAt(pt); !got.Equals(core.NewColor(0.2, 0.4, 0.6)) {
		t.Errorf("Noise over a solid pattern should keep its color, got %v", got)
	}
}

func TestPatternKind_Names(t *testing.T) {
	for kind := PatternSolid; kind <= PatternTest; kind++ {
		parsed, ok := ParsePatternKind(kind.String())
		if !ok || parsed != kind {
			t.Errorf("Kind %d did not survive a name lookup (%q)", kind, kind.String())
		}
	}
	if _, ok := ParsePatternKind("plaid"); ok {
		t.Error("Expected unknown pattern name to fail")
	}
}
