package geometry

import (
	"math"
	"testing"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

func TestIntersection_Equal(t *testing.T) {
	a := NewSphere()
	b := NewSphere()

	if !NewIntersection(1, a).Equal(NewIntersection(1+core.Epsilon/2, a)) {
		t.Error("Expected intersections within epsilon on the same shape to be equal")
	}
	if NewIntersection(1, a).Equal(NewIntersection(1, b)) {
		t.Error("Structurally identical shapes are still different shapes")
	}
	if NewIntersection(1, a).Equal(NewIntersection(2, a)) {
		t.Error("Different t values should not be equal")
	}
}

func TestIntersect_ReturnsShape(t *testing.T) {
	s := NewSphere()
	xs := Intersect(s, core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)))

	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %v", xs)
	}
	for _, x := range xs {
		if x.Shape != s {
			t.Errorf("Intersection does not reference the intersected shape: %v", x)
		}
	}

	if xs := Intersect(s, core.NewRay(core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1))); len(xs) != 0 {
		t.Errorf("Expected a miss, got %v", xs)
	}
}

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name     string
		ts       []float64
		expected float64
		ok       bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"unsorted", []float64{5, 7, -3, 2}, 2, true},
		{"zero counts", []float64{-1, 0, 3}, 0, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs Intersections
			for _, v := range tt.ts {
				xs = append(xs, NewIntersection(v, s))
			}

			hit, ok := xs.Hit()
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && !hit.Equal(NewIntersection(tt.expected, s)) {
				t.Errorf("Expected hit at %g, got %v", tt.expected, hit)
			}
		})
	}
}

func TestIntersections_Sort(t *testing.T) {
	s := NewSphere()
	xs := Intersections{
		NewIntersection(5, s),
		NewIntersection(-3, s),
		NewIntersection(7, s),
		NewIntersection(2, s),
	}
	xs.Sort()

	expected := []float64{-3, 2, 5, 7}
	for i, x := range xs {
		if x.T != expected[i] {
			t.Errorf("Position %d: expected %g, got %g", i, expected[i], x.T)
		}
	}
}

func TestProperties_OutsideAndInside(t *testing.T) {
	s := NewSphere()

	outside := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	i := NewIntersection(4, s)
	props := i.Properties(outside, Intersections{i})

	if props.T != 4 || props.Shape != s {
		t.Errorf("Unexpected t or shape: %+v", props)
	}
	if !props.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected point (0, 0, -1), got %v", props.Point)
	}
	if !props.EyeV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eyev (0, 0, -1), got %v", props.EyeV)
	}
	if !props.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normal (0, 0, -1), got %v", props.NormalV)
	}
	if props.Inside {
		t.Error("Expected hit from the outside")
	}

	inside := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	i = NewIntersection(1, s)
	props = i.Properties(inside, Intersections{i})

	if !props.Point.Equals(core.NewPoint(0, 0, 1)) {
		t.Errorf("Expected point (0, 0, 1), got %v", props.Point)
	}
	if !props.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected flipped normal (0, 0, -1), got %v", props.NormalV)
	}
	if !props.Inside {
		t.Error("Expected hit from the inside")
	}
}

func TestProperties_ReflectV(t *testing.T) {
	p := NewPlane()
	s2 := math.Sqrt2 / 2
	r := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -s2, s2))
	i := NewIntersection(math.Sqrt2, p)

	props := i.Properties(r, Intersections{i})
	if !props.ReflectV.Equals(core.NewVector(0, s2, s2)) {
		t.Errorf("Expected reflectv (0, %g, %g), got %v", s2, s2, props.ReflectV)
	}
}

func TestProperties_OverAndUnderPoints(t *testing.T) {
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := NewGlassSphere().ApplyTransform(core.Translation(0, 0, 1))
	i := NewIntersection(5, s)

	props := i.Properties(r, Intersections{i})

	if props.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("Over point not above the surface: %v", props.OverPoint)
	}
	if props.Point.Z <= props.OverPoint.Z {
		t.Errorf("Point %v should lie below over point %v", props.Point, props.OverPoint)
	}
	if props.UnderPoint.Z <= core.Epsilon/2 {
		t.Errorf("Under point not below the surface: %v", props.UnderPoint)
	}
	if props.Point.Z >= props.UnderPoint.Z {
		t.Errorf("Point %v should lie above under point %v", props.Point, props.UnderPoint)
	}
}

func TestProperties_RefractiveIndices(t *testing.T) {
	a := NewGlassSphere().ApplyTransform(core.Scaling(2, 2, 2))
	a.Material().RefractiveIndex = 1.5
	b := NewGlassSphere().ApplyTransform(core.Translation(0, 0, -0.25))
	b.Material().RefractiveIndex = 2.0
	c := NewGlassSphere().ApplyTransform(core.Translation(0, 0, 0.25))
	c.Material().RefractiveIndex = 2.5

	r := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := Intersections{
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	}

	expected := [][2]float64{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for idx, want := range expected {
		props := xs[idx].Properties(r, xs)
		if props.N1 != want[0] || props.N2 != want[1] {
			t.Errorf("Intersection %d: expected (%g, %g), got (%g, %g)", idx, want[0], want[1], props.N1, props.N2)
		}
	}
}

func TestProperties_RefractiveIndicesMatchComputedHits(t *testing.T) {
	// the same scene, but with intersections produced by the shapes
	a := NewGlassSphere().ApplyTransform(core.Scaling(2, 2, 2))
	a.Material().RefractiveIndex = 1.5
	b := NewGlassSphere().ApplyTransform(core.Translation(0, 0, -0.25))
	b.Material().RefractiveIndex = 2.0
	c := NewGlassSphere().ApplyTransform(core.Translation(0, 0, 0.25))
	c.Material().RefractiveIndex = 2.5

	r := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	var xs Intersections
	for _, s := range []*Shape{a, b, c} {
		xs = append(xs, Intersect(s, r)...)
	}
	xs.Sort()

	if len(xs) != 6 {
		t.Fatalf("Expected 6 intersections, got %d", len(xs))
	}
	props := xs[2].Properties(r, xs)
	if props.N1 != 2.0 || props.N2 != 2.5 {
		t.Errorf("Expected (2, 2.5), got (%g, %g)", props.N1, props.N2)
	}
}

func TestProperties_RefractiveIndicesCloseCrossings(t *testing.T) {
	// a grazing ray enters and leaves the same sphere less than Epsilon apart
	glass := NewGlassSphere()
	glass.Material().RefractiveIndex = 1.5

	r := core.NewRay(core.NewPoint(0, 1, -4), core.NewVector(0, 0, 1))
	xs := Intersections{
		NewIntersection(4, glass),
		NewIntersection(4+core.Epsilon/2, glass),
	}

	enter := xs[0].Properties(r, xs)
	if enter.N1 != 1.0 || enter.N2 != 1.5 {
		t.Errorf("Entering: expected (1, 1.5), got (%g, %g)", enter.N1, enter.N2)
	}
	leave := xs[1].Properties(r, xs)
	if leave.N1 != 1.5 || leave.N2 != 1.0 {
		t.Errorf("Leaving: expected (1.5, 1), got (%g, %g)", leave.N1, leave.N2)
	}
}

func TestProperties_Schlick(t *testing.T) {
	s2 := math.Sqrt2 / 2

	tests := []struct {
		name     string
		ray      core.Ray
		ts       []float64
		hit      int
		expected float64
	}{
		{
			name:     "total internal reflection",
			ray:      core.NewRay(core.NewPoint(0, 0, s2), core.NewVector(0, 1, 0)),
			ts:       []float64{-s2, s2},
			hit:      1,
			expected: 1.0,
		},
		{
			name:     "perpendicular",
			ray:      core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0)),
			ts:       []float64{-1, 1},
			hit:      1,
			expected: 0.04,
		},
		{
			name:     "small angle, n2 > n1",
			ray:      core.NewRay(core.NewPoint(0, 0.99, -2), core.NewVector(0, 0, 1)),
			ts:       []float64{1.8589},
			hit:      0,
			expected: 0.48873,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := NewGlassSphere()
			shape.Material().RefractiveIndex = 1.5
			var xs Intersections
			for _, v := range tt.ts {
				xs = append(xs, NewIntersection(v, shape))
			}

			props := xs[tt.hit].Properties(tt.ray, xs)
			if got := props.Schlick(); !core.FloatEquals(got, tt.expected) {
				t.Errorf("Expected %g, got %g", tt.expected, got)
			}
		})
	}
}
