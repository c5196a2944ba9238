package geometry

import (
	"testing"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

func TestCube_LocalIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t1, t2    float64
	}{
		{"+x", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), 4, 6},
		{"-x", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), 4, 6},
		{"+y", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), 4, 6},
		{"-y", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), 4, 6},
		{"+z", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), 4, 6},
		{"-z", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Cube{}.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			if len(xs) != 2 {
				t.Fatalf("Expected 2 intersections, got %v", xs)
			}
			if !core.FloatEquals(xs[0], tt.t1) || !core.FloatEquals(xs[1], tt.t2) {
				t.Errorf("Expected [%g %g], got %v", tt.t1, tt.t2, xs)
			}
		})
	}
}

func TestCube_Misses(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
	}{
		{core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018)},
		{core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345)},
		{core.NewPoint(0, 0, -2), core.NewVector(0.5345, 0.8018, 0.2673)},
		{core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1)},
		{core.NewPoint(0, 2, 2), core.NewVector(0, -1, 0)},
		{core.NewPoint(2, 2, 0), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		if xs := (Cube{}).LocalIntersect(core.NewRay(tt.origin, tt.direction)); len(xs) != 0 {
			t.Errorf("Ray from %v along %v: expected a miss, got %v", tt.origin, tt.direction, xs)
		}
	}
}

func TestCube_OppositeFacesAgree(t *testing.T) {
	c := NewCube()
	a := c.Intersect(core.NewRay(core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0)))
	b := c.Intersect(core.NewRay(core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0)))

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("Expected two hits each, got %v and %v", a, b)
	}
	for i := range a {
		if !core.FloatEquals(a[i], b[i]) {
			t.Errorf("Opposite faces disagree: %v vs %v", a, b)
		}
	}
}

func TestCube_Normal(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		if got := (Cube{}).LocalNormalAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("LocalNormalAt(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}
