package geometry

import (
	"math"
	"testing"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

func TestCone_Hits(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"through the apex", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), []float64{5, 5}},
		{"both halves", core.NewPoint(1, 1, -5), core.NewVector(-0.5, -1, 1), []float64{4.55006, 49.44994}},
		{"parallel to one half", core.NewPoint(0, 0, -1), core.NewVector(0, 1, 1), []float64{math.Sqrt2 / 2}},
	}

	c := NewInfiniteCone()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := c.Intersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, xs)
			}
			for i := range xs {
				if !core.FloatEquals(xs[i], tt.expected[i]) {
					t.Errorf("Expected %v, got %v", tt.expected, xs)
				}
			}
		})
	}
}

func TestCone_ParallelToAxisThroughApex(t *testing.T) {
	// a=0 and b=0: the ray runs along the surface
	r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 1).Normalize())
	if xs := (Cone{Minimum: math.Inf(-1), Maximum: math.Inf(1)}).LocalIntersect(r); len(xs) != 0 {
		t.Errorf("Expected no hits, got %v", xs)
	}
}

func TestCone_Caps(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"outside the caps", core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0), 0},
		{"wall and one cap", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 1), 2},
		{"both walls and both caps", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 0), 4},
	}

	c := NewCone(-0.5, 0.5, true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := c.Intersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d hits, got %v", tt.count, xs)
			}
		})
	}
}

func TestCone_Normal(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(0, 0, 0), core.NewVector(0, 0, 0)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, -math.Sqrt2, 1)},
		{core.NewPoint(-1, -1, 0), core.NewVector(-1, 1, 0)},
	}

	c := Cone{Minimum: math.Inf(-1), Maximum: math.Inf(1)}
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("LocalNormalAt(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}

	// world normals come back unit length
	n := NewInfiniteCone().NormalAt(core.NewPoint(1, 1, 1))
	if !n.Equals(core.NewVector(1, -math.Sqrt2, 1).Normalize()) {
		t.Errorf("Unexpected world normal %v", n)
	}
}

func TestCone_CapNormals(t *testing.T) {
	c := Cone{Minimum: -1, Maximum: 1, Closed: true}

	if got := c.LocalNormalAt(core.NewPoint(0.2, 1, 0.3)); !got.Equals(core.NewVector(0, 1, 0)) {
		t.Errorf("Expected +y on the top cap, got %v", got)
	}
	if got := c.LocalNormalAt(core.NewPoint(-0.5, -1, 0)); !got.Equals(core.NewVector(0, -1, 0)) {
		t.Errorf("Expected -y on the bottom cap, got %v", got)
	}
}
