package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, Epsilon)

func TestTuple_PointAndVector(t *testing.T) {
	p := NewPoint(4.3, -4.2, 3.1)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Expected %v to be a point", p)
	}

	v := NewVector(4.3, -4.2, 3.1)
	if v.IsPoint() || !v.IsVector() {
		t.Errorf("Expected %v to be a vector", v)
	}

	// Points pushed through an inverted transform keep rounding error in W
	drifted := NewTuple(1, 2, 3, 0.9999999999999999)
	if !drifted.IsPoint() || drifted.IsVector() {
		t.Errorf("Expected %v to be a point", drifted)
	}
	diff := NewPoint(1, 1, 1).Subtract(drifted)
	if !diff.IsVector() || diff.IsPoint() {
		t.Errorf("Expected %v to be a vector", diff)
	}

	if w := NewTuple(1, 1, 1, 0.5); w.IsPoint() || w.IsVector() {
		t.Errorf("Expected %v to be neither a point nor a vector", w)
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{"point plus vector", NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1)), NewPoint(1, 1, 6)},
		{"point minus point", NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)), NewVector(-2, -4, -6)},
		{"point minus vector", NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)), NewPoint(-2, -4, -6)},
		{"vector minus vector", NewVector(3, 2, 1).Subtract(NewVector(5, 6, 7)), NewVector(-2, -4, -6)},
		{"negate", NewTuple(1, -2, 3, -4).Negate(), NewTuple(-1, 2, -3, 4)},
		{"scale", NewTuple(1, -2, 3, -4).Multiply(3.5), NewTuple(3.5, -7, 10.5, -14)},
		{"fraction", NewTuple(1, -2, 3, -4).Multiply(0.5), NewTuple(0.5, -1, 1.5, -2)},
		{"divide", NewTuple(1, -2, 3, -4).Divide(2), NewTuple(0.5, -1, 1.5, -2)},
		{"hadamard", NewColor(1, 0.2, 0.4).Hadamard(NewColor(0.9, 1, 0.1)), NewColor(0.9, 0.2, 0.04)},
		{"cross", NewVector(1, 2, 3).Cross(NewVector(2, 3, 4)), NewVector(-1, 2, -1)},
		{"cross reversed", NewVector(2, 3, 4).Cross(NewVector(1, 2, 3)), NewVector(1, -2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.got, approx); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTuple_LengthAndNormalize(t *testing.T) {
	if got := NewVector(1, 2, 3).Length(); !FloatEquals(got, math.Sqrt(14)) {
		t.Errorf("Expected length sqrt(14), got %f", got)
	}

	n := NewVector(1, 2, 3).Normalize()
	expected := NewVector(1/math.Sqrt(14), 2/math.Sqrt(14), 3/math.Sqrt(14))
	if !n.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, n)
	}
	if !FloatEquals(n.Length(), 1) {
		t.Errorf("Expected unit length, got %f", n.Length())
	}

	if got := NewVector(1, 2, 3).Dot(NewVector(2, 3, 4)); got != 20 {
		t.Errorf("Expected dot product 20, got %f", got)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Tuple
		expected Tuple
	}{
		{"at 45 degrees", NewVector(1, -1, 0), NewVector(0, 1, 0), NewVector(1, 1, 0)},
		{"off a slanted surface", NewVector(0, -1, 0), NewVector(math.Sqrt2/2, math.Sqrt2/2, 0), NewVector(1, 0, 0)},
		{"with rounding error in w", NewTuple(1, -1, 0, -6.7e-18), NewVector(0, 1, 0), NewVector(1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.n); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTuple_ReflectPointPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected reflecting a point to panic")
		}
	}()
	NewPoint(1, 0, 0).Reflect(NewVector(0, 1, 0))
}
