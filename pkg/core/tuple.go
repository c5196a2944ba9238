package core

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous 4-component value. W=1 marks a point, W=0 a vector.
// Colors reuse the representation with R, G, B aliasing X, Y, Z.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from its four components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (W=1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (W=0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// NewColor creates a color; the W component is unused and left at zero
func NewColor(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b}
}

var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
)

// IsPoint reports whether the tuple is a point. W is compared within
// Epsilon since inverted transforms leave rounding error in it.
func (t Tuple) IsPoint() bool {
	return FloatEquals(t.W, 1)
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return math.Abs(t.W) < Epsilon
}

// R returns the red channel of a color
func (t Tuple) R() float64 { return t.X }

// G returns the green channel of a color
func (t Tuple) G() float64 { return t.Y }

// B returns the blue channel of a color
func (t Tuple) B() float64 { return t.Z }

// Add returns the component-wise sum. point+vector=point, vector+vector=vector.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference. point-point=vector.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Hadamard returns the component-wise product, used to modulate colors
func (t Tuple) Hadamard(other Tuple) Tuple {
	return Tuple{t.X * other.X, t.Y * other.Y, t.Z * other.Z, t.W * other.W}
}

// Dot returns the dot product over all four components
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Length returns the magnitude of the tuple
func (t Tuple) Length() float64 {
	return math.Sqrt(t.Dot(t))
}

// Normalize returns a unit tuple in the same direction
func (t Tuple) Normalize() Tuple {
	length := t.Length()
	if length == 0 {
		return t
	}
	return t.Divide(length)
}

// Reflect mirrors the vector around the unit normal n.
// Reflecting a point is a scene-construction bug and panics.
func (t Tuple) Reflect(n Tuple) Tuple {
	if !t.IsVector() {
		panic(fmt.Sprintf("reflect: %v is not a vector", t))
	}
	return t.Subtract(n.Multiply(2 * t.Dot(n)))
}

// Equals compares two tuples component-wise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return FloatEquals(t.X, other.X) &&
		FloatEquals(t.Y, other.Y) &&
		FloatEquals(t.Z, other.Z) &&
		FloatEquals(t.W, other.W)
}

func (t Tuple) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
