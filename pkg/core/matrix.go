package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// singularThreshold is the determinant magnitude below which a matrix is
// treated as non-invertible
const singularThreshold = 1e-12

// Matrix is a 4x4 affine transform. Storage is delegated to mgl64 (column
// major); every accessor here speaks in row/column terms.
type Matrix struct {
	m mgl64.Mat4
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{m: mgl64.Ident4()}
}

// NewMatrix builds a matrix from four rows
func NewMatrix(r0, r1, r2, r3 [4]float64) Matrix {
	return Matrix{m: mgl64.Mat4FromRows(mgl64.Vec4(r0), mgl64.Vec4(r1), mgl64.Vec4(r2), mgl64.Vec4(r3))}
}

// At returns the element at the given row and column
func (a Matrix) At(row, col int) float64 {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		panic(fmt.Sprintf("matrix index (%d, %d) out of bounds", row, col))
	}
	return a.m.At(row, col)
}

// Multiply returns a*b. The right-most matrix is applied first.
func (a Matrix) Multiply(b Matrix) Matrix {
	return Matrix{m: a.m.Mul4(b.m)}
}

// MultiplyTuple transforms a tuple. Points pick up translation, vectors don't.
func (a Matrix) MultiplyTuple(t Tuple) Tuple {
	v := a.m.Mul4x1(mgl64.Vec4{t.X, t.Y, t.Z, t.W})
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Transpose returns the transposed matrix
func (a Matrix) Transpose() Matrix {
	return Matrix{m: a.m.Transpose()}
}

// Determinant returns the determinant of the matrix
func (a Matrix) Determinant() float64 {
	return a.m.Det()
}

// IsInvertible reports whether the matrix has an inverse
func (a Matrix) IsInvertible() bool {
	return math.Abs(a.Determinant()) >= singularThreshold
}

// Inverse returns the inverse. A non-invertible matrix means the scene was
// built with a degenerate transform, so this panics rather than returning garbage.
func (a Matrix) Inverse() Matrix {
	if !a.IsInvertible() {
		panic(fmt.Sprintf("matrix is not invertible:\n%v", a))
	}
	return Matrix{m: a.m.Inv()}
}

// Equals compares two matrices element-wise within Epsilon
func (a Matrix) Equals(b Matrix) bool {
	return a.m.ApproxEqualThreshold(b.m, Epsilon)
}

func (a Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		r := a.m.Row(row)
		fmt.Fprintf(&sb, "| %9.5f %9.5f %9.5f %9.5f |\n", r[0], r[1], r[2], r[3])
	}
	return sb.String()
}
