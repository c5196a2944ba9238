package core

import "math"

// Epsilon is the tolerance for float comparisons and for the over/under
// point offsets used to avoid self-intersection acne.
const Epsilon = 1e-4

// FloatEquals reports whether a and b differ by less than Epsilon
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
