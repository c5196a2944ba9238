package core

import "github.com/go-gl/mathgl/mgl64"

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Translate3D(x, y, z)}
}

// Scaling scales along each axis
func Scaling(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Scale3D(x, y, z)}
}

// RotationX rotates by r radians around the x axis
func RotationX(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DX(r)}
}

// RotationY rotates by r radians around the y axis
func RotationY(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DY(r)}
}

// RotationZ rotates by r radians around the z axis
func RotationZ(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DZ(r)}
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(
		[4]float64{1, xy, xz, 0},
		[4]float64{yx, 1, yz, 0},
		[4]float64{zx, zy, 1, 0},
		[4]float64{0, 0, 0, 1},
	)
}

// Chain composes transforms so that Chain(a, b, c) == a*b*c; c is applied first
func Chain(transforms ...Matrix) Matrix {
	result := Identity()
	for _, t := range transforms {
		result = result.Multiply(t)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix(
		[4]float64{left.X, left.Y, left.Z, 0},
		[4]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[4]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[4]float64{0, 0, 0, 1},
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
