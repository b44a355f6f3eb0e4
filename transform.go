package raytracer

import "math"

// Translation returns the affine matrix that moves points by (x, y, z).
//
//	| 1  0  0  x |
//	| 0  1  0  y |
//	| 0  0  1  z |
//	| 0  0  0  1 |
//
// Vectors have w = 0, so the translation column never reaches them.
func Translation(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns the matrix that scales each axis independently. A
// negative factor reflects across that axis.
func Scaling(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a rotation of r radians around the x axis.
// Positive angles follow the left-hand rule.
func RotationX(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation of r radians around the y axis.
func RotationY(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation of r radians around the z axis.
func RotationZ(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns the matrix that moves each component in proportion to
// the other two. xy is the amount x moves in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// Chain composes transforms in application order: the first matrix is
// applied first. Chain(a, b, c) equals c * b * a. With no arguments it
// returns the identity.
//
//	Chain(RotationX(math.Pi/2), Scaling(5, 5, 5), Translation(10, 5, 7))
func Chain(ms ...Matrix4) Matrix4 {
	out := Identity4()
	for _, m := range ms {
		out = m.Mul(out)
	}
	return out
}
