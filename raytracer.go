package raytracer

import "math"

// Epsilon is the tolerance used by every approximate comparison in the
// package. Composed transforms accumulate rounding error, so raw float
// equality is never used for geometry.
const Epsilon = 1e-5

// Homogeneous discriminator values stored in Tuple.W.
const (
	pointW  = 1.0
	vectorW = 0.0
)

// ApproxEqual reports whether a and b differ by less than Epsilon.
// Comparisons involving NaN are false.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
