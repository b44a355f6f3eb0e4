package raytracer

import (
	"fmt"
	"math"
)

// Point is a position in 3D space. Points are not translation invariant:
// a transform's translation column moves them.
type Point struct {
	X, Y, Z float64
}

// Vector is a displacement in 3D space with a magnitude and direction.
// Translations leave vectors unchanged.
type Vector struct {
	X, Y, Z float64
}

// Tuple is the homogeneous (x, y, z, w) form shared by points and vectors.
// W discriminates the two: 1 for a point, 0 for a vector. Any other W is
// invalid and rejected by every checked operation.
//
// Prefer Point and Vector, whose method sets only allow valid algebra.
// Tuple exists for homogeneous data such as matrix products and keeps
// the same rules as runtime checks.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// --- Point ---

// Add moves p by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// SubVector moves p backwards by v.
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equal reports whether p and q are approximately equal componentwise.
func (p Point) Equal(q Point) bool {
	return ApproxEqual(p.X, q.X) && ApproxEqual(p.Y, q.Y) && ApproxEqual(p.Z, q.Z)
}

// Tuple returns p in homogeneous form (w = 1).
func (p Point) Tuple() Tuple {
	return Tuple{p.X, p.Y, p.Z, pointW}
}

func (p Point) String() string {
	return fmt.Sprintf("point(%g, %g, %g)", p.X, p.Y, p.Z)
}

// --- Vector ---

// Add returns v + u.
func (v Vector) Add(u Vector) Vector {
	return Vector{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v - u.
func (v Vector) Sub(u Vector) Vector {
	return Vector{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k, v.Z * k}
}

// Divide returns v divided by k. Fails with ErrDivisionByZero when k is
// exactly zero.
func (v Vector) Divide(k float64) (Vector, error) {
	if k == 0 {
		return Vector{}, fmt.Errorf("divide %v by zero: %w", v, ErrDivisionByZero)
	}
	return Vector{v.X / k, v.Y / k, v.Z / k}, nil
}

// Magnitude returns the Euclidean length of v. The zero vector has length 0.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector pointing along v. A zero-length vector
// has no direction; the returned error matches both ErrInvalidOperand and
// ErrDivisionByZero.
func (v Vector) Normalize() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, fmt.Errorf("normalize zero-length vector: %w: %w", ErrInvalidOperand, ErrDivisionByZero)
	}
	return Vector{v.X / m, v.Y / m, v.Z / m}, nil
}

// Equal reports whether v and u are approximately equal componentwise.
func (v Vector) Equal(u Vector) bool {
	return ApproxEqual(v.X, u.X) && ApproxEqual(v.Y, u.Y) && ApproxEqual(v.Z, u.Z)
}

// Tuple returns v in homogeneous form (w = 0).
func (v Vector) Tuple() Tuple {
	return Tuple{v.X, v.Y, v.Z, vectorW}
}

func (v Vector) String() string {
	return fmt.Sprintf("vector(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Dot returns the scalar product of a and b.
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the vector product a × b.
func Cross(a, b Vector) Vector {
	return Vector{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// --- Tuple ---

// IsPoint reports whether t carries the point discriminator.
func (t Tuple) IsPoint() bool {
	return ApproxEqual(t.W, pointW)
}

// IsVector reports whether t carries the vector discriminator.
func (t Tuple) IsVector() bool {
	return ApproxEqual(t.W, vectorW)
}

// Point converts t to a Point. Fails with ErrInvalidOperand unless t is a point.
func (t Tuple) Point() (Point, error) {
	if !t.IsPoint() {
		return Point{}, fmt.Errorf("%v is not a point: %w", t, ErrInvalidOperand)
	}
	return Point{t.X, t.Y, t.Z}, nil
}

// Vector converts t to a Vector. Fails with ErrInvalidOperand unless t is a vector.
func (t Tuple) Vector() (Vector, error) {
	if !t.IsVector() {
		return Vector{}, fmt.Errorf("%v is not a vector: %w", t, ErrInvalidOperand)
	}
	return Vector{t.X, t.Y, t.Z}, nil
}

// Add returns t + u with w = t.w + u.w. Adding two points is rejected.
func (t Tuple) Add(u Tuple) (Tuple, error) {
	if err := t.valid(); err != nil {
		return Tuple{}, err
	}
	if err := u.valid(); err != nil {
		return Tuple{}, err
	}
	if t.IsPoint() && u.IsPoint() {
		return Tuple{}, fmt.Errorf("add %v and %v: both are points: %w", t, u, ErrInvalidOperand)
	}
	return Tuple{t.X + u.X, t.Y + u.Y, t.Z + u.Z, t.W + u.W}, nil
}

// Sub returns t - u with w = t.w - u.w. Subtracting a point from a vector
// is rejected.
func (t Tuple) Sub(u Tuple) (Tuple, error) {
	if err := t.valid(); err != nil {
		return Tuple{}, err
	}
	if err := u.valid(); err != nil {
		return Tuple{}, err
	}
	if t.IsVector() && u.IsPoint() {
		return Tuple{}, fmt.Errorf("subtract point %v from vector %v: %w", u, t, ErrInvalidOperand)
	}
	return Tuple{t.X - u.X, t.Y - u.Y, t.Z - u.Z, t.W - u.W}, nil
}

// Negate returns -t. Only vectors may be negated.
func (t Tuple) Negate() (Tuple, error) {
	v, err := t.vectorOperand("negate")
	if err != nil {
		return Tuple{}, err
	}
	return v.Negate().Tuple(), nil
}

// Scale returns t multiplied by k. Only vectors may be scaled.
func (t Tuple) Scale(k float64) (Tuple, error) {
	v, err := t.vectorOperand("scale")
	if err != nil {
		return Tuple{}, err
	}
	return v.Scale(k).Tuple(), nil
}

// Divide returns t divided by k. Only vectors may be divided, and k must
// not be zero.
func (t Tuple) Divide(k float64) (Tuple, error) {
	v, err := t.vectorOperand("divide")
	if err != nil {
		return Tuple{}, err
	}
	q, err := v.Divide(k)
	if err != nil {
		return Tuple{}, err
	}
	return q.Tuple(), nil
}

// Magnitude returns sqrt(x²+y²+z²+w²) of a vector.
func (t Tuple) Magnitude() (float64, error) {
	if _, err := t.vectorOperand("magnitude of"); err != nil {
		return 0, err
	}
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W), nil
}

// Normalize returns the unit vector along t. Points and zero-length
// vectors are rejected.
func (t Tuple) Normalize() (Tuple, error) {
	v, err := t.vectorOperand("normalize")
	if err != nil {
		return Tuple{}, err
	}
	n, err := v.Normalize()
	if err != nil {
		return Tuple{}, err
	}
	return n.Tuple(), nil
}

// Equal reports whether t and u are approximately equal componentwise.
func (t Tuple) Equal(u Tuple) bool {
	return ApproxEqual(t.X, u.X) && ApproxEqual(t.Y, u.Y) &&
		ApproxEqual(t.Z, u.Z) && ApproxEqual(t.W, u.W)
}

func (t Tuple) String() string {
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}

// TupleDot returns the dot product of two vector tuples.
func TupleDot(a, b Tuple) (float64, error) {
	va, err := a.vectorOperand("dot")
	if err != nil {
		return 0, err
	}
	vb, err := b.vectorOperand("dot")
	if err != nil {
		return 0, err
	}
	return Dot(va, vb), nil
}

// TupleCross returns the cross product of two vector tuples.
func TupleCross(a, b Tuple) (Tuple, error) {
	va, err := a.vectorOperand("cross")
	if err != nil {
		return Tuple{}, err
	}
	vb, err := b.vectorOperand("cross")
	if err != nil {
		return Tuple{}, err
	}
	return Cross(va, vb).Tuple(), nil
}

// valid rejects a discriminator that is neither a point nor a vector.
func (t Tuple) valid() error {
	if !t.IsPoint() && !t.IsVector() {
		return fmt.Errorf("%v has invalid w: %w", t, ErrInvalidOperand)
	}
	return nil
}

// vectorOperand returns t as a Vector for an operation that is only
// defined on vectors.
func (t Tuple) vectorOperand(op string) (Vector, error) {
	if err := t.valid(); err != nil {
		return Vector{}, fmt.Errorf("%s: %w", op, err)
	}
	if !t.IsVector() {
		return Vector{}, fmt.Errorf("%s point %v: %w", op, t, ErrInvalidOperand)
	}
	return Vector{t.X, t.Y, t.Z}, nil
}
