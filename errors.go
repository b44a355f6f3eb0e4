package raytracer

import "errors"

var (
	// ErrInvalidOperand indicates point/vector algebra applied to the wrong
	// kind of tuple, such as adding two points or normalizing a point.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrDivisionByZero indicates a scalar division by exactly zero or a
	// normalization of a zero-length vector.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotInvertible indicates a matrix whose determinant is approximately zero.
	ErrNotInvertible = errors.New("matrix not invertible")

	// ErrUnknownFormat indicates an image format or file extension the
	// exporter cannot encode.
	ErrUnknownFormat = errors.New("unknown image format")

	// ErrUnbounded indicates a simulation that would never terminate.
	ErrUnbounded = errors.New("unbounded simulation")
)
