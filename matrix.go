package raytracer

import "fmt"

// Matrix2 is a row-major 2x2 matrix.
type Matrix2 [2][2]float64

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [3][3]float64

// Matrix4 is a row-major 4x4 matrix. Affine transforms are Matrix4 values
// applied to column tuples.
type Matrix4 [4][4]float64

// Identity2 returns the 2x2 identity matrix.
func Identity2() Matrix2 {
	return Matrix2{
		{1, 0},
		{0, 1},
	}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// --- Matrix2 ---

// Mul returns m * o.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	var r Matrix2
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			r[row][col] = m[row][0]*o[0][col] + m[row][1]*o[1][col]
		}
	}
	return r
}

// Transpose returns m with rows and columns swapped.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// Determinant returns ad - bc.
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// IsInvertible reports whether the determinant is not approximately zero.
func (m Matrix2) IsInvertible() bool {
	return !ApproxEqual(m.Determinant(), 0)
}

// Inverse returns the inverse of m using the closed form for 2x2 matrices.
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if ApproxEqual(det, 0) {
		return Matrix2{}, fmt.Errorf("invert 2x2 (det %g): %w", det, ErrNotInvertible)
	}
	return Matrix2{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}, nil
}

// Equal reports whether m and o are approximately equal elementwise.
func (m Matrix2) Equal(o Matrix2) bool {
	for row := range m {
		for col := range m[row] {
			if !ApproxEqual(m[row][col], o[row][col]) {
				return false
			}
		}
	}
	return true
}

// --- Matrix3 ---

// Mul returns m * o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row][col] = m[row][0]*o[0][col] +
				m[row][1]*o[1][col] +
				m[row][2]*o[2][col]
		}
	}
	return r
}

// Transpose returns m with rows and columns swapped.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row][col] = m[col][row]
		}
	}
	return r
}

// Submatrix returns m without the given row and column.
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var r Matrix2
	ri := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < 3; j++ {
			if j == col {
				continue
			}
			r[ri][ci] = m[i][j]
			ci++
		}
		ri++
	}
	return r
}

// Minor returns the determinant of Submatrix(row, col).
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col) negated when row+col is odd.
func (m Matrix3) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

// Determinant expands m along its first row.
func (m Matrix3) Determinant() float64 {
	var det float64
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is not approximately zero.
func (m Matrix3) IsInvertible() bool {
	return !ApproxEqual(m.Determinant(), 0)
}

// Inverse returns the inverse of m by the adjugate method.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if ApproxEqual(det, 0) {
		return Matrix3{}, fmt.Errorf("invert 3x3 (det %g): %w", det, ErrNotInvertible)
	}
	var r Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			// Transposed: the cofactor at (row, col) lands at (col, row).
			r[col][row] = m.Cofactor(row, col) / det
		}
	}
	return r, nil
}

// Equal reports whether m and o are approximately equal elementwise.
func (m Matrix3) Equal(o Matrix3) bool {
	for row := range m {
		for col := range m[row] {
			if !ApproxEqual(m[row][col], o[row][col]) {
				return false
			}
		}
	}
	return true
}

// --- Matrix4 ---

// Mul returns m * o. Applied to a tuple, the product applies o first,
// then m.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m[row][0]*o[0][col] +
				m[row][1]*o[1][col] +
				m[row][2]*o[2][col] +
				m[row][3]*o[3][col]
		}
	}
	return r
}

// MulTuple returns m * t, treating t as a 4x1 column.
func (m Matrix4) MulTuple(t Tuple) Tuple {
	row := func(i int) float64 {
		return m[i][0]*t.X + m[i][1]*t.Y + m[i][2]*t.Z + m[i][3]*t.W
	}
	return Tuple{row(0), row(1), row(2), row(3)}
}

// MulPoint applies m to p. The bottom row of an affine matrix is
// (0, 0, 0, 1), so the result keeps w = 1 and is returned as a Point.
func (m Matrix4) MulPoint(p Point) Point {
	t := m.MulTuple(p.Tuple())
	return Point{t.X, t.Y, t.Z}
}

// MulVector applies m to v. The translation column is multiplied by
// w = 0 and has no effect.
func (m Matrix4) MulVector(v Vector) Vector {
	t := m.MulTuple(v.Tuple())
	return Vector{t.X, t.Y, t.Z}
}

// Transpose returns m with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m[col][row]
		}
	}
	return r
}

// Submatrix returns m without the given row and column.
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var r Matrix3
	ri := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			r[ri][ci] = m[i][j]
			ci++
		}
		ri++
	}
	return r
}

// Minor returns the determinant of Submatrix(row, col).
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col) negated when row+col is odd.
func (m Matrix4) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

// Determinant expands m along its first row.
func (m Matrix4) Determinant() float64 {
	var det float64
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is not approximately zero.
func (m Matrix4) IsInvertible() bool {
	return !ApproxEqual(m.Determinant(), 0)
}

// Inverse returns the inverse of m by the adjugate method: the entry at
// (row, col) is cofactor(col, row) / det.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if ApproxEqual(det, 0) {
		return Matrix4{}, fmt.Errorf("invert 4x4 (det %g): %w", det, ErrNotInvertible)
	}
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col][row] = m.Cofactor(row, col) / det
		}
	}
	return r, nil
}

// Equal reports whether m and o are approximately equal elementwise.
func (m Matrix4) Equal(o Matrix4) bool {
	for row := range m {
		for col := range m[row] {
			if !ApproxEqual(m[row][col], o[row][col]) {
				return false
			}
		}
	}
	return true
}

func cofactorSign(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -1
	}
	return 1
}
