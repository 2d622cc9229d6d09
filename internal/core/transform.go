package core

import "math"

// Matrix is a 2D affine transform:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// Matrices are values; composing returns a new matrix and never mutates
// the receiver.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a pure translation.
func Translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scaling returns a pure scale.
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotation returns a rotation by theta radians (clockwise in screen space).
func Rotation(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Mul returns m·n: n is applied first, then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate returns m with a translation applied before it,
// matching canvas-style ctx.translate semantics.
func (m Matrix) Translate(tx, ty float64) Matrix {
	return m.Mul(Translation(tx, ty))
}

// Scale returns m with a scale applied before it.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Scaling(sx, sy))
}

// Rotate returns m with a rotation applied before it.
func (m Matrix) Rotate(theta float64) Matrix {
	return m.Mul(Rotation(theta))
}

// Apply maps a point through the transform.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert returns the inverse transform.
// ok is false when the matrix is singular.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) {
		return Matrix{}, false
	}
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}

// ScaleFactor returns the geometric mean of the axis scales.
// Used to convert line widths between spaces.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
