package svgpath

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Matrix2D represents an SVG style matrix
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a*b
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F}
}

// Translate returns a.Mult(translation by (x, y))
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale returns a.Mult(scaling by (x, y))
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Transform multiples the input vector by matrix m and outputs the results vector
// components.
func (a Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*a.A + y1*a.C + a.E
	y2 = x1*a.B + y1*a.D + a.F
	return
}

// TFixed transforms a fixed.Point26_6 by the matrix
func (a Matrix2D) TFixed(x fixed.Point26_6) (y fixed.Point26_6) {
	y.X = fixed.Int26_6((float64(x.X)*a.A + float64(x.Y)*a.C) + a.E*64)
	y.Y = fixed.Int26_6((float64(x.X)*a.B + float64(x.Y)*a.D) + a.F*64)
	return
}

// IsIdentity reports whether the matrix leaves every point unchanged.
func (a Matrix2D) IsIdentity() bool { return a == Identity }

// Offset returns the translation part of the matrix.
func (a Matrix2D) Offset() (x, y float64) { return a.E, a.F }

// String returns the SVG transform attribute value of the matrix,
// using the short translate form when possible.
func (a Matrix2D) String() string {
	if a.A == 1 && a.B == 0 && a.C == 0 && a.D == 1 {
		return fmt.Sprintf("translate(%g,%g)", a.E, a.F)
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.A, a.B, a.C, a.D, a.E, a.F)
}
