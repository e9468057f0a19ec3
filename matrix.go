package rowan

import "math"

// Matrix is a 2D affine transform.
//
//	Layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// identityMatrix is the identity affine matrix.
var identityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return identityMatrix
}

// TranslationMatrix returns a pure translation.
func TranslationMatrix(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// composeMatrix builds a local matrix from scalar transform properties.
// Composition order: Scale -> Rotate -> Translate.
func composeMatrix(x, y, scaleX, scaleY, rotation float64) Matrix {
	sin, cos := math.Sincos(rotation)
	return Matrix{
		cos * scaleX,
		sin * scaleX,
		-sin * scaleY,
		cos * scaleY,
		x,
		y,
	}
}

// Mul multiplies two affine matrices: result = m * child. Applying the
// result to a point is equivalent to applying child first, then m.
func (m Matrix) Mul(c Matrix) Matrix {
	return Matrix{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert computes the inverse of the matrix. Returns the identity matrix if
// the matrix is singular (determinant ~ 0), so coordinate conversion on a
// zero-scaled node degrades instead of producing NaNs.
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms a point by the matrix.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// MapRect maps an axis-aligned rectangle through the matrix and re-derives
// an axis-aligned box from the four transformed corners. Empty rectangles
// map to empty rectangles so unions ignore them.
func (m Matrix) MapRect(r Rect) Rect {
	if r.Empty() {
		return Rect{}
	}
	x0, y0 := m.Apply(r.X, r.Y)
	x1, y1 := m.Apply(r.X+r.Width, r.Y)
	x2, y2 := m.Apply(r.X, r.Y+r.Height)
	x3, y3 := m.Apply(r.X+r.Width, r.Y+r.Height)
	minX := min(min(x0, x1), min(x2, x3))
	minY := min(min(y0, y1), min(y2, y3))
	maxX := max(max(x0, x1), max(x2, x3))
	maxY := max(max(y0, y1), max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// decompose extracts scalar transform properties from the matrix. The
// returned values recompose to m via composeMatrix for any matrix without
// skew; skew collapses into the scales.
func (m Matrix) decompose() (x, y, scaleX, scaleY, rotation float64) {
	x = m[4]
	y = m[5]
	rotation = math.Atan2(m[1], m[0])
	scaleX = math.Hypot(m[0], m[1])
	if scaleX != 0 {
		// Signed so that mirrored transforms round-trip.
		scaleY = (m[0]*m[3] - m[2]*m[1]) / scaleX
	} else {
		scaleY = math.Hypot(m[2], m[3])
	}
	return x, y, scaleX, scaleY, rotation
}
