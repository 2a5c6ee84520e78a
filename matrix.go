package quill

import "math"

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-12

// Matrix is a 3x3 homogeneous 2D transform stored in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// Points are column vectors (x, y, 1), so m[2] and m[5] hold the translation.
// The zero value is not the identity; use [Identity].
type Matrix [9]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation returns a matrix that moves points by (dx, dy).
func Translation(dx, dy float64) Matrix {
	return Matrix{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	}
}

// Rotation returns a matrix rotating by degrees, counter-clockwise in the
// y-up scene frame.
func Rotation(degrees float64) Matrix {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return Matrix{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Scaling returns a non-uniform scale matrix.
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Orthographic returns a projection mapping the viewport rectangle to the
// canonical [-1, 1] device range: left/right map to x=-1/x=1 and bottom/top
// map to y=-1/y=1. For the centered y-up scene frame use
// Orthographic(-w/2, w/2, h/2, -h/2).
func Orthographic(left, right, top, bottom float64) Matrix {
	return Matrix{
		2 / (right - left), 0, -(right + left) / (right - left),
		0, 2 / (top - bottom), -(top + bottom) / (top - bottom),
		0, 0, 1,
	}
}

// Multiply returns m·b. Used for transform chaining, the result applies b
// first and then m.
func (m Matrix) Multiply(b Matrix) Matrix {
	var r Matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*b[col] + m[row*3+1]*b[3+col] + m[row*3+2]*b[6+col]
		}
	}
	return r
}

// Determinant returns the determinant of m.
func (m Matrix) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Invert returns the analytic inverse of m. ok is false when m is singular
// (zero, near-zero or non-finite determinant); the returned matrix is then
// the identity and must not be used.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Determinant()
	if math.IsNaN(det) || math.IsInf(det, 0) || math.Abs(det) < singularEpsilon {
		return Identity(), false
	}
	d := 1 / det
	return Matrix{
		(m[4]*m[8] - m[5]*m[7]) * d,
		(m[2]*m[7] - m[1]*m[8]) * d,
		(m[1]*m[5] - m[2]*m[4]) * d,

		(m[5]*m[6] - m[3]*m[8]) * d,
		(m[0]*m[8] - m[2]*m[6]) * d,
		(m[2]*m[3] - m[0]*m[5]) * d,

		(m[3]*m[7] - m[4]*m[6]) * d,
		(m[1]*m[6] - m[0]*m[7]) * d,
		(m[0]*m[4] - m[1]*m[3]) * d,
	}, true
}

// Transform applies m to the point p (homogeneous w=1). The result is
// divided by the resulting w, which stays 1 for affine matrices.
func (m Matrix) Transform(p Vec2) Vec2 {
	x := m[0]*p.X + m[1]*p.Y + m[2]
	y := m[3]*p.X + m[4]*p.Y + m[5]
	w := m[6]*p.X + m[7]*p.Y + m[8]
	if w != 1 && w != 0 {
		x /= w
		y /= w
	}
	return Vec2{x, y}
}

// TransformVector applies the linear part of m to v, ignoring translation.
func (m Matrix) TransformVector(v Vec2) Vec2 {
	return Vec2{m[0]*v.X + m[1]*v.Y, m[3]*v.X + m[4]*v.Y}
}

// Float32 returns m as float32 values in column-major order, the layout GPU
// mat3 uniforms expect.
func (m Matrix) Float32() [9]float32 {
	return [9]float32{
		float32(m[0]), float32(m[3]), float32(m[6]),
		float32(m[1]), float32(m[4]), float32(m[7]),
		float32(m[2]), float32(m[5]), float32(m[8]),
	}
}

// ApproxEqual reports whether every element of m is within eps of b.
func (m Matrix) ApproxEqual(b Matrix, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
