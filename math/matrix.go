package math

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrSingular is returned by Inverse when the determinant is zero.
var ErrSingular = errors.New("math: singular matrix")

/*	row first, points are column vectors multiplied on the right
	+-          -+ +-           -+ +-          -+
	| 0  1  2  3 | | 00 01 02 03 | | 1  0  0  x |
	| 4  5  6  7 | | 10 11 12 13 | | 0  1  0  y |
	| 8  9 10 11 | | 20 21 22 23 | | 0  0  1  z |
	|12 13 14 15 | | 30 31 32 33 | | 0  0  0  1 |
	+-          -+ +-           -+ +-          -+
*/
type Matrix [16]float64

func (self Matrix) String() string {
	r := ""

	for i, n := range self {
		if i > 0 && i%4 == 0 {
			r += "\n"
		}

		r += fmt.Sprintf("%5.2f ", n)
	}

	return r
}

func (self Matrix) Float64() [16]float64 {
	m := [16]float64(self)
	return m
}

// Float32 keeps the row-major element order, upload with the
// transpose flag set when the consumer expects column-major data.
func (self Matrix) Float32() [16]float32 {
	m := [16]float32{}
	for i := range m {
		m[i] = float32(self[i])
	}

	return m
}

func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// http://en.wikipedia.org/wiki/Translation_matrix
func Translation(x, y, z float64) Matrix {
	return Matrix{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// http://en.wikipedia.org/wiki/Rotation_matrix
func RotationX(angle float64) Matrix {
	sin := math.Sin(angle)
	cos := math.Cos(angle)

	return Matrix{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
}

func RotationY(angle float64) Matrix {
	sin := math.Sin(angle)
	cos := math.Cos(angle)

	return Matrix{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

func RotationZ(angle float64) Matrix {
	sin := math.Sin(angle)
	cos := math.Cos(angle)

	return Matrix{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// http://en.wikipedia.org/wiki/Scaling_matrix
func Scale(rx, ry, rz float64) Matrix {
	return Matrix{
		rx, 0, 0, 0,
		0, ry, 0, 0,
		0, 0, rz, 0,
		0, 0, 0, 1,
	}
}

// Perspective builds a symmetric-frustum projection matrix.
// fovy is in degrees. near <= 0 or far <= near is a precondition
// violation, the result is unspecified but safe to compute.
func Perspective(fovy, aspect, near, far float64) Matrix {
	nmf := near - far
	d := 1. / math.Tan(fovy*DEG2RAD/2.0)

	return Matrix{
		d / aspect, 0, 0, 0,
		0, d, 0, 0,
		0, 0, (near + far) / nmf, (2 * near * far) / nmf,
		0, 0, -1, 0,
	}
}

// LookAt returns a camera-to-world matrix for a viewer at eye
// facing target.
func LookAt(eye, target, up Vector) Matrix {
	z := eye.Sub(target).Normalize()
	if z.Length() == 0 {
		z[2] = 1
	}

	x := up.Cross(z).Normalize()
	if x.Length() == 0 {
		z[0] += 0.0001
		x = up.Cross(z).Normalize()
	}

	y := z.Cross(x)

	return Matrix{
		x[0], y[0], z[0], eye[0],
		x[1], y[1], z[1], eye[1],
		x[2], y[2], z[2], eye[2],
		0, 0, 0, 1,
	}
}

func (self Matrix) Transform(v Vector) Vector {
	return Vector{
		self[0]*v[0] + self[1]*v[1] + self[2]*v[2] + self[3]*v[3],
		self[4]*v[0] + self[5]*v[1] + self[6]*v[2] + self[7]*v[3],
		self[8]*v[0] + self[9]*v[1] + self[10]*v[2] + self[11]*v[3],
		self[12]*v[0] + self[13]*v[1] + self[14]*v[2] + self[15]*v[3],
	}
}

func (self Matrix) Transpose() Matrix {
	return Matrix{
		self[0], self[4], self[8], self[12],
		self[1], self[5], self[9], self[13],
		self[2], self[6], self[10], self[14],
		self[3], self[7], self[11], self[15],
	}
}

// http://en.wikipedia.org/wiki/Matrix_multiplication
func (self Matrix) Mul(m Matrix) Matrix {
	var r Matrix

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row*4+col] = self[row*4]*m[col] +
				self[row*4+1]*m[4+col] +
				self[row*4+2]*m[8+col] +
				self[row*4+3]*m[12+col]
		}
	}

	return r
}

func (self Matrix) MulScalar(s float64) Matrix {
	var r Matrix
	for i := range self {
		r[i] = self[i] * s
	}

	return r
}

// Position returns the translation column.
func (self Matrix) Position() Vector {
	return Vector{
		self[3],
		self[7],
		self[11],
		0}
}

// SetPosition overwrites the translation column, the rotation/scale
// block is untouched.
func (self *Matrix) SetPosition(position Vector) {
	self[3] = position[0]
	self[7] = position[1]
	self[11] = position[2]
}

func (self Matrix) Equals(m Matrix, precision int) bool {
	p := math.Pow(10, float64(-precision))

	for i := range self {
		if !NearlyEquals(self[i], m[i], p) {
			return false
		}
	}

	return true
}

// http://www.euclideanspace.com/maths/algebra/matrix/functions/determinant/index.htm
func (self Matrix) Determinant() float64 {
	c0 := self[5]*self[10]*self[15] - self[5]*self[11]*self[14] - self[9]*self[6]*self[15] +
		self[9]*self[7]*self[14] + self[13]*self[6]*self[11] - self[13]*self[7]*self[10]
	c4 := -self[4]*self[10]*self[15] + self[4]*self[11]*self[14] + self[8]*self[6]*self[15] -
		self[8]*self[7]*self[14] - self[12]*self[6]*self[11] + self[12]*self[7]*self[10]
	c8 := self[4]*self[9]*self[15] - self[4]*self[11]*self[13] - self[8]*self[5]*self[15] +
		self[8]*self[7]*self[13] + self[12]*self[5]*self[11] - self[12]*self[7]*self[9]
	c12 := -self[4]*self[9]*self[14] + self[4]*self[10]*self[13] + self[8]*self[5]*self[14] -
		self[8]*self[6]*self[13] - self[12]*self[5]*self[10] + self[12]*self[6]*self[9]

	return self[0]*c0 + self[1]*c4 + self[2]*c8 + self[3]*c12
}

// http://www.euclideanspace.com/maths/algebra/matrix/functions/inverse/fourD/index.htm
func (self Matrix) Inverse() (Matrix, error) {
	var inv Matrix

	inv[0] = self[5]*self[10]*self[15] - self[5]*self[11]*self[14] - self[9]*self[6]*self[15] +
		self[9]*self[7]*self[14] + self[13]*self[6]*self[11] - self[13]*self[7]*self[10]
	inv[4] = -self[4]*self[10]*self[15] + self[4]*self[11]*self[14] + self[8]*self[6]*self[15] -
		self[8]*self[7]*self[14] - self[12]*self[6]*self[11] + self[12]*self[7]*self[10]
	inv[8] = self[4]*self[9]*self[15] - self[4]*self[11]*self[13] - self[8]*self[5]*self[15] +
		self[8]*self[7]*self[13] + self[12]*self[5]*self[11] - self[12]*self[7]*self[9]
	inv[12] = -self[4]*self[9]*self[14] + self[4]*self[10]*self[13] + self[8]*self[5]*self[14] -
		self[8]*self[6]*self[13] - self[12]*self[5]*self[10] + self[12]*self[6]*self[9]
	inv[1] = -self[1]*self[10]*self[15] + self[1]*self[11]*self[14] + self[9]*self[2]*self[15] -
		self[9]*self[3]*self[14] - self[13]*self[2]*self[11] + self[13]*self[3]*self[10]
	inv[5] = self[0]*self[10]*self[15] - self[0]*self[11]*self[14] - self[8]*self[2]*self[15] +
		self[8]*self[3]*self[14] + self[12]*self[2]*self[11] - self[12]*self[3]*self[10]
	inv[9] = -self[0]*self[9]*self[15] + self[0]*self[11]*self[13] + self[8]*self[1]*self[15] -
		self[8]*self[3]*self[13] - self[12]*self[1]*self[11] + self[12]*self[3]*self[9]
	inv[13] = self[0]*self[9]*self[14] - self[0]*self[10]*self[13] - self[8]*self[1]*self[14] +
		self[8]*self[2]*self[13] + self[12]*self[1]*self[10] - self[12]*self[2]*self[9]
	inv[2] = self[1]*self[6]*self[15] - self[1]*self[7]*self[14] - self[5]*self[2]*self[15] +
		self[5]*self[3]*self[14] + self[13]*self[2]*self[7] - self[13]*self[3]*self[6]
	inv[6] = -self[0]*self[6]*self[15] + self[0]*self[7]*self[14] + self[4]*self[2]*self[15] -
		self[4]*self[3]*self[14] - self[12]*self[2]*self[7] + self[12]*self[3]*self[6]
	inv[10] = self[0]*self[5]*self[15] - self[0]*self[7]*self[13] - self[4]*self[1]*self[15] +
		self[4]*self[3]*self[13] + self[12]*self[1]*self[7] - self[12]*self[3]*self[5]
	inv[14] = -self[0]*self[5]*self[14] + self[0]*self[6]*self[13] + self[4]*self[1]*self[14] -
		self[4]*self[2]*self[13] - self[12]*self[1]*self[6] + self[12]*self[2]*self[5]
	inv[3] = -self[1]*self[6]*self[11] + self[1]*self[7]*self[10] + self[5]*self[2]*self[11] -
		self[5]*self[3]*self[10] - self[9]*self[2]*self[7] + self[9]*self[3]*self[6]
	inv[7] = self[0]*self[6]*self[11] - self[0]*self[7]*self[10] - self[4]*self[2]*self[11] +
		self[4]*self[3]*self[10] + self[8]*self[2]*self[7] - self[8]*self[3]*self[6]
	inv[11] = -self[0]*self[5]*self[11] + self[0]*self[7]*self[9] + self[4]*self[1]*self[11] -
		self[4]*self[3]*self[9] - self[8]*self[1]*self[7] + self[8]*self[3]*self[5]
	inv[15] = self[0]*self[5]*self[10] - self[0]*self[6]*self[9] - self[4]*self[1]*self[10] +
		self[4]*self[2]*self[9] + self[8]*self[1]*self[6] - self[8]*self[2]*self[5]

	det := self[0]*inv[0] + self[1]*inv[4] + self[2]*inv[8] + self[3]*inv[12]
	if det == 0 {
		return Identity(), ErrSingular
	}

	return inv.MulScalar(1 / det), nil
}
