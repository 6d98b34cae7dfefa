package math3d

import (
	"fmt"
	"math"

	"github.com/adammck/cube/utils"
)

// Matrix33 is a row-major 3x3 rotation matrix. Vectors are treated as
// columns, so M·v is computed by MultiplyByMatrix33.
type Matrix33 struct {
	m11 float64 // 0
	m12 float64 // 1
	m13 float64 // 2
	m21 float64 // 3
	m22 float64 // 4
	m23 float64 // 5
	m31 float64 // 6
	m32 float64 // 7
	m33 float64 // 8
}

var (
	IdentityMatrix33 = Matrix33{1, 0, 0, 0, 1, 0, 0, 0, 1}
)

// MakeRotation returns the matrix Rz·Ry·Rx for the given orientation, i.e.
// the rotation around X is applied first, then Y, then Z. Each of the three
// is a standard right-handed rotation.
func MakeRotation(ea EulerAngles) Matrix33 {

	// precompute
	cx := math.Cos(utils.Rad(ea.Pitch))
	sx := math.Sin(utils.Rad(ea.Pitch))
	cy := math.Cos(utils.Rad(ea.Heading))
	sy := math.Sin(utils.Rad(ea.Heading))
	cz := math.Cos(utils.Rad(ea.Bank))
	sz := math.Sin(utils.Rad(ea.Bank))

	return Matrix33{
		cz * cy, (cz * sy * sx) - (sz * cx), (cz * sy * cx) + (sz * sx),
		sz * cy, (sz * sy * sx) + (cz * cx), (sz * sy * cx) - (cz * sx),
		-sy, cy * sx, cy * cx,
	}
}

func (m Matrix33) String() string {
	return fmt.Sprintf(
		"&M33{%+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f}",
		m.m11, m.m12, m.m13,
		m.m21, m.m22, m.m23,
		m.m31, m.m32, m.m33)
}

// Elements returns the matrix as a 2D array of float64s. This is pretty much
// only useful for dumping its contents, and for tests.
func (m Matrix33) Elements() [3][3]float64 {
	return [3][3]float64{
		{m.m11, m.m12, m.m13},
		{m.m21, m.m22, m.m23},
		{m.m31, m.m32, m.m33},
	}
}

// MultiplyMatrices33 returns a·b.
func MultiplyMatrices33(a Matrix33, b Matrix33) Matrix33 {
	return Matrix33{
		(a.m11 * b.m11) + (a.m12 * b.m21) + (a.m13 * b.m31),
		(a.m11 * b.m12) + (a.m12 * b.m22) + (a.m13 * b.m32),
		(a.m11 * b.m13) + (a.m12 * b.m23) + (a.m13 * b.m33),
		(a.m21 * b.m11) + (a.m22 * b.m21) + (a.m23 * b.m31),
		(a.m21 * b.m12) + (a.m22 * b.m22) + (a.m23 * b.m32),
		(a.m21 * b.m13) + (a.m22 * b.m23) + (a.m23 * b.m33),
		(a.m31 * b.m11) + (a.m32 * b.m21) + (a.m33 * b.m31),
		(a.m31 * b.m12) + (a.m32 * b.m22) + (a.m33 * b.m32),
		(a.m31 * b.m13) + (a.m32 * b.m23) + (a.m33 * b.m33),
	}
}

// Transpose returns the transpose, which for a rotation is also its inverse.
func (m Matrix33) Transpose() Matrix33 {
	return Matrix33{
		m.m11, m.m21, m.m31,
		m.m12, m.m22, m.m32,
		m.m13, m.m23, m.m33,
	}
}
