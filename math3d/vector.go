package math3d

import (
	"fmt"
	"math"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}
)

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	dx := v.X - vv.X
	dy := v.Y - vv.Y
	dz := v.Z - vv.Z
	return math.Sqrt((dx * dx) + (dy * dy) + (dz * dz))
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return v.Distance(ZeroVector3)
}

// MultiplyByMatrix33 returns a new Vector3, by multiplying a 3x3 matrix by
// this (column) vector.
func (v Vector3) MultiplyByMatrix33(m Matrix33) Vector3 {
	return Vector3{
		(m.m11 * v.X) + (m.m12 * v.Y) + (m.m13 * v.Z),
		(m.m21 * v.X) + (m.m22 * v.Y) + (m.m23 * v.Z),
		(m.m31 * v.X) + (m.m32 * v.Y) + (m.m33 * v.Z),
	}
}

// Rotate returns the vector rotated by the given orientation. When rotating
// many vectors by the same orientation, build the matrix once with
// MakeRotation and use MultiplyByMatrix33 instead.
func (v Vector3) Rotate(ea EulerAngles) Vector3 {
	return v.MultiplyByMatrix33(MakeRotation(ea))
}

// Project drops the Z component, projecting the vector orthographically onto
// the XY plane. Nothing is culled or depth sorted.
func (v Vector3) Project() Vector2 {
	return Vector2{v.X, v.Y}
}
