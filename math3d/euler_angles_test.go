package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	type eg struct {
		in  float64
		out float64
	}

	examples := []eg{
		{0, 0},
		{45, 45},
		{359, 359},
		{360, 0},
		{361, 1},
		{725, 5},
		{-1, -1},
		{-359, -359},
		{-370, -10},
		{-725, -5},
		{1e6, 280},
		{90.5, 90.5},
	}

	for _, x := range examples {
		assert.Equal(t, x.out, NormalizeAngle(x.in), "NormalizeAngle(%v)", x.in)
	}
}

func TestNormalizeAngleProperties(t *testing.T) {
	inputs := []float64{
		-1e9, -123456.789, -720, -360.5, -360, -359.999, -0.25,
		0.25, 1, 180, 359.999, 360, 360.5, 719, 86400, 1e12,
	}

	for _, a := range inputs {
		n := NormalizeAngle(a)
		assert.Less(t, math.Abs(n), 360.0, "bounds for %v", a)
		assert.Equal(t, n, NormalizeAngle(n), "idempotence for %v", a)

		// Same angle modulo 360.
		assert.InDelta(t, 0, math.Mod(a-n, 360), 1e-6, "equivalence for %v", a)

		if n != 0 {
			assert.Equal(t, math.Signbit(a), math.Signbit(n), "sign for %v", a)
		}
	}
}

func TestNormalizeEulerAngles(t *testing.T) {
	ea := MakeEulerAngles(370, -725, 45).Normalize()
	assert.Equal(t, MakeEulerAngles(10, -5, 45), ea)
}

func TestEulerAnglesFields(t *testing.T) {
	ea := MakeEulerAngles(1, 2, 3)
	assert.Equal(t, 1.0, ea.Pitch)
	assert.Equal(t, 2.0, ea.Heading)
	assert.Equal(t, 3.0, ea.Bank)
}
