package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRad(t *testing.T) {
	type eg struct {
		deg float64
		rad float64
	}

	examples := []eg{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-360, -2 * math.Pi},
	}

	for _, x := range examples {
		assert.InDelta(t, x.rad, Rad(x.deg), 1e-12)
	}
}
