package utils

import (
	"math"
)

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}
