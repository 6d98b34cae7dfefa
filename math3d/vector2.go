package math3d

import (
	"fmt"
)

type Vector2 struct {
	X float64
	Y float64
}

func (v Vector2) String() string {
	return fmt.Sprintf("&Vec2{x=%0.2f y=%0.2f}", v.X, v.Y)
}

// Map scales the vector and then offsets both components by the same amount,
// moving it from model space into screen space. A scale of zero collapses
// everything onto the offset, and a negative scale mirrors it.
func (v Vector2) Map(scale float64, offset float64) Vector2 {
	return Vector2{
		(v.X * scale) + offset,
		(v.Y * scale) + offset,
	}
}
