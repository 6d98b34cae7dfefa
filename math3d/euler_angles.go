package math3d

import (
	"fmt"
	"math"
)

// EulerAngles is an orientation as three independent rotations, in degrees.
// Rotations are applied in the order Pitch, Heading, Bank.
type EulerAngles struct {
	Heading float64 // y
	Pitch   float64 // x
	Bank    float64 // z
}

var (
	IdentityOrientation = EulerAngles{}
)

// MakeEulerAngles returns the orientation rotating x degrees around the X
// axis, y around Y, and z around Z.
func MakeEulerAngles(x float64, y float64, z float64) EulerAngles {
	return EulerAngles{Heading: y, Pitch: x, Bank: z}
}

// NormalizeAngle reduces an angle to the open range (-360, 360), keeping its
// sign. Unlike a floored modulo, -370 becomes -10 rather than 350.
func NormalizeAngle(deg float64) float64 {
	// math.Mod already takes the sign of the dividend.
	return math.Mod(deg, 360)
}

// Normalize returns a copy of the angles with each one normalized.
func (ea EulerAngles) Normalize() EulerAngles {
	return EulerAngles{
		Heading: NormalizeAngle(ea.Heading),
		Pitch:   NormalizeAngle(ea.Pitch),
		Bank:    NormalizeAngle(ea.Bank),
	}
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{x=%+.2f° y=%+.2f° z=%+.2f°}", ea.Pitch, ea.Heading, ea.Bank)
}
