package vmath

import (
	"math"
)

// Euler holds intrinsic rotation angles in radians
// Pitch rotates about X, Yaw about Y, Roll about Z
type Euler struct {
	Pitch, Yaw, Roll float64
}

func EAdd(a, b Euler) Euler {
	return Euler{a.Pitch + b.Pitch, a.Yaw + b.Yaw, a.Roll + b.Roll}
}

// EDamp multiplies pitch and roll by factor, leaving yaw untouched
// Used to relax a tumbling particle back toward upright while an
// independent yaw animation may still be running
func EDamp(e Euler, factor float64) Euler {
	return Euler{Pitch: e.Pitch * factor, Yaw: e.Yaw, Roll: e.Roll * factor}
}

// Toward moves a scalar a fraction of the remaining distance toward target
func Toward(v, target, rate float64) float64 {
	return v + (target-v)*rate
}

// Rotate applies yaw, then pitch, then roll to a point
func Rotate(v Vec3, e Euler) Vec3 {
	// Yaw about Y
	sy, cy := math.Sincos(e.Yaw)
	x := v.X*cy + v.Z*sy
	z := -v.X*sy + v.Z*cy
	y := v.Y

	// Pitch about X
	sp, cp := math.Sincos(e.Pitch)
	y, z = y*cp-z*sp, y*sp+z*cp

	// Roll about Z
	sr, cr := math.Sincos(e.Roll)
	x, y = x*cr-y*sr, x*sr+y*cr

	return Vec3{x, y, z}
}
