package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector
// Scene choreography is continuous and convergence-driven, so float64
// precision is used throughout the hot path
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// V3Toward moves v a fraction of the remaining distance toward target
// rate is the fraction closed per call; repeated calls converge
// geometrically and never overshoot
func V3Toward(v, target Vec3, rate float64) Vec3 {
	return Vec3{
		X: v.X + (target.X-v.X)*rate,
		Y: v.Y + (target.Y-v.Y)*rate,
		Z: v.Z + (target.Z-v.Z)*rate,
	}
}

// V3Dist returns the Euclidean distance between two points
func V3Dist(a, b Vec3) float64 {
	return V3Mag(V3Sub(a, b))
}
