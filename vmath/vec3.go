package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis
var Up = mgl64.Vec3{0, 1, 0}

// V3Normalize returns unit vector, zero vector stays zero
func V3Normalize(v mgl64.Vec3) mgl64.Vec3 {
	mag := v.Len()
	if mag == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1.0 / mag)
}

// V3Flatten drops the vertical component
func V3Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// V3Lerp interpolates a toward b, t clamped to [0, 1]
func V3Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// AngleAxis builds a rotation of deg degrees about axis
func AngleAxis(deg float64, axis mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), V3Normalize(axis))
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// V2Dist returns distance between two screen points
func V2Dist(a, b mgl64.Vec2) float64 {
	return b.Sub(a).Len()
}
