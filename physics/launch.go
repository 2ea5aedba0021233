package physics

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/vmath"
)

// LaunchSpeed maps a swipe to impulse magnitude: (distance/duration)*multiplier clamped to [minSpeed, maxSpeed]
// Zero duration yields minSpeed
func LaunchSpeed(distance float64, duration time.Duration, multiplier, minSpeed, maxSpeed float64) float64 {
	speed := 0.0
	if secs := duration.Seconds(); secs > 0 {
		speed = distance / secs * multiplier
	}
	return vmath.Clamp(speed, minSpeed, maxSpeed)
}

// LaunchDirection turns a screen swipe into a unit launch direction
// Camera forward is flattened, yawed by swipe.x*sensitivity degrees about world up,
// then lifted by upwardAngle degrees about camera right
func LaunchDirection(swipe mgl64.Vec2, forward, right mgl64.Vec3, sensitivity, upwardAngle float64) mgl64.Vec3 {
	flat := vmath.V3Normalize(vmath.V3Flatten(forward))
	yawed := vmath.AngleAxis(swipe.X()*sensitivity, vmath.Up).Rotate(flat)
	return vmath.V3Normalize(vmath.AngleAxis(-upwardAngle, right).Rotate(yawed))
}
