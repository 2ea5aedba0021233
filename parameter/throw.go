package parameter

import "time"

// Swipe & Launch
const (
	// ThrowForceMultiplier scales swipe velocity (pixels/sec) into impulse magnitude
	ThrowForceMultiplier = 1.2

	// UpwardAngle is the fixed launch elevation in degrees
	UpwardAngle = 25.0

	// HorizontalSensitivity converts horizontal swipe pixels into yaw degrees
	HorizontalSensitivity = 0.05

	// MinSwipeDist is the shortest swipe in pixels that launches the ball
	MinSwipeDist = 30.0

	// MinBallSpeed and MaxBallSpeed clamp the impulse magnitude
	MinBallSpeed = 5.0
	MaxBallSpeed = 50.0
)

// Pickup
const (
	// PickupLerpRate is the exponential smoothing factor per second while dragging
	PickupLerpRate = 15.0

	// PickupDepth is added to the camera near plane when projecting the pointer
	PickupDepth = 2.0
)

// Cycle
const (
	// AutoResetDelay resets the ball after a launch, 0 disables
	AutoResetDelay = 4 * time.Second
)
