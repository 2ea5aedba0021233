package parameter

import "time"

// World physics, SI units with y up
const (
	Gravity = -9.81

	// BallMass divides the launch impulse into velocity
	BallMass   = 5.0
	BallRadius = 0.08

	// SleepSpeed stops a resting ball below this speed (m/s)
	SleepSpeed = 0.05

	// ContactSkin keeps a resting contact registered as touching
	ContactSkin = 0.01

	// PhysicsSubstep bounds one integration step; a frame is split into substeps of this size
	PhysicsSubstep = time.Second / 240
)

// Surface response
const (
	GroundRestitution = 0.3
	GroundFriction    = 0.6
	BoardRestitution  = 0.25
	BoardFriction     = 0.9 // The bag grips the board
)
