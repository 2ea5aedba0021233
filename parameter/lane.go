package parameter

// Lane layout in meters; thrower at origin facing +Z
const (
	// Camera
	CameraHeight   = 1.6
	CameraPitch    = 8.0 // Degrees below horizon
	CameraFOV      = 26.0 // Vertical, degrees, narrow enough to show the board in a terminal
	CameraNearClip = 0.3

	// Ball spawn in front of the camera
	SpawnX = 0.0
	SpawnY = 1.2
	SpawnZ = 2.5

	// Board slab
	BoardHalfWidth = 0.3
	BoardNearZ     = 7.0
	BoardFarZ      = 8.2
	BoardTopY      = 0.25

	// Hole centered near the far edge of the board
	HoleZ      = 7.85
	HoleRadius = 0.15
	HoleDepth  = 0.2

	// HoleFloorY is the top of the catch floor under the hole
	HoleFloorY = 0.05

	// Ground extent
	GroundHalfExtent = 50.0
)
