package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/physics"
)

// LaneConfig places the board, hole and ball spawn
type LaneConfig struct {
	Spawn mgl64.Vec3

	BoardHalfWidth float64
	BoardNearZ     float64
	BoardFarZ      float64
	BoardTopY      float64

	HoleZ      float64
	HoleRadius float64
	HoleDepth  float64
	HoleFloorY float64

	GroundHalfExtent float64

	BallMass   float64
	BallRadius float64

	GroundRestitution, GroundFriction float64
	BoardRestitution, BoardFriction   float64
}

// Lane is the built scene: one ball, ground, board, hole trigger and the floor under the hole
type Lane struct {
	Spawn     Pose
	Ball      *physics.Body
	Ground    *physics.Volume
	Board     *physics.Volume
	Hole      *physics.Volume
	HoleFloor *physics.Volume
}

// BuildLane registers lane volumes and the ball on sim
// Volumes are added ground, board, hole, hole floor; same-step contacts are reported in that order
func BuildLane(sim *physics.Simulation, cfg LaneConfig) *Lane {
	ext := cfg.GroundHalfExtent
	ground := sim.AddVolume(physics.NewSolid("ground",
		mgl64.Vec3{-ext, -1, -ext}, mgl64.Vec3{ext, 0, ext},
		cfg.GroundRestitution, cfg.GroundFriction))

	board := physics.NewSolid("board",
		mgl64.Vec3{-cfg.BoardHalfWidth, 0, cfg.BoardNearZ},
		mgl64.Vec3{cfg.BoardHalfWidth, cfg.BoardTopY, cfg.BoardFarZ},
		cfg.BoardRestitution, cfg.BoardFriction)
	board.Cutout = &physics.Cutout{CenterX: 0, CenterZ: cfg.HoleZ, Radius: cfg.HoleRadius}
	sim.AddVolume(board)

	// Trigger sits below the board surface so a ball rolling over the rim stays out
	holeTop := cfg.BoardTopY - cfg.BallRadius
	hole := sim.AddVolume(physics.NewTrigger("hole",
		mgl64.Vec3{-cfg.HoleRadius, holeTop - cfg.HoleDepth, cfg.HoleZ - cfg.HoleRadius},
		mgl64.Vec3{cfg.HoleRadius, holeTop, cfg.HoleZ + cfg.HoleRadius}))

	// A sunk ball comes to rest inside the board box, clear of the lane ground
	floor := sim.AddVolume(physics.NewSolid("hole floor",
		mgl64.Vec3{-cfg.HoleRadius, 0, cfg.HoleZ - cfg.HoleRadius},
		mgl64.Vec3{cfg.HoleRadius, cfg.HoleFloorY, cfg.HoleZ + cfg.HoleRadius},
		cfg.BoardRestitution, cfg.BoardFriction))

	spawn := Pose{Position: cfg.Spawn, Rotation: mgl64.QuatIdent()}
	ball := sim.AddBody(physics.NewBall("ball", cfg.BallMass, cfg.BallRadius))
	ball.Rest(spawn.Position, spawn.Rotation)

	return &Lane{
		Spawn:     spawn,
		Ball:      ball,
		Ground:    ground,
		Board:     board,
		Hole:      hole,
		HoleFloor: floor,
	}
}
