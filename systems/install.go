package systems

import (
	"time"

	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/scene"
)

// Systems groups the game systems installed on a world
type Systems struct {
	Throw      *ThrowSystem
	Board      *BoardContactSystem
	Ground     *GroundContactSystem
	Hole       *HoleScoringSystem
	ScoreBoard *ScoreBoardSystem
	Sound      *SoundSystem
}

// Install creates every game system for lane and registers it on world
// Handlers are registered ground, board, hole so same-event processing follows volume order
func Install(world *engine.World, lane *scene.Lane, throw ThrowSettings, boardDelay time.Duration, player engine.AudioPlayer) (*Systems, error) {
	if err := engine.RequireDependency("systems", "lane", lane != nil); err != nil {
		return nil, err
	}

	ts, err := NewThrowSystem(world, lane, throw)
	if err != nil {
		return nil, err
	}
	gs, err := NewGroundContactSystem(lane.Ground)
	if err != nil {
		return nil, err
	}
	bs, err := NewBoardContactSystem(world, lane.Board, boardDelay)
	if err != nil {
		return nil, err
	}
	hs, err := NewHoleScoringSystem(lane.Hole)
	if err != nil {
		return nil, err
	}

	s := &Systems{
		Throw:      ts,
		Board:      bs,
		Ground:     gs,
		Hole:       hs,
		ScoreBoard: NewScoreBoardSystem(),
		Sound:      NewSoundSystem(player),
	}

	world.AddSystem(s.Throw)
	world.AddSystem(s.ScoreBoard)

	world.RegisterHandler(s.Ground)
	world.RegisterHandler(s.Board)
	world.RegisterHandler(s.Hole)
	world.RegisterHandler(s.ScoreBoard)
	world.RegisterHandler(s.Sound)
	return s, nil
}
