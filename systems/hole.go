package systems

import (
	"log"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/parameter"
	"github.com/lixenwraith/cornhole/physics"
)

// HoleScoringSystem pays out the first time the ball drops into the hole
type HoleScoringSystem struct {
	hole *physics.Volume
}

// NewHoleScoringSystem creates a scorer for the hole trigger
func NewHoleScoringSystem(hole *physics.Volume) (*HoleScoringSystem, error) {
	if err := engine.RequireDependency("hole scoring system", "hole volume", hole != nil); err != nil {
		return nil, err
	}
	return &HoleScoringSystem{hole: hole}, nil
}

// EventTypes returns the event types HoleScoringSystem handles
func (s *HoleScoringSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTriggerEnter}
}

// HandleEvent scores the first trigger-enter of the cycle
func (s *HoleScoringSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	if projectileContact(ev, s.hole) == nil {
		return
	}
	if !world.Cycle.Latch(engine.ContactHole) {
		return
	}
	requestSound(world, core.SoundSwish)

	if world.Cycle.Touched(engine.ContactBoard) {
		log.Printf("Hole after board")
		award(world, "Hole", parameter.HoleAfterBoardScore, parameter.HoleAfterBoardCoins)
		return
	}
	log.Printf("Swish")
	award(world, "Swish", parameter.HoleDirectScore, parameter.HoleDirectCoins)
}
