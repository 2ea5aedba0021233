package systems

import (
	"log"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/parameter"
	"github.com/lixenwraith/cornhole/physics"
)

// GroundContactSystem latches the first ground contact of a cycle
// Charges the ground penalty once when the ball had already touched the board
type GroundContactSystem struct {
	ground *physics.Volume
}

// NewGroundContactSystem creates a tracker for ground
func NewGroundContactSystem(ground *physics.Volume) (*GroundContactSystem, error) {
	if err := engine.RequireDependency("ground contact system", "ground volume", ground != nil); err != nil {
		return nil, err
	}
	return &GroundContactSystem{ground: ground}, nil
}

// EventTypes returns the event types GroundContactSystem handles
func (s *GroundContactSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventCollisionEnter}
}

// HandleEvent processes collision-enter events against the ground
func (s *GroundContactSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	if projectileContact(ev, s.ground) == nil {
		return
	}
	if !world.Cycle.Latch(engine.ContactGround) {
		return
	}
	log.Printf("Ground hit")
	requestSound(world, core.SoundGroundThud)

	if world.Cycle.Touched(engine.ContactBoard) {
		award(world, "Off board", parameter.GroundPenaltyScore, 0)
	}
}
