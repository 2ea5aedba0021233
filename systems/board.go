package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/parameter"
	"github.com/lixenwraith/cornhole/physics"
)

// BoardContactSystem pays out a board landing once the ball has had time to settle
// First projectile contact latches the board flag and schedules the resolution;
// the payout is skipped when the ground was hit in the meantime
type BoardContactSystem struct {
	world   *engine.World
	board   *physics.Volume
	delay   time.Duration
	resolve engine.TaskID
}

// NewBoardContactSystem creates a tracker for board
func NewBoardContactSystem(world *engine.World, board *physics.Volume, delay time.Duration) (*BoardContactSystem, error) {
	if err := engine.RequireDependency("board contact system", "world", world != nil); err != nil {
		return nil, err
	}
	if err := engine.RequireDependency("board contact system", "board volume", board != nil); err != nil {
		return nil, err
	}
	return &BoardContactSystem{world: world, board: board, delay: delay}, nil
}

// EventTypes returns the event types BoardContactSystem handles
func (s *BoardContactSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollisionEnter,
		event.EventBallReset,
	}
}

// HandleEvent latches first board contact and cancels pending work on reset
func (s *BoardContactSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventBallReset:
		if s.resolve != 0 {
			world.Scheduler.Cancel(s.resolve)
			s.resolve = 0
		}

	case event.EventCollisionEnter:
		if projectileContact(ev, s.board) == nil {
			return
		}
		if !world.Cycle.Latch(engine.ContactBoard) {
			return
		}
		log.Printf("Board hit, resolving in %v", s.delay)
		requestSound(world, core.SoundBoardThud)

		stamp := world.Cycle.Stamp()
		s.resolve = world.Scheduler.After(s.delay, stamp.Guard("board resolve", s.resolveBoard))
	}
}

func (s *BoardContactSystem) resolveBoard() {
	s.resolve = 0
	if s.world.Cycle.Touched(engine.ContactGround) {
		log.Printf("Board resolve: ground already hit, no payout")
		return
	}
	award(s.world, "Board", parameter.BoardScore, parameter.BoardCoins)
}
