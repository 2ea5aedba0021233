package systems

import (
	"fmt"
	"time"

	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/parameter"
)

// ScoreBoardSystem mirrors the running totals into the HUD labels every frame
type ScoreBoardSystem struct{}

// NewScoreBoardSystem creates a new score board system
func NewScoreBoardSystem() *ScoreBoardSystem {
	return &ScoreBoardSystem{}
}

// Priority returns the system's priority
func (s *ScoreBoardSystem) Priority() int {
	return parameter.PriorityScoreBoard
}

// Update rewrites the score and coin labels and expires the outcome message
func (s *ScoreBoardSystem) Update(world *engine.World, dt time.Duration) {
	totals := world.Cycle.Score()
	world.HUD.Score.Text = fmt.Sprintf(parameter.ScoreLabelFormat, totals.Score)
	world.HUD.Coins.Text = fmt.Sprintf(parameter.CoinsLabelFormat, totals.Coins)
	world.HUD.ExpireOutcome(world.Now())
}

// EventTypes returns the event types ScoreBoardSystem handles
func (s *ScoreBoardSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreChanged,
		event.EventBallReset,
	}
}

// HandleEvent shows the latest payout as the outcome message
func (s *ScoreBoardSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventBallReset:
		world.HUD.ShowOutcome("", 0)
	case event.EventScoreChanged:
		if p, ok := ev.Payload.(*event.ScoreChangedPayload); ok {
			world.HUD.ShowOutcome(fmt.Sprintf("%s %+d", p.Reason, p.Score),
				world.Now()+parameter.OutcomeMessageTimeout)
		}
	}
}
