package systems

import (
	"log"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/physics"
	"github.com/lixenwraith/cornhole/status"
)

// award applies a payout to the cycle totals and announces it
func award(world *engine.World, reason string, score, coins int) {
	totals := world.Cycle.Award(score, coins)
	world.Stats.Ints.Get(status.OutcomeKey(reason)).Add(1)
	log.Printf("%s: score %+d coins %+d, totals %d/%d", reason, score, coins, totals.Score, totals.Coins)

	world.Push(event.EventScoreChanged, &event.ScoreChangedPayload{
		Reason:     reason,
		Score:      score,
		Coins:      coins,
		TotalScore: totals.Score,
		TotalCoins: totals.Coins,
	})
}

// requestSound queues a sound for the sound system
func requestSound(world *engine.World, st core.SoundType) {
	world.Push(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: st})
}

// projectileContact extracts a contact between the thrown ball and volume
// Returns nil for other volumes, non-projectile bodies and foreign payloads
func projectileContact(ev event.GameEvent, volume *physics.Volume) *physics.Contact {
	c, ok := ev.Payload.(*physics.Contact)
	if !ok || c.Volume != volume || !c.IsProjectile() {
		return nil
	}
	return c
}
