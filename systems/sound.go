package systems

import (
	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/event"
)

// SoundSystem consumes sound requests and payouts and plays audio
// Decouples game systems from direct audio access
type SoundSystem struct {
	player engine.AudioPlayer
}

// NewSoundSystem creates a sound system with the given player
// player may be nil if audio is disabled
func NewSoundSystem(player engine.AudioPlayer) *SoundSystem {
	return &SoundSystem{player: player}
}

// EventTypes returns the event types SoundSystem handles
func (s *SoundSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventScoreChanged,
	}
}

// HandleEvent processes sound requests and payout chimes
func (s *SoundSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	if s.player == nil {
		return
	}
	switch ev.Type {
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.player.Play(p.SoundType)
		}
	case event.EventScoreChanged:
		p, ok := ev.Payload.(*event.ScoreChangedPayload)
		if !ok {
			return
		}
		switch {
		case p.Score < 0:
			s.player.Play(core.SoundBuzz)
		case p.Coins > 0:
			s.player.Play(core.SoundCoin)
		}
	}
}
