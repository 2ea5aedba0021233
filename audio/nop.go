package audio

import "github.com/lixenwraith/cornhole/core"

// NopPlayer satisfies the player interface when audio is disabled or unavailable
type NopPlayer struct {
	muted bool
}

func (p *NopPlayer) Play(core.SoundType) bool { return false }
func (p *NopPlayer) ToggleMute() bool         { p.muted = !p.muted; return p.muted }
func (p *NopPlayer) IsMuted() bool            { return p.muted }
func (p *NopPlayer) IsRunning() bool          { return false }
