package engine

import "github.com/lixenwraith/cornhole/core"

// AudioPlayer is the interface the sound system plays through
// Implemented by audio.SoundManager and audio.NopPlayer
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}
