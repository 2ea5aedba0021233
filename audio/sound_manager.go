package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/parameter"
)

// SoundManager plays rendered effects through the beep speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	cache       *soundCache
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played atomic.Uint64
}

// NewSoundManager creates a new sound manager, defaults used when cfg is nil
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		cache:  newSoundCache(cfg),
		mixer:  &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("Audio initialized at %d Hz", sm.config.SampleRate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no per-mixer close; clearing streamers ensures no audio artifacts
	sm.initialized = false
}

// Play queues a sound for playback, returns false when nothing was queued
func (sm *SoundManager) Play(st core.SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	buf := sm.cache.get(st)
	if buf == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning returns true once the speaker is initialized
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of sounds queued so far
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}
