package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/cornhole/core"
)

// soundCache stores rendered effects so playback only replays a buffer
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	cfg    *AudioConfig
	store  [core.SoundTypeCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// get returns the cached buffer or renders on demand
func (c *soundCache) get(st core.SoundType) *beep.Buffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[st] != nil {
		return c.store[st]
	}

	s := GetSoundEffect(st, c.cfg)
	if s == nil {
		return nil
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[st] = buf
	return buf
}

// preload renders every effect up front
func (c *soundCache) preload() {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		c.get(st)
	}
}
