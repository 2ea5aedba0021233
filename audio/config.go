package audio

import (
	"encoding/json"
	"strconv"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/parameter"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes [core.SoundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns audio enabled at moderate volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Thuds and whoosh sit under the payout chimes
	cfg.EffectVolumes[core.SoundWhoosh] = 0.4
	cfg.EffectVolumes[core.SoundBoardThud] = 0.7
	cfg.EffectVolumes[core.SoundGroundThud] = 0.7
	return cfg
}

// ApplyEnv overlays CORNHOLE_* variables read through getenv
func ApplyEnv(cfg *AudioConfig, getenv func(string) string) {
	// Check if audio is enabled
	if enabled := getenv("CORNHOLE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := getenv("CORNHOLE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Load effect volumes from JSON keyed by sound name
	if effectVols := getenv("CORNHOLE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := core.ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	// Load sample rate
	if sampleRate := getenv("CORNHOLE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
