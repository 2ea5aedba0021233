package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency
type oscillator struct {
	freq     float64
	sweepTo  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweepTo:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.sweepTo-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st core.SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// Sound effect generators

// CreateWhooshSound generates a rising air rush for the launch
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.WhooshSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)
	tone := NewEnvelope(NewSweep(180, 420, d, WaveSine, rate), d,
		parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)

	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(tone, 0.2))
	return newVolume(mixed, effectVolume(cfg, core.SoundWhoosh))
}

// createThud generates a short falling knock at the given pitch
func createThud(cfg *AudioConfig, st core.SoundType, from, to float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ThudSoundDuration

	body := NewEnvelope(NewSweep(from, to, d, WaveSine, rate), d,
		parameter.ThudSoundAttack, parameter.ThudSoundRelease, rate)
	click := NewEnvelope(NewOscillator(0, d/4, WaveNoise, rate), d/4,
		parameter.ThudSoundAttack, d/4-parameter.ThudSoundAttack, rate)

	mixed := beep.Mix(newVolume(body, 0.8), newVolume(click, 0.25))
	return newVolume(mixed, effectVolume(cfg, st))
}

// CreateBoardThudSound generates the hollow knock of the ball landing on wood
func CreateBoardThudSound(cfg *AudioConfig) beep.Streamer {
	return createThud(cfg, core.SoundBoardThud, 220, 140)
}

// CreateGroundThudSound generates a dull low thump for the ball hitting the ground
func CreateGroundThudSound(cfg *AudioConfig) beep.Streamer {
	return createThud(cfg, core.SoundGroundThud, 90, 50)
}

// CreateSwishSound generates a falling swoosh for the ball dropping through the hole
func CreateSwishSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.SwishSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		parameter.SwishSoundAttack, parameter.SwishSoundRelease, rate)
	tone := NewEnvelope(NewSweep(880, 330, d, WaveSine, rate), d,
		parameter.SwishSoundAttack, parameter.SwishSoundRelease, rate)

	mixed := beep.Mix(newVolume(noise, 0.4), newVolume(tone, 0.5))
	return newVolume(mixed, effectVolume(cfg, core.SoundSwish))
}

// CreateCoinSound generates a two-note chime for a payout
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (B5)
	n1 := NewOscillator(987.77, parameter.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, rate)

	// Second note (E6)
	n2 := NewOscillator(1318.51, parameter.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, effectVolume(cfg, core.SoundCoin))
}

// CreateBuzzSound generates a short harsh buzz for the ground penalty
func CreateBuzzSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, parameter.BuzzSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.BuzzSoundDuration, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease, rate)
	return newVolume(shaped, effectVolume(cfg, core.SoundBuzz))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundWhoosh:
		return CreateWhooshSound(cfg)
	case core.SoundBoardThud:
		return CreateBoardThudSound(cfg)
	case core.SoundGroundThud:
		return CreateGroundThudSound(cfg)
	case core.SoundSwish:
		return CreateSwishSound(cfg)
	case core.SoundCoin:
		return CreateCoinSound(cfg)
	case core.SoundBuzz:
		return CreateBuzzSound(cfg)
	default:
		return nil
	}
}
