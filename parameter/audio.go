package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Throw Whoosh
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Board / Ground Thud
const (
	ThudSoundDuration = 120 * time.Millisecond
	ThudSoundAttack   = 2 * time.Millisecond
	ThudSoundRelease  = 100 * time.Millisecond
)

// Hole Swish
const (
	SwishSoundDuration = 400 * time.Millisecond
	SwishSoundAttack   = 20 * time.Millisecond
	SwishSoundRelease  = 300 * time.Millisecond
)

// Coin Chime
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Penalty Buzz
const (
	BuzzSoundDuration = 150 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 40 * time.Millisecond
)
