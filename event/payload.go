package event

import "github.com/lixenwraith/cornhole/core"

// BallThrownPayload carries the clamped launch speed
type BallThrownPayload struct {
	Speed float64
}

// ScoreChangedPayload carries a delta and the totals after it was applied
type ScoreChangedPayload struct {
	Reason     string
	Score      int
	Coins      int
	TotalScore int
	TotalCoins int
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}
