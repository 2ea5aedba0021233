package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundWhoosh     SoundType = iota // Ball launched
	SoundBoardThud                   // First board contact
	SoundGroundThud                  // First ground contact
	SoundSwish                       // Ball dropped through the hole
	SoundCoin                        // Positive payout
	SoundBuzz                        // Penalty
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundWhoosh:     "whoosh",
	SoundBoardThud:  "board",
	SoundGroundThud: "ground",
	SoundSwish:      "swish",
	SoundCoin:       "coin",
	SoundBuzz:       "buzz",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
