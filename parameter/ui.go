package parameter

import "time"

// HUD
const (
	ScoreLabelFormat = "Score: %d"
	CoinsLabelFormat = "Coins: %d"

	// OutcomeMessageTimeout clears the last outcome message
	OutcomeMessageTimeout = 2500 * time.Millisecond
)

// Terminal cell to screen pixel conversion used for swipe measurement
const (
	CellPixelWidth  = 8
	CellPixelHeight = 16
)

// Lane view
const (
	// GroundFarZ stops the ground plane; farther rays draw sky
	GroundFarZ = 40.0

	// GroundStripe alternates ground shading every this many meters
	GroundStripe = 1.0
)
