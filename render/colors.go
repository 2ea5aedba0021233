package render

import "github.com/gdamore/tcell/v2"

// Lane palette
var (
	RgbSky         = tcell.NewRGBColor(26, 27, 38)   // Night sky
	RgbGroundNear  = tcell.NewRGBColor(40, 70, 40)   // Grass
	RgbGroundFar   = tcell.NewRGBColor(34, 60, 34)   // Grass stripe
	RgbBoardTop    = tcell.NewRGBColor(176, 130, 80) // Plywood
	RgbBoardFront  = tcell.NewRGBColor(120, 84, 50)  // Plywood edge
	RgbHole        = tcell.NewRGBColor(15, 10, 5)
	RgbBall        = tcell.NewRGBColor(220, 40, 40)
	RgbBallShadow  = tcell.NewRGBColor(20, 35, 20)
	RgbSwipeTrail  = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBg    = tcell.NewRGBColor(50, 50, 50)
	RgbScoreBg     = tcell.NewRGBColor(255, 255, 0) // Yellow
	RgbCoinsBg     = tcell.NewRGBColor(255, 215, 0) // Gold
	RgbOutcomeGood = tcell.NewRGBColor(50, 255, 50)
	RgbOutcomeBad  = tcell.NewRGBColor(255, 80, 80)
	RgbPausedBg    = tcell.NewRGBColor(60, 100, 200)
)
