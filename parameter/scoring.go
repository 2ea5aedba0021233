package parameter

import "time"

// BoardResolveDelay is the wait between first board contact and its payout
const BoardResolveDelay = 2 * time.Second

// Payouts
const (
	BoardScore = 1
	BoardCoins = 10

	// HoleAfterBoard applies when the ball touched the board before dropping in
	HoleAfterBoardScore = 2
	HoleAfterBoardCoins = 20

	// HoleDirect applies to a swish with no prior board contact
	HoleDirectScore = 3
	HoleDirectCoins = 50

	// GroundPenaltyScore is charged when the ground is hit after the board
	GroundPenaltyScore = -1
)
