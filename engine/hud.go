package engine

import "time"

// Label is an on-screen text slot refreshed by systems and drawn by the renderer
type Label struct {
	Text string
}

// HUD holds the labels shown over the lane
type HUD struct {
	Score   Label
	Coins   Label
	Outcome Label

	outcomeExpires time.Duration
}

// ShowOutcome sets the outcome message until game time reaches expires
func (h *HUD) ShowOutcome(text string, expires time.Duration) {
	h.Outcome.Text = text
	h.outcomeExpires = expires
}

// ExpireOutcome clears a stale outcome message
func (h *HUD) ExpireOutcome(now time.Duration) {
	if h.Outcome.Text != "" && now >= h.outcomeExpires {
		h.Outcome.Text = ""
	}
}
