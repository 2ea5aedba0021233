package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/input"
)

// throwAt launches a straight flick whose clamped speed is speed, then plays the throw out
// The swipe covers 100px in 200ms, so the multiplier alone sets the speed
func throwAt(t *testing.T, speed float64) *harness {
	t.Helper()
	h := newHarness(t, func(s *ThrowSettings) {
		s.Variant = input.VariantTouch
		s.ForceMultiplier = speed / 500
	})
	h.swipe(mgl64.Vec2{320, 100}, mgl64.Vec2{320, 200}, 3)
	if !h.sys.Throw.State().Thrown {
		t.Fatalf("speed %.2f: ball not thrown", speed)
	}
	h.tickFor(6 * time.Second)
	return h
}

// TestThrowOutcomes drives real launches through the simulation and checks latches and payouts
func TestThrowOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		flags engine.ContactFlags
		want  engine.ScoreState
	}{
		{"short onto ground", 25, engine.ContactFlags{Ground: true}, engine.ScoreState{}},
		{"board then off", 31, engine.ContactFlags{Board: true, Ground: true}, engine.ScoreState{Score: -1}},
		{"stays on board", 33, engine.ContactFlags{Board: true}, engine.ScoreState{Score: 1, Coins: 10}},
		{"slides into hole", 34.75, engine.ContactFlags{Board: true, Hole: true}, engine.ScoreState{Score: 3, Coins: 30}},
		{"swish", 35.5, engine.ContactFlags{Hole: true}, engine.ScoreState{Score: 3, Coins: 50}},
		{"long", 45, engine.ContactFlags{Ground: true}, engine.ScoreState{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := throwAt(t, tt.speed)

			if got := h.world.Cycle.Flags(); got != tt.flags {
				t.Errorf("flags = %+v, want %+v (ball at %v)", got, tt.flags, h.lane.Ball.Position)
			}
			if got := h.score(); got != tt.want {
				t.Errorf("score = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestSwishRestsInHole verifies a sunk ball settles on the catch floor and never reaches the ground
func TestSwishRestsInHole(t *testing.T) {
	h := throwAt(t, 35.5)

	ball := h.lane.Ball
	if ball.Speed() != 0 {
		t.Errorf("ball still moving at %f", ball.Speed())
	}
	if !h.world.Physics.Touching(ball, h.lane.Hole) || !h.world.Physics.Touching(ball, h.lane.HoleFloor) {
		t.Errorf("ball at %v not resting in the hole", ball.Position)
	}
	if h.world.Physics.Touching(ball, h.lane.Ground) {
		t.Error("sunk ball touching the ground")
	}
}
