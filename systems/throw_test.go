package systems

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/input"
	"github.com/lixenwraith/cornhole/parameter"
)

// impulse returns the momentum handed to the ball by the launch
func impulse(h *harness) float64 {
	return h.lane.Ball.Velocity.Len() * h.lane.Ball.Mass
}

// TestSwipeScenarioClampsToMax verifies 40px over 0.2s at x1.2 launches at the max speed
func TestSwipeScenarioClampsToMax(t *testing.T) {
	h := newHarness(t, nil)

	h.swipe(mgl64.Vec2{300, 100}, mgl64.Vec2{300, 140}, 3)

	st := h.sys.Throw.State()
	if st.SwipeDuration != 200*time.Millisecond {
		t.Fatalf("SwipeDuration = %v, want 200ms", st.SwipeDuration)
	}
	if st.SwipeDistance != 40 {
		t.Fatalf("SwipeDistance = %f, want 40", st.SwipeDistance)
	}
	if !st.Thrown {
		t.Fatal("ball not thrown")
	}
	if st.BallSpeed != 50 {
		t.Errorf("BallSpeed = %f, want 50", st.BallSpeed)
	}
	if got := impulse(h); math.Abs(got-50) > 1e-9 {
		t.Errorf("impulse magnitude = %f, want 50", got)
	}
	if !h.lane.Ball.UseGravity {
		t.Error("gravity not enabled on launch")
	}
	if h.player.count(core.SoundWhoosh) != 1 {
		t.Errorf("whoosh played %d times, want 1", h.player.count(core.SoundWhoosh))
	}
}

// TestSwipeSpeedAlwaysInRange verifies qualifying swipes launch within [min, max]
func TestSwipeSpeedAlwaysInRange(t *testing.T) {
	tests := []struct {
		name   string
		dist   float64
		frames int
	}{
		{"slow long swipe", 30, 40},
		{"threshold swipe", 30, 3},
		{"fast flick", 300, 0},
		{"medium", 120, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			h.swipe(mgl64.Vec2{300, 50}, mgl64.Vec2{300, 50 + tt.dist}, tt.frames)

			st := h.sys.Throw.State()
			if !st.Thrown {
				t.Fatal("qualifying swipe did not throw")
			}
			if st.BallSpeed < parameter.MinBallSpeed || st.BallSpeed > parameter.MaxBallSpeed {
				t.Errorf("BallSpeed = %f outside [%v, %v]", st.BallSpeed, parameter.MinBallSpeed, parameter.MaxBallSpeed)
			}
		})
	}
}

// TestSlowSwipeUsesMinimumSpeed verifies the lower clamp
func TestSlowSwipeUsesMinimumSpeed(t *testing.T) {
	h := newHarness(t, nil)
	// 30px over 10s: raw 3.6, clamps up to 5
	h.swipe(mgl64.Vec2{300, 50}, mgl64.Vec2{300, 80}, 199)

	if got := h.sys.Throw.State().BallSpeed; got != parameter.MinBallSpeed {
		t.Errorf("BallSpeed = %f, want %v", got, parameter.MinBallSpeed)
	}
}

// TestShortSwipeDoesNotThrow verifies swipes under the threshold leave the ball held
func TestShortSwipeDoesNotThrow(t *testing.T) {
	h := newHarness(t, nil)
	h.swipe(mgl64.Vec2{300, 100}, mgl64.Vec2{300, 129}, 3)

	st := h.sys.Throw.State()
	if st.Thrown {
		t.Error("short swipe threw the ball")
	}
	if h.lane.Ball.UseGravity || h.lane.Ball.Velocity != (mgl64.Vec3{}) {
		t.Error("short swipe moved the ball under physics")
	}
}

// TestZeroDurationSwipeDoesNotThrow verifies press and release in one frame is ignored
func TestZeroDurationSwipeDoesNotThrow(t *testing.T) {
	h := newHarness(t, nil)
	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, Pos: mgl64.Vec2{0, 0}})
	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseEnded, Pos: mgl64.Vec2{0, 300}})
	h.tick(1)

	if h.sys.Throw.State().Thrown {
		t.Error("zero duration swipe threw the ball")
	}
}

// TestThrownIgnoresFurtherInput verifies a second swipe cannot relaunch
func TestThrownIgnoresFurtherInput(t *testing.T) {
	h := newHarness(t, nil)
	h.swipe(mgl64.Vec2{300, 100}, mgl64.Vec2{300, 200}, 3)
	first := h.sys.Throw.State()

	h.swipe(mgl64.Vec2{300, 100}, mgl64.Vec2{500, 300}, 1)
	if got := h.sys.Throw.State(); got.SwipeEnd != first.SwipeEnd || got.BallSpeed != first.BallSpeed {
		t.Errorf("second swipe changed state: %+v", got)
	}
	if h.player.count(core.SoundWhoosh) != 1 {
		t.Error("second swipe launched again")
	}
}

// TestLaunchWaitsForEndOfFrame verifies the impulse lands after render, not during update
func TestLaunchWaitsForEndOfFrame(t *testing.T) {
	h := newHarness(t, nil)
	var thrownAtRender bool
	h.world.SetRenderHook(func(*engine.World) {
		if h.sys.Throw.State().Thrown {
			thrownAtRender = true
		}
	})

	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, Pos: mgl64.Vec2{0, 0}})
	h.tick(2)
	thrownAtRender = false
	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseEnded, Pos: mgl64.Vec2{0, 100}})
	h.tick(1)

	if thrownAtRender {
		t.Error("launch applied before the render hook of the release frame")
	}
	if !h.sys.Throw.State().Thrown {
		t.Error("launch not applied at end of frame")
	}
}

// TestMousePickupFollowsPointer verifies the held ball eases toward the projected pointer
func TestMousePickupFollowsPointer(t *testing.T) {
	h := newHarness(t, nil)
	start := h.lane.Ball.Position
	cam := h.world.Camera
	pos := mgl64.Vec2{320, 192}
	target := cam.ScreenToWorld(pos, cam.NearClip+parameter.PickupDepth)

	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, Pos: pos})
	h.tick(1)

	// One 50ms frame at rate 15 covers 75% of the gap
	want := start.Add(target.Sub(start).Mul(0.75))
	if !h.lane.Ball.Position.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("after one frame ball at %v, want %v", h.lane.Ball.Position, want)
	}

	h.tick(5)
	if d := h.lane.Ball.Position.Sub(target).Len(); d > 1e-3 {
		t.Errorf("ball %f from pointer target after six frames", d)
	}
}

// TestTouchVariantNeverRepositions verifies the pure flick keeps the ball at spawn
func TestTouchVariantNeverRepositions(t *testing.T) {
	h := newHarness(t, func(s *ThrowSettings) { s.Variant = input.VariantTouch })
	spawn := h.lane.Ball.Position

	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, Pos: mgl64.Vec2{10, 10}})
	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseMoved, Pos: mgl64.Vec2{200, 300}})
	h.tick(4)

	if h.lane.Ball.Position != spawn {
		t.Errorf("touch hold moved ball to %v", h.lane.Ball.Position)
	}
}

// TestResetBallRestoresSpawnAndClearsFlags verifies reset zeroes throw state and every latch
func TestResetBallRestoresSpawnAndClearsFlags(t *testing.T) {
	h := newHarness(t, nil)
	h.swipe(mgl64.Vec2{300, 100}, mgl64.Vec2{320, 200}, 3)
	h.tick(10)

	h.hitBoard()
	h.hitGround()
	h.hitHole()
	h.tick(1)
	if h.world.Cycle.Flags() != (engine.ContactFlags{Board: true, Ground: true, Hole: true}) {
		t.Fatalf("flags before reset = %+v", h.world.Cycle.Flags())
	}

	before := h.score()
	h.sys.Throw.ResetBall()

	ball := h.lane.Ball
	if ball.Position != h.lane.Spawn.Position || ball.Rotation != h.lane.Spawn.Rotation {
		t.Errorf("pose after reset = %v %v", ball.Position, ball.Rotation)
	}
	if ball.Velocity != (mgl64.Vec3{}) || ball.AngularVelocity != (mgl64.Vec3{}) || ball.UseGravity {
		t.Errorf("ball motion after reset: v=%v w=%v gravity=%v", ball.Velocity, ball.AngularVelocity, ball.UseGravity)
	}
	if h.sys.Throw.State() != (ThrowState{}) {
		t.Errorf("throw state after reset = %+v", h.sys.Throw.State())
	}
	if h.world.Cycle.Flags() != (engine.ContactFlags{}) {
		t.Errorf("flags after reset = %+v", h.world.Cycle.Flags())
	}
	if h.score() != before {
		t.Errorf("reset changed score %+v -> %+v", before, h.score())
	}

	// A fresh swipe works again
	h.swipe(mgl64.Vec2{300, 100}, mgl64.Vec2{300, 200}, 3)
	if !h.sys.Throw.State().Thrown {
		t.Error("throw after reset failed")
	}
}

// TestResetDropsPendingLaunch verifies a launch queued before reset never fires
func TestResetDropsPendingLaunch(t *testing.T) {
	h := newHarness(t, nil)
	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, Pos: mgl64.Vec2{0, 0}})
	h.tick(3)

	// Release queues the launch at end of frame; reset from the render hook beats it
	h.world.SetRenderHook(func(*engine.World) { h.sys.Throw.ResetBall() })
	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseEnded, Pos: mgl64.Vec2{0, 200}})
	h.tick(1)
	h.world.SetRenderHook(nil)

	if h.sys.Throw.State().Thrown || h.lane.Ball.UseGravity {
		t.Error("stale launch applied after reset")
	}
}

// TestAutoReset verifies the ball returns to spawn after the configured delay
func TestAutoReset(t *testing.T) {
	h := newHarness(t, func(s *ThrowSettings) { s.AutoResetDelay = time.Second })
	gen := h.world.Cycle.Generation()

	h.swipe(mgl64.Vec2{300, 100}, mgl64.Vec2{300, 200}, 3)
	h.tickFor(900 * time.Millisecond)
	if !h.sys.Throw.State().Thrown {
		t.Fatal("auto reset fired early")
	}

	h.tickFor(200 * time.Millisecond)
	if h.sys.Throw.State().Thrown {
		t.Fatal("auto reset did not fire")
	}
	if h.world.Cycle.Generation() != gen+1 {
		t.Errorf("Generation = %d, want %d", h.world.Cycle.Generation(), gen+1)
	}
	if h.lane.Ball.Position != h.lane.Spawn.Position {
		t.Errorf("ball at %v after auto reset", h.lane.Ball.Position)
	}
}

// TestManualResetCancelsAutoReset verifies an earlier manual reset leaves the next cycle alone
func TestManualResetCancelsAutoReset(t *testing.T) {
	h := newHarness(t, func(s *ThrowSettings) { s.AutoResetDelay = time.Second })

	h.swipe(mgl64.Vec2{300, 100}, mgl64.Vec2{300, 200}, 3)
	h.sys.Throw.ResetBall()
	gen := h.world.Cycle.Generation()

	h.tickFor(2 * time.Second)
	if h.world.Cycle.Generation() != gen {
		t.Errorf("cancelled auto reset still ran: generation %d -> %d", gen, h.world.Cycle.Generation())
	}
}

func TestNewThrowSystemMissingLane(t *testing.T) {
	h := newHarness(t, nil)
	if _, err := NewThrowSystem(h.world, nil, DefaultThrowSettings()); err == nil {
		t.Error("expected error for nil lane")
	}
	if _, err := NewThrowSystem(nil, h.lane, DefaultThrowSettings()); err == nil {
		t.Error("expected error for nil world")
	}
}
