package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/input"
	"github.com/lixenwraith/cornhole/parameter"
	"github.com/lixenwraith/cornhole/physics"
	"github.com/lixenwraith/cornhole/scene"
)

const testFrame = 50 * time.Millisecond

// mockPlayer records played sounds
type mockPlayer struct {
	played []core.SoundType
	muted  bool
}

func (p *mockPlayer) Play(st core.SoundType) bool {
	p.played = append(p.played, st)
	return true
}
func (p *mockPlayer) ToggleMute() bool { p.muted = !p.muted; return p.muted }
func (p *mockPlayer) IsMuted() bool    { return p.muted }
func (p *mockPlayer) IsRunning() bool  { return true }

func (p *mockPlayer) count(st core.SoundType) int {
	n := 0
	for _, s := range p.played {
		if s == st {
			n++
		}
	}
	return n
}

type harness struct {
	world   *engine.World
	lane    *scene.Lane
	sys     *Systems
	player  *mockPlayer
	changes []*event.ScoreChangedPayload
}

// scoreRecorder captures score change events for assertions
type scoreRecorder struct {
	h *harness
}

func (r scoreRecorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventScoreChanged}
}
func (r scoreRecorder) HandleEvent(_ *engine.World, ev event.GameEvent) {
	r.h.changes = append(r.h.changes, ev.Payload.(*event.ScoreChangedPayload))
}

func testLaneConfig() scene.LaneConfig {
	return scene.LaneConfig{
		Spawn:          mgl64.Vec3{parameter.SpawnX, parameter.SpawnY, parameter.SpawnZ},
		BoardHalfWidth: parameter.BoardHalfWidth,
		BoardNearZ:     parameter.BoardNearZ,
		BoardFarZ:      parameter.BoardFarZ,
		BoardTopY:      parameter.BoardTopY,
		HoleZ:          parameter.HoleZ,
		HoleRadius:     parameter.HoleRadius,
		HoleDepth:      parameter.HoleDepth,
		HoleFloorY:     parameter.HoleFloorY,

		GroundHalfExtent: parameter.GroundHalfExtent,
		BallMass:         parameter.BallMass,
		BallRadius:       parameter.BallRadius,

		GroundRestitution: parameter.GroundRestitution,
		GroundFriction:    parameter.GroundFriction,
		BoardRestitution:  parameter.BoardRestitution,
		BoardFriction:     parameter.BoardFriction,
	}
}

// newHarness builds a world with the default lane and every system installed
// Auto reset is disabled unless settings enable it
func newHarness(t *testing.T, mutate func(*ThrowSettings)) *harness {
	t.Helper()

	cam := scene.NewCamera(mgl64.Vec3{0, parameter.CameraHeight, 0},
		parameter.CameraPitch, parameter.CameraFOV, parameter.CameraNearClip)
	cam.SetViewport(640, 384)

	world, err := engine.NewWorld(cam, parameter.Gravity)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	lane := scene.BuildLane(world.Physics, testLaneConfig())

	settings := DefaultThrowSettings()
	settings.AutoResetDelay = 0
	if mutate != nil {
		mutate(&settings)
	}

	player := &mockPlayer{}
	sys, err := Install(world, lane, settings, parameter.BoardResolveDelay, player)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	h := &harness{world: world, lane: lane, sys: sys, player: player}
	world.RegisterHandler(scoreRecorder{h})
	return h
}

func (h *harness) tick(n int) {
	for i := 0; i < n; i++ {
		h.world.Tick(testFrame)
	}
}

// tickFor runs frames until d of game time has elapsed
func (h *harness) tickFor(d time.Duration) {
	h.tick(int(d / testFrame))
}

// swipe presses at from, holds for frames, releases at to
func (h *harness) swipe(from, to mgl64.Vec2, frames int) {
	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, Pos: from})
	h.tick(1)
	for i := 0; i < frames; i++ {
		h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseStationary, Pos: from})
		h.tick(1)
	}
	h.sys.Throw.HandlePointer(input.PointerEvent{Phase: input.PhaseEnded, Pos: to})
	h.tick(1)
}

// contact injects a contact the way the simulation reports it
func (h *harness) contact(et event.EventType, v *physics.Volume) {
	h.world.Push(et, &physics.Contact{Volume: v, Body: h.lane.Ball})
}

func (h *harness) hitBoard()  { h.contact(event.EventCollisionEnter, h.lane.Board) }
func (h *harness) hitGround() { h.contact(event.EventCollisionEnter, h.lane.Ground) }
func (h *harness) hitHole()   { h.contact(event.EventTriggerEnter, h.lane.Hole) }

func (h *harness) score() engine.ScoreState {
	return h.world.Cycle.Score()
}
