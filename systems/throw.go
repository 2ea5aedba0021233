package systems

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/input"
	"github.com/lixenwraith/cornhole/parameter"
	"github.com/lixenwraith/cornhole/physics"
	"github.com/lixenwraith/cornhole/scene"
	"github.com/lixenwraith/cornhole/status"
	"github.com/lixenwraith/cornhole/vmath"
)

// ThrowSettings tunes the swipe to launch mapping
type ThrowSettings struct {
	Variant input.Variant

	ForceMultiplier       float64
	UpwardAngle           float64 // Degrees
	HorizontalSensitivity float64 // Degrees of yaw per swipe pixel
	MinSwipeDist          float64 // Pixels
	MinBallSpeed          float64
	MaxBallSpeed          float64

	PickupLerpRate float64
	PickupDepth    float64

	// AutoResetDelay resets the ball after a launch, 0 disables
	AutoResetDelay time.Duration
}

// DefaultThrowSettings returns compiled-in throw tuning
func DefaultThrowSettings() ThrowSettings {
	return ThrowSettings{
		Variant:               input.VariantMouse,
		ForceMultiplier:       parameter.ThrowForceMultiplier,
		UpwardAngle:           parameter.UpwardAngle,
		HorizontalSensitivity: parameter.HorizontalSensitivity,
		MinSwipeDist:          parameter.MinSwipeDist,
		MinBallSpeed:          parameter.MinBallSpeed,
		MaxBallSpeed:          parameter.MaxBallSpeed,
		PickupLerpRate:        parameter.PickupLerpRate,
		PickupDepth:           parameter.PickupDepth,
		AutoResetDelay:        parameter.AutoResetDelay,
	}
}

// ThrowState is the swipe and launch record of the current cycle
type ThrowState struct {
	HeldPosition   mgl64.Vec2 // Last pointer position while holding
	SwipeStart     mgl64.Vec2
	SwipeEnd       mgl64.Vec2
	SwipeStartTime time.Duration
	SwipeEndTime   time.Duration
	SwipeDistance  float64
	SwipeDuration  time.Duration
	BallSpeed      float64
	Direction      mgl64.Vec3
	Thrown         bool
	Holding        bool
}

// ThrowSystem turns pointer swipes into a launch impulse on the ball
// Holds the ball until a qualifying swipe is released, then stays thrown until ResetBall
type ThrowSystem struct {
	world    *engine.World
	lane     *scene.Lane
	settings ThrowSettings

	state         ThrowState
	pending       []input.PointerEvent
	launchPending bool
	autoReset     engine.TaskID
}

// NewThrowSystem creates a throw system driving lane's ball
func NewThrowSystem(world *engine.World, lane *scene.Lane, settings ThrowSettings) (*ThrowSystem, error) {
	if err := engine.RequireDependency("throw system", "world", world != nil); err != nil {
		return nil, err
	}
	if err := engine.RequireDependency("throw system", "lane", lane != nil && lane.Ball != nil); err != nil {
		return nil, err
	}
	return &ThrowSystem{
		world:    world,
		lane:     lane,
		settings: settings,
		pending:  make([]input.PointerEvent, 0, 16),
	}, nil
}

// Priority returns the system's priority
func (s *ThrowSystem) Priority() int {
	return parameter.PriorityThrow
}

// State returns a snapshot of the throw state
func (s *ThrowSystem) State() ThrowState {
	return s.state
}

// HandlePointer queues a pointer sample for the next Update
func (s *ThrowSystem) HandlePointer(pe input.PointerEvent) {
	if s.state.Thrown {
		return
	}
	s.pending = append(s.pending, pe)
}

// Update consumes queued pointer samples and drags a held ball
func (s *ThrowSystem) Update(world *engine.World, dt time.Duration) {
	for _, pe := range s.pending {
		s.handlePointer(pe)
	}
	s.pending = s.pending[:0]

	if s.state.Holding && !s.state.Thrown && s.settings.Variant == input.VariantMouse {
		s.pickup(dt)
	}
}

func (s *ThrowSystem) handlePointer(pe input.PointerEvent) {
	if s.state.Thrown || s.launchPending {
		return
	}

	switch pe.Phase {
	case input.PhaseBegan:
		s.state.SwipeStart = pe.Pos
		s.state.SwipeStartTime = s.world.Now()
		s.state.HeldPosition = pe.Pos
		s.state.Holding = true

	case input.PhaseMoved, input.PhaseStationary:
		if s.state.Holding {
			s.state.HeldPosition = pe.Pos
		}

	case input.PhaseEnded, input.PhaseCanceled:
		if !s.state.Holding {
			return
		}
		s.state.SwipeEnd = pe.Pos
		s.state.SwipeEndTime = s.world.Now()
		s.state.Holding = false
		s.release()
	}
}

// pickup eases the ball toward the pointer projected in front of the camera
func (s *ThrowSystem) pickup(dt time.Duration) {
	cam := s.world.Camera
	target := cam.ScreenToWorld(s.state.HeldPosition, cam.NearClip+s.settings.PickupDepth)
	ball := s.lane.Ball
	ball.Position = vmath.V3Lerp(ball.Position, target, s.settings.PickupLerpRate*dt.Seconds())
}

// release measures the swipe and defers the launch to the end of the frame
func (s *ThrowSystem) release() {
	s.state.SwipeDistance = vmath.V2Dist(s.state.SwipeStart, s.state.SwipeEnd)
	s.state.SwipeDuration = s.state.SwipeEndTime - s.state.SwipeStartTime

	if s.state.SwipeDuration <= 0 || s.state.SwipeDistance < s.settings.MinSwipeDist {
		log.Printf("Swipe ignored: distance=%.1f duration=%v", s.state.SwipeDistance, s.state.SwipeDuration)
		return
	}

	s.launchPending = true
	stamp := s.world.Cycle.Stamp()
	s.world.Scheduler.AtEndOfFrame(stamp.Guard("launch", s.launch))
}

func (s *ThrowSystem) launch() {
	s.launchPending = false
	cfg := s.settings
	cam := s.world.Camera

	speed := physics.LaunchSpeed(s.state.SwipeDistance, s.state.SwipeDuration,
		cfg.ForceMultiplier, cfg.MinBallSpeed, cfg.MaxBallSpeed)
	swipe := s.state.SwipeEnd.Sub(s.state.SwipeStart)
	dir := physics.LaunchDirection(swipe, cam.Forward(), cam.Right(), cfg.HorizontalSensitivity, cfg.UpwardAngle)

	ball := s.lane.Ball
	ball.ApplyImpulse(dir.Mul(speed))
	ball.UseGravity = true

	s.state.BallSpeed = speed
	s.state.Direction = dir
	s.state.Thrown = true
	s.world.Stats.Ints.Get(status.Throws).Add(1)
	s.world.Stats.Floats.Get(status.BestSpeed).Max(speed)
	log.Printf("Ball thrown: speed=%.2f dir=%v", speed, dir)

	s.world.Push(event.EventBallThrown, &event.BallThrownPayload{Speed: speed})
	s.world.Push(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundWhoosh})

	if cfg.AutoResetDelay > 0 {
		stamp := s.world.Cycle.Stamp()
		s.autoReset = s.world.Scheduler.After(cfg.AutoResetDelay, stamp.Guard("auto reset", s.ResetBall))
	}
}

// ResetBall restores the spawn pose and starts a new cycle
// Clears throw state and every contact flag; deferred work from the old cycle is dropped
func (s *ThrowSystem) ResetBall() {
	s.state = ThrowState{}
	s.pending = s.pending[:0]
	s.launchPending = false
	s.world.Scheduler.Cancel(s.autoReset)
	s.autoReset = 0

	ball := s.lane.Ball
	ball.Rest(s.lane.Spawn.Position, s.lane.Spawn.Rotation)
	s.world.Physics.ForgetContacts(ball)

	s.world.Cycle.Reset()
	log.Printf("Ball reset, cycle %d", s.world.Cycle.Generation())
	s.world.Push(event.EventBallReset, nil)
}
