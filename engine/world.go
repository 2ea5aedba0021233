package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/physics"
	"github.com/lixenwraith/cornhole/scene"
	"github.com/lixenwraith/cornhole/status"
)

// System is an interface that all per-frame systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World wires the per-cycle context, scheduler, event routing and physics for one scene
// All access happens on the game loop goroutine
type World struct {
	Cycle     *Cycle
	Scheduler *Scheduler
	Events    *event.EventQueue
	Router    *event.Router[*World]
	Physics   *physics.Simulation
	Camera    *scene.Camera
	HUD       *HUD
	Stats     *status.Registry

	systems    []System
	renderHook func(*World)
}

// NewWorld creates a world around camera with the given vertical gravity
func NewWorld(camera *scene.Camera, gravity float64) (*World, error) {
	if err := RequireDependency("world", "camera", camera != nil); err != nil {
		return nil, err
	}

	queue := event.NewEventQueue()
	w := &World{
		Cycle:     NewCycle(),
		Scheduler: NewScheduler(),
		Events:    queue,
		Router:    event.NewRouter[*World](queue),
		Physics:   physics.NewSimulation(queue, gravity),
		Camera:    camera,
		HUD:       &HUD{},
		Stats:     status.NewRegistry(),
	}
	w.Physics.SetFrameSource(w.Scheduler.Tick)
	return w, nil
}

// AddSystem adds a system and keeps systems sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// RegisterHandler routes declared event types to h
func (w *World) RegisterHandler(h event.Handler[*World]) {
	w.Router.Register(h)
}

// SetRenderHook installs the draw call run between update and end-of-frame tasks
func (w *World) SetRenderHook(fn func(*World)) {
	w.renderHook = fn
}

// Now returns elapsed game time
func (w *World) Now() time.Duration {
	return w.Scheduler.Now()
}

// Push queues an event stamped with the current tick
func (w *World) Push(et event.EventType, payload any) {
	w.Events.Push(event.GameEvent{
		Type:    et,
		Payload: payload,
		Frame:   w.Scheduler.Tick(),
	})
}

// Tick runs one frame:
//  1. advance game time
//  2. systems in priority order
//  3. physics step, contacts queued
//  4. dispatch contacts
//  5. timed tasks, then dispatch their events
//  6. render hook
//  7. end-of-frame tasks, then dispatch their events
func (w *World) Tick(dt time.Duration) {
	w.Scheduler.Advance(dt)

	for _, s := range w.systems {
		s.Update(w, dt)
	}

	w.Physics.Step(dt)
	w.Router.DispatchAll(w)

	if w.Scheduler.RunDue() > 0 {
		w.Router.DispatchAll(w)
	}

	if w.renderHook != nil {
		w.renderHook(w)
	}

	if w.Scheduler.FlushEndOfFrame() > 0 {
		w.Router.DispatchAll(w)
	}
}
