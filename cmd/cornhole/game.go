package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/config"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/input"
	"github.com/lixenwraith/cornhole/parameter"
	"github.com/lixenwraith/cornhole/render"
	"github.com/lixenwraith/cornhole/scene"
	"github.com/lixenwraith/cornhole/systems"
)

// Game owns the world and everything the main loop touches between frames
type Game struct {
	screen   tcell.Screen
	world    *engine.World
	lane     *scene.Lane
	systems  *systems.Systems
	renderer *render.TerminalRenderer
	machine  *input.Machine
	clock    *engine.PausableClock
	player   engine.AudioPlayer
	variant  input.Variant

	lastElapsed time.Duration
}

// NewGame builds the lane, systems and renderer for screen from cfg
func NewGame(screen tcell.Screen, cfg *config.Config, player engine.AudioPlayer, source engine.TimeSource) (*Game, error) {
	if err := engine.RequireDependency("game", "screen", screen != nil); err != nil {
		return nil, err
	}
	if err := engine.RequireDependency("game", "config", cfg != nil); err != nil {
		return nil, err
	}
	if err := engine.RequireDependency("game", "audio player", player != nil); err != nil {
		return nil, err
	}

	cam := scene.NewCamera(mgl64.Vec3{0, parameter.CameraHeight, 0},
		parameter.CameraPitch, parameter.CameraFOV, parameter.CameraNearClip)
	world, err := engine.NewWorld(cam, cfg.Physics.Gravity)
	if err != nil {
		return nil, err
	}
	lane := scene.BuildLane(world.Physics, cfg.LaneConfig())

	sys, err := systems.Install(world, lane, cfg.ThrowSettings(), cfg.BoardResolveDelay(), player)
	if err != nil {
		return nil, err
	}

	translator := input.NewTcellTranslator(parameter.CellPixelWidth, parameter.CellPixelHeight)
	g := &Game{
		screen:   screen,
		world:    world,
		lane:     lane,
		systems:  sys,
		renderer: render.NewTerminalRenderer(screen),
		machine:  input.NewMachine(translator),
		clock:    engine.NewPausableClock(source),
		player:   player,
		variant:  cfg.Variant(),
	}

	cols, rows := screen.Size()
	translator.SetScreenSize(cols, rows)
	g.resize(cols, rows)

	world.SetRenderHook(func(*engine.World) { g.renderer.RenderFrame(g.frame()) })
	log.Printf("Game ready: %dx%d cells, variant %s", cols, rows, g.variant)
	return g, nil
}

// HandleEvent applies one terminal event, returns false when the game should exit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	intent := g.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentReset:
		g.systems.Throw.ResetBall()

	case input.IntentTogglePause:
		paused := g.clock.Toggle()
		log.Printf("Paused: %v", paused)

	case input.IntentToggleMute:
		muted := g.player.ToggleMute()
		log.Printf("Muted: %v", muted)

	case input.IntentResize:
		g.screen.Sync()
		g.resize(intent.Width, intent.Height)

	case input.IntentPointer:
		// Presses and drags are ignored while paused, releases still end the hold
		if g.clock.IsPaused() && !intent.Pointer.Phase.Released() {
			break
		}
		g.systems.Throw.HandlePointer(intent.Pointer)
	}
	return true
}

// Step advances the world by the clock delta since the last step and draws it
// While paused the world stands still and only the frame is redrawn
func (g *Game) Step() {
	elapsed := g.clock.Elapsed()
	dt := elapsed - g.lastElapsed
	g.lastElapsed = elapsed
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	if g.clock.IsPaused() || dt <= 0 {
		g.renderer.RenderFrame(g.frame())
	} else {
		g.world.Tick(dt)
	}
	g.screen.Show()
}

func (g *Game) resize(cols, rows int) {
	g.renderer.UpdateDimensions(cols, rows)
	g.world.Camera.SetViewport(float64(cols*parameter.CellPixelWidth), float64(rows*parameter.CellPixelHeight))
}

func (g *Game) frame() render.Frame {
	return render.Frame{
		World:   g.world,
		Lane:    g.lane,
		Throw:   g.systems.Throw.State(),
		Variant: g.variant,
		Paused:  g.clock.IsPaused(),
		Muted:   g.player.IsMuted(),
	}
}
