package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cornhole/config"
	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/parameter"
)

const testFrame = 50 * time.Millisecond

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

// frameSource is a wall clock the test advances by hand
type frameSource struct {
	now time.Time
}

func (f *frameSource) Now() time.Time          { return f.now }
func (f *frameSource) Advance(d time.Duration) { f.now = f.now.Add(d) }

type gameFixture struct {
	game   *Game
	screen tcell.SimulationScreen
	clock  *frameSource
	player *mockPlayer
}

func newGameFixture(t *testing.T) *gameFixture {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Throw.AutoReset = 0

	clock := &frameSource{now: time.Unix(0, 0)}
	player := &mockPlayer{}
	game, err := NewGame(screen, cfg, player, clock)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return &gameFixture{game: game, screen: screen, clock: clock, player: player}
}

func (fx *gameFixture) step(n int) {
	for i := 0; i < n; i++ {
		fx.clock.Advance(testFrame)
		fx.game.Step()
	}
}

func (fx *gameFixture) key(ch rune) bool {
	return fx.game.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
}

func (fx *gameFixture) mouse(x, y int, btn tcell.ButtonMask) {
	fx.game.HandleEvent(tcell.NewEventMouse(x, y, btn, tcell.ModNone))
}

func (fx *gameFixture) rowText(row int) string {
	w, _ := fx.screen.Size()
	var sb strings.Builder
	for col := 0; col < w; col++ {
		mainc, _, _, _ := fx.screen.GetContent(col, row)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func TestNewGameRequiresDependencies(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := config.Default()

	tests := []struct {
		name   string
		screen tcell.Screen
		cfg    *config.Config
		player engine.AudioPlayer
	}{
		{"screen", nil, cfg, &mockPlayer{}},
		{"config", screen, nil, &mockPlayer{}},
		{"player", screen, cfg, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGame(tt.screen, tt.cfg, tt.player, nil)
			if !errors.Is(err, engine.ErrMissingDependency) {
				t.Errorf("NewGame = %v, want ErrMissingDependency", err)
			}
		})
	}
}

func TestSwipeThrowsBall(t *testing.T) {
	fx := newGameFixture(t)

	fx.mouse(40, 20, tcell.Button1)
	fx.step(1)
	fx.mouse(40, 14, tcell.Button1)
	fx.step(1)
	fx.mouse(40, 14, tcell.ButtonNone)
	fx.step(1)

	st := fx.game.systems.Throw.State()
	if !st.Thrown {
		t.Fatalf("ball not thrown, state %+v", st)
	}
	if st.SwipeDistance != 6*parameter.CellPixelHeight {
		t.Errorf("SwipeDistance = %f, want %d", st.SwipeDistance, 6*parameter.CellPixelHeight)
	}
	if len(fx.player.played) == 0 || fx.player.played[0] != core.SoundWhoosh {
		t.Errorf("played = %v, want whoosh first", fx.player.played)
	}

	if got := fx.game.world.Stats.Summary(); !strings.Contains(got, "throws=1") {
		t.Errorf("session summary %q missing throw", got)
	}

	fx.step(1)
	if !strings.Contains(fx.rowText(23), "speed") {
		t.Errorf("status bar %q missing throw speed", fx.rowText(23))
	}

	fx.key('r')
	if fx.game.systems.Throw.State().Thrown {
		t.Error("reset did not clear Thrown")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	fx := newGameFixture(t)
	fx.step(2)
	before := fx.game.world.Now()

	fx.key('p')
	fx.step(5)
	if got := fx.game.world.Now(); got != before {
		t.Errorf("world time moved while paused: %v -> %v", before, got)
	}
	if !strings.Contains(fx.rowText(23), "PAUSED") {
		t.Errorf("status bar %q missing PAUSED", fx.rowText(23))
	}

	// Pointer input is dropped while paused
	fx.mouse(40, 20, tcell.Button1)
	fx.game.world.Tick(testFrame)
	if fx.game.systems.Throw.State().Holding {
		t.Error("pointer accepted while paused")
	}

	fx.key('p')
	fx.step(1)
	if got := fx.game.world.Now(); got <= before {
		t.Errorf("world time %v did not resume past %v", got, before)
	}
}

func TestReleaseWhilePausedEndsHold(t *testing.T) {
	fx := newGameFixture(t)

	fx.mouse(40, 20, tcell.Button1)
	fx.step(1)
	if !fx.game.systems.Throw.State().Holding {
		t.Fatal("press did not start a hold")
	}

	fx.key('p')
	fx.mouse(40, 20, tcell.ButtonNone)
	fx.step(2)
	fx.key('p')
	fx.step(1)

	st := fx.game.systems.Throw.State()
	if st.Holding {
		t.Error("hold survived a release made while paused")
	}
	if st.Thrown {
		t.Error("zero-length release threw the ball")
	}
}

func TestStepCapsFrameDelta(t *testing.T) {
	fx := newGameFixture(t)
	fx.clock.Advance(5 * time.Second)
	fx.game.Step()

	if got := fx.game.world.Now(); got != parameter.MaxFrameDelta {
		t.Errorf("world time = %v, want %v", got, parameter.MaxFrameDelta)
	}
}

func TestMuteAndQuitKeys(t *testing.T) {
	fx := newGameFixture(t)

	fx.key('m')
	if !fx.player.muted {
		t.Error("m did not mute")
	}
	if !fx.key('z') {
		t.Error("unbound key ended the game")
	}
	if fx.key('q') {
		t.Error("q did not end the game")
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	fx := newGameFixture(t)
	fx.screen.SetSize(100, 30)
	fx.game.HandleEvent(tcell.NewEventResize(100, 30))

	w, h := fx.game.world.Camera.Viewport()
	if w != 100*parameter.CellPixelWidth || h != 30*parameter.CellPixelHeight {
		t.Errorf("viewport = %vx%v, want %dx%d", w, h, 100*parameter.CellPixelWidth, 30*parameter.CellPixelHeight)
	}
}
