package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cornhole/audio"
	"github.com/lixenwraith/cornhole/config"
	"github.com/lixenwraith/cornhole/core"
	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/input"
	"github.com/lixenwraith/cornhole/parameter"
)

var (
	configFlag      = flag.String("config", "", "Config file (.toml, .yaml or .yml)")
	envFlag         = flag.String("env", ".env", "Env file with CORNHOLE_* overrides, ignored if missing")
	touchFlag       = flag.Bool("touch", false, "Touch input: the ball stays put while swiping")
	debugFlag       = flag.Bool("debug", false, "Write debug log to logs/cornhole.log")
	muteFlag        = flag.Bool("mute", false, "Start without audio")
	printConfigFlag = flag.Bool("print-config", false, "Print the effective config as TOML and exit")
)

func main() {
	flag.Parse()
	os.Exit(runMain())
}

// runMain owns every deferred cleanup and returns the process exit code
func runMain() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return 1
	}
	if *touchFlag {
		cfg.Input.Variant = input.VariantTouch.String()
	}

	if *printConfigFlag {
		if err := cfg.WriteTOML(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Config: %v\n", err)
			return 1
		}
		return 0
	}

	player := startAudio(cfg)
	if sm, ok := player.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	core.SetCrashFinalizer(screen.Fini)

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.EnableFocus()
	screen.HideCursor()

	game, err := NewGame(screen, cfg, player, engine.NewTimeProvider())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	run(screen, game)
	screen.Fini()

	log.Printf("Session: %s", game.world.Stats.Summary())
	if dropped := game.world.Events.Dropped(); dropped > 0 {
		log.Printf("Session: %d events dropped on queue overflow", dropped)
	}
	return 0
}

// startAudio returns a running sound manager, or a silent player when audio is off or unavailable
func startAudio(cfg *config.Config) engine.AudioPlayer {
	ac := cfg.AudioConfig()
	if *muteFlag || !ac.Enabled {
		return &audio.NopPlayer{}
	}
	sm := audio.NewSoundManager(ac)
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return &audio.NopPlayer{}
	}
	return sm
}

// run is the main loop: terminal events arrive from the poller, frames from the ticker
func run(screen tcell.Screen, game *Game) {
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	// Input polling goroutine recovers through the shared crash handler
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Clean exit on screen finalization
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !game.HandleEvent(ev) {
				return
			}

		case <-frameTicker.C:
			game.Step()
		}
	}
}
