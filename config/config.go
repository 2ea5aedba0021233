package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cornhole/audio"
	"github.com/lixenwraith/cornhole/input"
	"github.com/lixenwraith/cornhole/parameter"
	"github.com/lixenwraith/cornhole/scene"
	"github.com/lixenwraith/cornhole/systems"
)

// ErrInvalid is wrapped by every validation and decoding failure
var ErrInvalid = errors.New("invalid config")

// Config is the tunable subset of the game, layered over compiled-in parameters
type Config struct {
	Input   InputConfig   `toml:"input" yaml:"input"`
	Throw   ThrowConfig   `toml:"throw" yaml:"throw"`
	Scoring ScoringConfig `toml:"scoring" yaml:"scoring"`
	Physics PhysicsConfig `toml:"physics" yaml:"physics"`
	Audio   AudioSection  `toml:"audio" yaml:"audio"`

	// lookup reads environment values, process env first then .env
	lookup func(string) string
}

type InputConfig struct {
	// Variant is "mouse" or "touch"
	Variant string `toml:"variant" yaml:"variant"`
}

type ThrowConfig struct {
	ForceMultiplier       float64  `toml:"force_multiplier" yaml:"force_multiplier"`
	UpwardAngle           float64  `toml:"upward_angle" yaml:"upward_angle"`
	HorizontalSensitivity float64  `toml:"horizontal_sensitivity" yaml:"horizontal_sensitivity"`
	MinSwipeDist          float64  `toml:"min_swipe_dist" yaml:"min_swipe_dist"`
	MinBallSpeed          float64  `toml:"min_ball_speed" yaml:"min_ball_speed"`
	MaxBallSpeed          float64  `toml:"max_ball_speed" yaml:"max_ball_speed"`
	PickupLerpRate        float64  `toml:"pickup_lerp_rate" yaml:"pickup_lerp_rate"`
	PickupDepth           float64  `toml:"pickup_depth" yaml:"pickup_depth"`
	AutoReset             Duration `toml:"auto_reset" yaml:"auto_reset"`
}

type ScoringConfig struct {
	BoardResolveDelay Duration `toml:"board_resolve_delay" yaml:"board_resolve_delay"`
}

type PhysicsConfig struct {
	Gravity    float64 `toml:"gravity" yaml:"gravity"`
	BallMass   float64 `toml:"ball_mass" yaml:"ball_mass"`
	BallRadius float64 `toml:"ball_radius" yaml:"ball_radius"`
}

// AudioSection is the file-level audio switch; per-effect volumes stay in CORNHOLE_SFX_VOLUMES
type AudioSection struct {
	Enabled      bool    `toml:"enabled" yaml:"enabled"`
	MasterVolume float64 `toml:"master_volume" yaml:"master_volume"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Input: InputConfig{Variant: input.VariantMouse.String()},
		Throw: ThrowConfig{
			ForceMultiplier:       parameter.ThrowForceMultiplier,
			UpwardAngle:           parameter.UpwardAngle,
			HorizontalSensitivity: parameter.HorizontalSensitivity,
			MinSwipeDist:          parameter.MinSwipeDist,
			MinBallSpeed:          parameter.MinBallSpeed,
			MaxBallSpeed:          parameter.MaxBallSpeed,
			PickupLerpRate:        parameter.PickupLerpRate,
			PickupDepth:           parameter.PickupDepth,
			AutoReset:             Duration(parameter.AutoResetDelay),
		},
		Scoring: ScoringConfig{BoardResolveDelay: Duration(parameter.BoardResolveDelay)},
		Physics: PhysicsConfig{
			Gravity:    parameter.Gravity,
			BallMass:   parameter.BallMass,
			BallRadius: parameter.BallRadius,
		},
		Audio: AudioSection{Enabled: ac.Enabled, MasterVolume: ac.MasterVolume},
	}
}

// Load builds a config from defaults, the optional file at path, the optional
// env file, then process environment, and validates the result
// Empty paths skip their layer; a missing env file is not an error
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := readEnvFile(envFile)
		if err != nil {
			return nil, err
		}
		dotenv = m
	}
	cfg.lookup = layeredLookup(os.Getenv, dotenv)
	cfg.ApplyEnv(cfg.lookup)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays a TOML or YAML file chosen by extension
// Keys absent from the file keep their current values
func (c *Config) LoadFile(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("%s: %w: %v", path, ErrInvalid, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%s: %w: %v", path, ErrInvalid, err)
		}
	default:
		return fmt.Errorf("%s: %w: unsupported extension %q", path, ErrInvalid, ext)
	}
	return nil
}

// WriteTOML encodes the config as a TOML document
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	_, ok := input.ParseVariant(c.Input.Variant)
	check(ok, "input.variant %q", c.Input.Variant)

	t := c.Throw
	check(t.ForceMultiplier > 0, "throw.force_multiplier %g must be positive", t.ForceMultiplier)
	check(t.MinBallSpeed > 0, "throw.min_ball_speed %g must be positive", t.MinBallSpeed)
	check(t.MaxBallSpeed >= t.MinBallSpeed, "throw.max_ball_speed %g below min %g", t.MaxBallSpeed, t.MinBallSpeed)
	check(t.MinSwipeDist >= 0, "throw.min_swipe_dist %g is negative", t.MinSwipeDist)
	check(t.UpwardAngle > -90 && t.UpwardAngle < 90, "throw.upward_angle %g out of (-90, 90)", t.UpwardAngle)
	check(t.PickupLerpRate >= 0, "throw.pickup_lerp_rate %g is negative", t.PickupLerpRate)
	check(t.PickupDepth >= 0, "throw.pickup_depth %g is negative", t.PickupDepth)
	check(t.AutoReset >= 0, "throw.auto_reset %v is negative", t.AutoReset)

	check(c.Scoring.BoardResolveDelay >= 0, "scoring.board_resolve_delay %v is negative", c.Scoring.BoardResolveDelay)

	p := c.Physics
	check(p.BallMass > 0, "physics.ball_mass %g must be positive", p.BallMass)
	check(p.BallRadius > 0, "physics.ball_radius %g must be positive", p.BallRadius)
	check(p.Gravity <= 0, "physics.gravity %g must point down", p.Gravity)

	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1,
		"audio.master_volume %g out of [0, 1]", c.Audio.MasterVolume)

	return errors.Join(errs...)
}

// Variant returns the parsed input variant, mouse when unset
func (c *Config) Variant() input.Variant {
	v, _ := input.ParseVariant(c.Input.Variant)
	return v
}

// ThrowSettings converts the throw section
func (c *Config) ThrowSettings() systems.ThrowSettings {
	t := c.Throw
	return systems.ThrowSettings{
		Variant:               c.Variant(),
		ForceMultiplier:       t.ForceMultiplier,
		UpwardAngle:           t.UpwardAngle,
		HorizontalSensitivity: t.HorizontalSensitivity,
		MinSwipeDist:          t.MinSwipeDist,
		MinBallSpeed:          t.MinBallSpeed,
		MaxBallSpeed:          t.MaxBallSpeed,
		PickupLerpRate:        t.PickupLerpRate,
		PickupDepth:           t.PickupDepth,
		AutoResetDelay:        t.AutoReset.Std(),
	}
}

// BoardResolveDelay returns the wait before a board payout
func (c *Config) BoardResolveDelay() time.Duration {
	return c.Scoring.BoardResolveDelay.Std()
}

// LaneConfig returns the lane layout with the configured ball
func (c *Config) LaneConfig() scene.LaneConfig {
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
		BallMass:         c.Physics.BallMass,
		BallRadius:       c.Physics.BallRadius,

		GroundRestitution: parameter.GroundRestitution,
		GroundFriction:    parameter.GroundFriction,
		BoardRestitution:  parameter.BoardRestitution,
		BoardFriction:     parameter.BoardFriction,
	}
}

// AudioConfig returns playback settings with the file section and audio env vars applied
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	lookup := c.lookup
	if lookup == nil {
		lookup = os.Getenv
	}
	audio.ApplyEnv(ac, lookup)
	return ac
}
