package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix starts every variable the game reads
const EnvPrefix = "CORNHOLE_"

// readEnvFile parses a dotenv file without touching the process environment
func readEnvFile(path string) (map[string]string, error) {
	m, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}
	return m, nil
}

// layeredLookup prefers the process environment over dotenv values
func layeredLookup(getenv func(string) string, dotenv map[string]string) func(string) string {
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
}

// ApplyEnv overlays CORNHOLE_* game variables read through getenv
// Unparseable values are logged and skipped
func (c *Config) ApplyEnv(getenv func(string) string) {
	str := func(name string, dst *string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *float64) {
		v := getenv(EnvPrefix + name)
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("Ignoring %s%s=%q: %v", EnvPrefix, name, v, err)
			return
		}
		*dst = f
	}
	dur := func(name string, dst *Duration) {
		v := getenv(EnvPrefix + name)
		if v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Ignoring %s%s=%q: %v", EnvPrefix, name, v, err)
			return
		}
		*dst = Duration(d)
	}

	str("INPUT", &c.Input.Variant)
	num("FORCE_MULTIPLIER", &c.Throw.ForceMultiplier)
	num("UPWARD_ANGLE", &c.Throw.UpwardAngle)
	num("HORIZONTAL_SENSITIVITY", &c.Throw.HorizontalSensitivity)
	num("MIN_SWIPE_DIST", &c.Throw.MinSwipeDist)
	num("MIN_BALL_SPEED", &c.Throw.MinBallSpeed)
	num("MAX_BALL_SPEED", &c.Throw.MaxBallSpeed)
	dur("AUTO_RESET", &c.Throw.AutoReset)
	dur("BOARD_DELAY", &c.Scoring.BoardResolveDelay)
	num("GRAVITY", &c.Physics.Gravity)
	num("BALL_MASS", &c.Physics.BallMass)
}
