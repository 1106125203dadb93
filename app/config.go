package app

import (
	"errors"
	"fmt"

	"bouncy/hal"
	"bouncy/sim"
)

// SceneKind selects what the app shows.
type SceneKind uint8

const (
	SceneBalls SceneKind = iota
	SceneWorld
	SceneGallery
)

func (s SceneKind) String() string {
	switch s {
	case SceneBalls:
		return "balls"
	case SceneWorld:
		return "world"
	case SceneGallery:
		return "gallery"
	default:
		return fmt.Sprintf("scene(%d)", uint8(s))
	}
}

// ParseScene maps a flag value to a SceneKind.
func ParseScene(s string) (SceneKind, error) {
	switch s {
	case "", "balls":
		return SceneBalls, nil
	case "world":
		return SceneWorld, nil
	case "gallery":
		return SceneGallery, nil
	default:
		return 0, fmt.Errorf("unknown scene %q", s)
	}
}

// Config is the full app configuration.
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
	Scale  int

	Balls int
	// Seed for the ball layout. Zero picks one from the clock.
	Seed    uint64
	Scene   SceneKind
	Reflect sim.Reflect
	// FixedStep runs the simulation in steps of this many seconds. Zero uses the
	// frame delta directly.
	FixedStep float32

	Sound   bool
	Console bool
	// Workers is the number of raster bands for the 3D scene.
	Workers int
	// StatsEvery is the period of the stats log line in seconds. Zero disables it.
	StatsEvery float64
}

func DefaultConfig() Config {
	return Config{
		Width:      512,
		Height:     512,
		Title:      "Bouncy Balls",
		TPS:        120,
		Scale:      1,
		Balls:      50,
		Scene:      SceneBalls,
		Reflect:    sim.ReflectReference,
		Workers:    2,
		StatsEvery: 5,
	}
}

var errConfig = errors.New("invalid config")

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width < 2*sim.BallRadius || c.Height < 2*sim.BallRadius:
		return fmt.Errorf("%w: window %dx%d is smaller than one ball", errConfig, c.Width, c.Height)
	case c.Width > 4096 || c.Height > 4096:
		return fmt.Errorf("%w: window %dx%d is too large", errConfig, c.Width, c.Height)
	case c.Balls < 0:
		return fmt.Errorf("%w: balls must not be negative (got %d)", errConfig, c.Balls)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive (got %d)", errConfig, c.TPS)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive (got %d)", errConfig, c.Scale)
	case c.FixedStep < 0:
		return fmt.Errorf("%w: fixed step must not be negative (got %v)", errConfig, c.FixedStep)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1 (got %d)", errConfig, c.Workers)
	case c.Scene > SceneGallery:
		return fmt.Errorf("%w: %v", errConfig, c.Scene)
	case c.Reflect > sim.ReflectClamp:
		return fmt.Errorf("%w: %v", errConfig, c.Reflect)
	}
	return nil
}

// Window is the host window setup for c.
func (c Config) Window() hal.WindowConfig {
	return hal.WindowConfig{Width: c.Width, Height: c.Height, Title: c.Title, TPS: c.TPS, Scale: c.Scale}
}
