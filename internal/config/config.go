// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/bouncecube/internal/engine/debug"
	"github.com/Faultbox/bouncecube/internal/scene"
)

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds camera and animation settings.
type SceneConfig struct {
	FOVDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	Distance   float32 `yaml:"distance"`

	BounceStep   [2]float64 `yaml:"bounce_step,flow"`   // per-frame step on X, Y
	BounceBounds [2]float64 `yaml:"bounce_bounds,flow"` // half extents on X, Y

	RotationRates [3]float32 `yaml:"rotation_rates,flow"` // multipliers on X, Y, Z
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"`
	LogFPS           bool   `yaml:"log_fps"`
}

// Default returns a Config with the stock demo values.
func Default() *Config {
	sc := scene.DefaultConfig()
	return &Config{
		Window: WindowConfig{
			Title:      "Bounce Cube",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			FOVDegrees:    sc.Camera.FOVDegrees,
			Near:          sc.Camera.Near,
			Far:           sc.Camera.Far,
			Distance:      sc.Camera.Distance,
			BounceStep:    [2]float64{sc.StepX, sc.StepY},
			BounceBounds:  [2]float64{sc.BoundX, sc.BoundY},
			RotationRates: [3]float32{sc.Rates.X, sc.Rates.Y, sc.Rates.Z},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: string(debug.FormatPNG),
			LogFPS:           false,
		},
	}
}

// SceneSettings converts the scene section into renderer settings.
func (c *Config) SceneSettings() scene.Config {
	s := c.Scene
	return scene.Config{
		Camera: scene.Camera{
			FOVDegrees: s.FOVDegrees,
			Near:       s.Near,
			Far:        s.Far,
			Distance:   s.Distance,
		},
		Rates: scene.RotationRates{
			X: s.RotationRates[0],
			Y: s.RotationRates[1],
			Z: s.RotationRates[2],
		},
		StepX:  s.BounceStep[0],
		StepY:  s.BounceStep[1],
		BoundX: s.BounceBounds[0],
		BoundY: s.BounceBounds[1],
	}
}

// Validate reports every setting the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	s := c.Scene
	if s.FOVDegrees <= 0 || s.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("scene: fov_degrees %v must be in (0, 180)", s.FOVDegrees))
	}
	if s.Near <= 0 || s.Far <= s.Near {
		errs = append(errs, fmt.Errorf("scene: clip planes near=%v far=%v must satisfy 0 < near < far", s.Near, s.Far))
	}
	for i, axis := range []string{"x", "y"} {
		if s.BounceStep[i] <= 0 {
			errs = append(errs, fmt.Errorf("scene: bounce_step %s=%v must be positive", axis, s.BounceStep[i]))
		}
		if s.BounceBounds[i] <= 0 {
			errs = append(errs, fmt.Errorf("scene: bounce_bounds %s=%v must be positive", axis, s.BounceBounds[i]))
		}
	}

	if _, err := debug.ParseFormat(c.Debug.ScreenshotFormat); err != nil {
		errs = append(errs, fmt.Errorf("debug: %w", err))
	}

	return errors.Join(errs...)
}
