// Package config handles spinner configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Spinner  SpinnerConfig  `yaml:"spinner"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	HighDPI    bool `yaml:"high_dpi"`
}

// SpinnerConfig holds the ring texts and animation timing.
type SpinnerConfig struct {
	// Rings lists the text fragments of each ring, bottom ring first.
	Rings [][]string `yaml:"rings"`
	// Mount is the identifier of the mount point the spinner is shown in.
	Mount          string        `yaml:"mount"`
	SpinDuration   time.Duration `yaml:"spin_duration"`
	Ease           string        `yaml:"ease"`
	LightDelay     time.Duration `yaml:"light_delay"`
	LightFade      time.Duration `yaml:"light_fade"`
	LightIntensity float32       `yaml:"light_intensity"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	// Scale multiplies the drawable size of captured frames.
	Scale float64 `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultMount is the mount point identifier the spinner looks up.
const DefaultMount = "container"

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			HighDPI:    true,
		},
		Spinner: SpinnerConfig{
			Mount:          DefaultMount,
			SpinDuration:   60 * time.Second,
			Ease:           "power2.out",
			LightDelay:     time.Second,
			LightFade:      time.Second,
			LightIntensity: 2,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "ringspin",
			Scale:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the program cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics: negative fps_limit %d", c.Graphics.FPSLimit))
	}
	if c.Spinner.SpinDuration <= 0 {
		errs = append(errs, fmt.Errorf("spinner: spin_duration must be positive, got %v", c.Spinner.SpinDuration))
	}
	if c.Spinner.LightDelay < 0 || c.Spinner.LightFade < 0 {
		errs = append(errs, errors.New("spinner: light timings must not be negative"))
	}
	if c.Capture.Scale <= 0 || c.Capture.Scale > 8 {
		errs = append(errs, fmt.Errorf("capture: scale must be in (0, 8], got %v", c.Capture.Scale))
	}
	return errors.Join(errs...)
}
