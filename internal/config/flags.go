package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFPS        = flag.Int("fps", -1, "Frame rate limit, 0 for none")
	flagMount      = flag.String("mount", "", "Mount point identifier")
	flagEase       = flag.String("ease", "", "Spin easing (linear, power2.in, power2.out, power2.inout, rough)")
	flagFrames     = flag.Int("frames", 0, "Exit after this many frames, 0 to run until closed")
	flagWatch      = flag.Bool("watch", false, "Reload ring labels when the config file changes")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// FrameLimit returns the --frames value.
func FrameLimit() int {
	return *flagFrames
}

// WatchEnabled returns the --watch value.
func WatchEnabled() bool {
	return *flagWatch
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFPS >= 0 {
		cfg.Graphics.FPSLimit = *flagFPS
	}
	if *flagMount != "" {
		cfg.Spinner.Mount = *flagMount
	}
	if *flagEase != "" {
		cfg.Spinner.Ease = *flagEase
	}
}
