// Package main runs the rotating text-ring spinner in an SDL2 window.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ringspin/internal/config"
	"github.com/Faultbox/ringspin/internal/engine/debug"
	"github.com/Faultbox/ringspin/internal/engine/framebuffer"
	"github.com/Faultbox/ringspin/internal/engine/input"
	"github.com/Faultbox/ringspin/internal/engine/loop"
	"github.com/Faultbox/ringspin/internal/engine/renderer"
	"github.com/Faultbox/ringspin/internal/engine/tween"
	"github.com/Faultbox/ringspin/internal/engine/window"
	"github.com/Faultbox/ringspin/internal/logger"
	"github.com/Faultbox/ringspin/internal/spinner"
)

const windowTitle = "ringspin"

func init() {
	runtime.LockOSThread()
}

// windowMount shows the window once a surface is attached to it.
type windowMount struct {
	win *window.Window
}

func (m windowMount) Attach(spinner.Surface) {
	m.win.Show()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("ringspin failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// ringsFromConfig returns the configured rings, or the built-in ones.
func ringsFromConfig(cfg *config.Config) []spinner.Ring {
	if len(cfg.Spinner.Rings) == 0 {
		return spinner.DefaultRings()
	}
	rings := make([]spinner.Ring, len(cfg.Spinner.Rings))
	for i, fragments := range cfg.Spinner.Rings {
		rings[i] = spinner.Ring(fragments)
	}
	return rings
}

// watchLabels relabels the rings when the config file changes. Updates
// arrive on the watcher goroutine and are applied between frames.
func watchLabels(l *loop.Loop, s *spinner.Spinner) (stop func()) {
	path := config.ResolvePath()
	if path == "" {
		logger.Warn("no config file to watch")
		return func() {}
	}

	w, err := config.Watch(path)
	if err != nil {
		logger.Warn("config watch disabled", zap.Error(err))
		return func() {}
	}
	logger.Info("watching config", zap.String("path", path))

	l.OnFrame(func(time.Duration) error {
		select {
		case next := <-w.Updates():
			n := s.Relabel(ringsFromConfig(next))
			logger.Info("ring labels reloaded", zap.Int("rings", n))
		case err := <-w.Errors():
			logger.Warn("config reload failed", zap.Error(err))
		default:
		}
		return nil
	})

	return func() { _ = w.Close() }
}

func run(cfg *config.Config) error {
	logger.Info("=== ringspin ===")

	ease, err := tween.ByName(cfg.Spinner.Ease)
	if err != nil {
		return fmt.Errorf("spinner ease: %w", err)
	}

	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		HighDPI:    cfg.Graphics.HighDPI,
		Hidden:     true,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	drawableW, drawableH := win.DrawableSize()
	if drawableW != cfg.Graphics.Width || drawableH != cfg.Graphics.Height {
		logger.Info("HiDPI detected",
			zap.Int("window", cfg.Graphics.Width),
			zap.Int("drawable", drawableW),
			zap.Float32("scale", float32(drawableW)/float32(cfg.Graphics.Width)),
		)
	}

	r, err := renderer.New(renderer.Config{Width: drawableW, Height: drawableH})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer r.Close()

	in := input.New(win.DrawableSize)
	in.OnKey(sdl.SCANCODE_ESCAPE, in.Quit)

	// Assigned below; key handlers only run once the loop is going.
	var s *spinner.Spinner

	shots := debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix)
	in.OnKey(sdl.SCANCODE_F12, func() {
		w, h := r.Size()
		w, h = framebuffer.ScaledSize(w, h, cfg.Capture.Scale)
		pixels, w, h, err := r.RenderOffscreen(s.Scene, s.Camera, w, h)
		if err == nil {
			var name string
			if name, err = shots.CaptureFromPixels(pixels, w, h); err == nil {
				logger.Info("screenshot saved", zap.String("path", name), zap.Int("width", w), zap.Int("height", h))
				return
			}
		}
		logger.Warn("screenshot failed", zap.Error(err))
	})

	l := loop.New(
		loop.WithFPSLimit(cfg.Graphics.FPSLimit),
		loop.WithLogger(logger.Named("loop")),
	)

	// Events are pumped before the spinner advances and draws.
	l.OnFrame(func(time.Duration) error {
		if in.Update() {
			return loop.ErrStop
		}
		return nil
	})

	rings := ringsFromConfig(cfg)

	mounts := spinner.Mounts{config.DefaultMount: windowMount{win: win}}
	mount := mounts.Lookup(cfg.Spinner.Mount)
	if mount == nil {
		logger.Warn("unknown mount point", zap.String("mount", cfg.Spinner.Mount))
	}

	s = spinner.Assemble(rings, spinner.Options{
		Viewport: spinner.Viewport{Width: drawableW, Height: drawableH},
		Mount:    mount,
		Surface:  r,
		Resize:   in,
		Loop:     l,
		Timing: spinner.Timing{
			SpinDuration:   cfg.Spinner.SpinDuration,
			Ease:           ease,
			LightDelay:     cfg.Spinner.LightDelay,
			LightFade:      cfg.Spinner.LightFade,
			LightIntensity: cfg.Spinner.LightIntensity,
		},
		Logger: logger.Named("spinner"),
	})

	l.OnFrame(func(time.Duration) error {
		win.Present()
		return nil
	})

	if config.WatchEnabled() {
		stop := watchLabels(l, s)
		defer stop()
	}

	if n := config.FrameLimit(); n > 0 {
		logger.Info("running bounded", zap.Int("frames", n))
		err = l.RunFrames(n)
	} else {
		err = l.Run()
	}
	if err != nil && !errors.Is(err, loop.ErrStop) {
		return err
	}

	logger.Info("spinner stopped",
		zap.Uint64("frames", l.Frames()),
		zap.Duration("elapsed", s.Tweens.Elapsed()),
	)
	return nil
}
