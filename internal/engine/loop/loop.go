// Package loop drives per-frame callbacks until stopped.
package loop

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// ErrStop may be returned by a FrameFunc to end the loop without an error.
var ErrStop = errors.New("loop: stop")

// FrameFunc is called once per frame with the time since the previous frame.
type FrameFunc func(dt time.Duration) error

// Option configures a Loop.
type Option func(*Loop)

// WithFixedStep makes every frame report the same delta regardless of
// wall-clock time.
func WithFixedStep(step time.Duration) Option {
	return func(l *Loop) { l.fixedStep = step }
}

// WithFPSLimit sleeps at the end of each frame so the loop runs at most
// fps frames per second. Zero disables the limit.
func WithFPSLimit(fps int) Option {
	return func(l *Loop) {
		if fps > 0 {
			l.minFrame = time.Second / time.Duration(fps)
		} else {
			l.minFrame = 0
		}
	}
}

// WithLogger sets the logger used for FPS reports.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// Loop runs registered frame callbacks in registration order.
// Run must be called from a single goroutine; Stop is safe from any.
type Loop struct {
	callbacks []FrameFunc
	stopped   atomic.Bool
	frames    atomic.Uint64

	fixedStep time.Duration
	minFrame  time.Duration
	log       *zap.Logger

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		log:   zap.NewNop(),
		now:   time.Now,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OnFrame registers fn to run every frame.
func (l *Loop) OnFrame(fn FrameFunc) {
	l.callbacks = append(l.callbacks, fn)
}

// Stop ends Run after the frame in progress.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Stopped reports whether Stop has been called since the last Run.
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Frames returns the number of frames completed.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Run runs frames until Stop is called or a callback fails.
func (l *Loop) Run() error {
	return l.run(-1)
}

// RunFrames runs at most n frames.
func (l *Loop) RunFrames(n int) error {
	if n <= 0 {
		return nil
	}
	return l.run(n)
}

func (l *Loop) run(limit int) error {
	l.stopped.Store(false)

	last := l.now()
	fpsTimer := last
	fpsCount := 0

	for i := 0; limit < 0 || i < limit; i++ {
		if l.stopped.Load() {
			return nil
		}

		start := l.now()
		dt := start.Sub(last)
		last = start
		if l.fixedStep > 0 {
			dt = l.fixedStep
		}

		for _, fn := range l.callbacks {
			if err := fn(dt); err != nil {
				l.frames.Add(1)
				if errors.Is(err, ErrStop) {
					return nil
				}
				return fmt.Errorf("frame %d: %w", l.frames.Load(), err)
			}
		}
		l.frames.Add(1)

		fpsCount++
		if elapsed := l.now().Sub(fpsTimer); elapsed >= time.Second {
			l.log.Debug("fps",
				zap.Int("count", fpsCount),
				zap.String("dt", fmt.Sprintf("%.2fms", float64(dt)/float64(time.Millisecond))))
			fpsCount = 0
			fpsTimer = l.now()
		}

		if l.minFrame > 0 {
			if spent := l.now().Sub(start); spent < l.minFrame {
				l.sleep(l.minFrame - spent)
			}
		}
	}
	return nil
}
