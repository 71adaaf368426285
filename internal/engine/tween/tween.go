package tween

import (
	gomath "math"
	"time"

	"github.com/tanema/gween"
)

// Forever repeats a tween indefinitely.
const Forever = -1

// Vars configures a tween.
type Vars struct {
	Duration time.Duration
	Delay    time.Duration
	// Repeat is the number of extra iterations; Forever never ends.
	Repeat int
	// Yoyo plays every odd iteration backwards.
	Yoyo bool
	Ease Ease
	// OnComplete runs once when a finite tween ends.
	OnComplete func()
}

// Tween drives a set of float32 targets from one value to another. Each
// leg is a gween tween; Tween adds the delay, repeats and yoyo legs on top
// and fans the value out to every target.
type Tween struct {
	targets []*float32
	from    float64
	to      float64
	vars    Vars

	forward  *gween.Tween
	backward *gween.Tween

	// lazyFrom is set for To tweens; from is read when the delay ends.
	lazyFrom  bool
	started   bool
	elapsed   time.Duration
	played    time.Duration
	local     time.Duration
	iteration int
	done      bool
}

// FromTo creates a tween from -> to. The targets are set to from immediately.
func FromTo(targets []*float32, from, to float64, vars Vars) *Tween {
	t := newTween(targets, from, to, vars)
	t.start()
	t.apply(float32(from))
	return t
}

// To creates a tween from the targets' value at the end of the delay to to.
func To(targets []*float32, to float64, vars Vars) *Tween {
	t := newTween(targets, 0, to, vars)
	t.lazyFrom = true
	return t
}

func newTween(targets []*float32, from, to float64, vars Vars) *Tween {
	if vars.Ease == nil {
		vars.Ease = Power2Out
	}
	return &Tween{
		targets: targets,
		from:    from,
		to:      to,
		vars:    vars,
	}
}

// start builds the gween legs once the start value is known.
func (t *Tween) start() {
	t.started = true
	d := seconds(t.vars.Duration)
	t.forward = gween.New(float32(t.from), float32(t.to), d, t.vars.Ease)
	if t.vars.Yoyo {
		t.backward = gween.New(float32(t.to), float32(t.from), d, reversed(t.vars.Ease))
	}
}

// Advance moves the playhead by dt and writes the new value to the targets.
func (t *Tween) Advance(dt time.Duration) {
	if t.done {
		return
	}
	t.elapsed += dt

	active := t.elapsed - t.vars.Delay
	if active < 0 {
		return
	}
	if !t.started {
		if t.lazyFrom && len(t.targets) > 0 {
			t.from = float64(*t.targets[0])
		}
		t.start()
	}

	value, finished := t.step(active - t.played)
	t.played = active
	t.apply(value)

	if finished {
		t.done = true
		if t.vars.OnComplete != nil {
			t.vars.OnComplete()
		}
	}
}

// step advances the current leg by dt. Crossing into a later iteration
// seeks the new leg to the exact local time.
func (t *Tween) step(dt time.Duration) (float32, bool) {
	d := t.vars.Duration
	if d <= 0 {
		return t.endValue(), t.vars.Repeat != Forever
	}

	t.local += dt
	if t.local < d {
		v, _ := t.leg().Update(seconds(dt))
		return v, false
	}

	n := int(t.local / d)
	if t.vars.Repeat != Forever && t.iteration+n > t.vars.Repeat {
		t.iteration = t.vars.Repeat
		t.local = d
		return t.endValue(), true
	}
	t.iteration += n
	t.local -= time.Duration(n) * d

	v, _ := t.leg().Set(seconds(t.local))
	return v, false
}

// leg returns the gween tween for the current iteration.
func (t *Tween) leg() *gween.Tween {
	if t.vars.Yoyo && t.iteration%2 == 1 {
		return t.backward
	}
	return t.forward
}

// endValue is the value after the last iteration.
func (t *Tween) endValue() float32 {
	if t.vars.Yoyo && t.vars.Repeat > 0 && t.vars.Repeat%2 == 1 {
		return float32(t.from)
	}
	return float32(t.to)
}

func (t *Tween) apply(v float32) {
	for _, target := range t.targets {
		*target = v
	}
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// Done reports whether a finite tween has completed.
func (t *Tween) Done() bool {
	return t.done
}

// Iteration returns the zero-based iteration the playhead is in,
// or -1 while the tween is still delayed.
func (t *Tween) Iteration() int {
	active := t.elapsed - t.vars.Delay
	if active < 0 {
		return -1
	}
	if t.vars.Duration <= 0 {
		return 0
	}
	return int(active / t.vars.Duration)
}

// Progress returns linear progress within the current iteration in [0, 1],
// ignoring yoyo direction.
func (t *Tween) Progress() float64 {
	active := t.elapsed - t.vars.Delay
	if active < 0 {
		return 0
	}
	d := t.vars.Duration
	if d <= 0 || t.done {
		return 1
	}
	return gomath.Mod(float64(active), float64(d)) / float64(d)
}

// From returns the start value.
func (t *Tween) From() float64 { return t.from }

// To returns the end value.
func (t *Tween) To() float64 { return t.to }

// Targets returns the driven targets.
func (t *Tween) Targets() []*float32 { return t.targets }
