package tween

import "time"

// Engine advances a set of tweens on a shared clock.
// Completed tweens are dropped on the next Update.
type Engine struct {
	tweens  []*Tween
	elapsed time.Duration
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Add registers t and returns it.
func (e *Engine) Add(t *Tween) *Tween {
	e.tweens = append(e.tweens, t)
	return t
}

// Update advances every tween by dt.
func (e *Engine) Update(dt time.Duration) {
	e.elapsed += dt
	live := e.tweens[:0]
	for _, t := range e.tweens {
		t.Advance(dt)
		if !t.Done() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = live
}

// Len returns the number of active tweens.
func (e *Engine) Len() int {
	return len(e.tweens)
}

// Elapsed returns the total time the engine has been advanced.
func (e *Engine) Elapsed() time.Duration {
	return e.elapsed
}

// Clear removes every tween.
func (e *Engine) Clear() {
	e.tweens = nil
}
