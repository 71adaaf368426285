// Package tween animates float32 properties over time with easing,
// delays, repeats and yoyo playback. Interpolation is done by gween.
package tween

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// Ease is a gween easing function: the value at time t of a change c from
// b over duration d.
type Ease = ease.TweenFunc

// Named eases. PowerN follows the GSAP convention, so Power2 is cubic.
var (
	Linear      Ease = ease.Linear
	Power1Out   Ease = ease.OutQuad
	Power2In    Ease = ease.InCubic
	Power2Out   Ease = ease.OutCubic
	Power2InOut Ease = ease.InOutCubic
)

// Sample returns the eased progress of e at linear progress p in [0, 1].
func Sample(e Ease, p float64) float64 {
	return float64(e(float32(p), 0, 1, 1))
}

// Rough returns a textured ease that follows template with random jitter of
// up to strength at points evenly spaced samples. The jitter is fixed by
// seed, so the same arguments always produce the same curve. The endpoints
// are pinned to the start and end values.
func Rough(template Ease, strength float64, points int, seed int64) Ease {
	if template == nil {
		template = Linear
	}
	if points < 1 {
		points = 1
	}
	rng := rand.New(rand.NewSource(seed))

	xs := make([]float64, points+2)
	ys := make([]float64, points+2)
	xs[len(xs)-1], ys[len(ys)-1] = 1, 1
	for i := 1; i <= points; i++ {
		x := float64(i) / float64(points+1)
		xs[i] = x
		ys[i] = Sample(template, x) + (rng.Float64()*2-1)*strength
	}

	return func(t, b, c, d float32) float32 {
		if d <= 0 || t >= d {
			return b + c
		}
		if t <= 0 {
			return b
		}
		p := float64(t / d)
		i := sort.SearchFloat64s(xs, p)
		x0, x1 := xs[i-1], xs[i]
		f := (p - x0) / (x1 - x0)
		return b + c*float32(ys[i-1]+f*(ys[i]-ys[i-1]))
	}
}

// reversed plays e backwards. A tween from the end value to the start value
// eased by reversed(e) retraces the forward curve, as a yoyo leg does.
func reversed(e Ease) Ease {
	return func(t, b, c, d float32) float32 {
		return b + c - e(d-t, 0, c, d)
	}
}

// ByName resolves an ease from its configuration name: "linear",
// "power1.out", "power2.in", "power2.out", "power2.inout" or "rough".
func ByName(name string) (Ease, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "none":
		return Linear, nil
	case "power1.out":
		return Power1Out, nil
	case "power2.in":
		return Power2In, nil
	case "power2.out", "":
		return Power2Out, nil
	case "power2.inout":
		return Power2InOut, nil
	case "rough":
		return Rough(Power2Out, 0.05, 20, 1), nil
	default:
		return nil, fmt.Errorf("unknown ease %q", name)
	}
}
