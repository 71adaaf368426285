package lighting

import (
	"testing"

	"github.com/Faultbox/ringspin/internal/engine/scene"
	"github.com/Faultbox/ringspin/pkg/math"
)

func TestCollectResolvesWorldPosition(t *testing.T) {
	group := scene.NewObject("group")
	group.Position = math.Vec3{X: 100}

	l := scene.NewPointLight("key", [3]float32{1, 1, 1}, 2)
	l.Position = math.Vec3{X: -200, Y: 50, Z: 100}
	group.Add(l)

	b := NewBuffer()
	if n := b.Collect([]*scene.PointLight{l}); n != 1 {
		t.Fatalf("Collect: got %d lights, want 1", n)
	}

	if got := b.Lights[0].Position; got != [3]float32{-100, 50, 100} {
		t.Errorf("world position: got %v, want (-100, 50, 100)", got)
	}
	pos := b.Positions()
	if len(pos) != MaxPointLights*3 || pos[0] != -100 || pos[1] != 50 || pos[2] != 100 {
		t.Errorf("Positions: got %v", pos[:3])
	}
}

func TestCollectClampsAndLimits(t *testing.T) {
	var lights []*scene.PointLight
	for i := 0; i < MaxPointLights+3; i++ {
		lights = append(lights, scene.NewPointLight("l", [3]float32{2, -1, 0.5}, 1))
	}

	b := NewBuffer()
	if n := b.Collect(lights); n != MaxPointLights {
		t.Errorf("Collect: got %d lights, want %d", n, MaxPointLights)
	}
	if got := b.Lights[0].Color; got != [3]float32{1, 0, 0.5} {
		t.Errorf("clamped color: got %v, want (1, 0, 0.5)", got)
	}
}

func TestColorsScaleWithIntensity(t *testing.T) {
	b := NewBuffer()
	b.Collect([]*scene.PointLight{scene.NewPointLight("l", [3]float32{1, 0.5, 0}, 2)})

	c := b.Colors()
	if c[0] != 2 || c[1] != 1 || c[2] != 0 {
		t.Errorf("Colors: got %v, want (2, 1, 0)", c[:3])
	}

	b.Collect(nil)
	if b.Count() != 0 {
		t.Errorf("Collect(nil) should empty the buffer, got %d", b.Count())
	}
}
