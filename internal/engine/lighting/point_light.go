// Package lighting packs scene point lights into flat arrays for shader upload.
package lighting

import "github.com/Faultbox/ringspin/internal/engine/scene"

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// PointLight is a point light resolved to world space.
type PointLight struct {
	Position  [3]float32 // World position
	Color     [3]float32 // RGB color (0-1 range)
	Range     float32    // Falloff distance, 0 for no falloff
	Intensity float32
}

// Buffer holds lights for GPU upload.
type Buffer struct {
	Lights []PointLight
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Collect replaces the buffer contents with the given scene lights,
// resolved to world space. Lights beyond MaxPointLights are dropped.
// Returns the number of lights kept.
func (b *Buffer) Collect(lights []*scene.PointLight) int {
	b.Lights = b.Lights[:0]
	for _, l := range lights {
		if len(b.Lights) >= MaxPointLights {
			break
		}
		light := PointLight{
			Position:  l.WorldMatrix().Position().Array(),
			Color:     l.Color,
			Range:     l.Range,
			Intensity: l.Intensity,
		}

		// Clamp color values to 0-1 range
		for i := 0; i < 3; i++ {
			if light.Color[i] > 1.0 {
				light.Color[i] = 1.0
			}
			if light.Color[i] < 0.0 {
				light.Color[i] = 0.0
			}
		}
		if light.Range < 0 {
			light.Range = 0
		}

		b.Lights = append(b.Lights, light)
	}
	return len(b.Lights)
}

// Count returns the number of lights in the buffer.
func (b *Buffer) Count() int {
	return len(b.Lights)
}

// Positions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *Buffer) Positions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		copy(result[i*3:], light.Position[:])
	}
	return result
}

// Colors returns colors premultiplied by intensity as a flat float32 slice.
// Format: [r0, g0, b0, r1, g1, b1, ...]
func (b *Buffer) Colors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Color[0] * light.Intensity
		result[i*3+1] = light.Color[1] * light.Intensity
		result[i*3+2] = light.Color[2] * light.Intensity
	}
	return result
}

// Ranges returns ranges as a flat float32 slice for GPU upload.
func (b *Buffer) Ranges() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Range
	}
	return result
}
