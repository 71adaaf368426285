// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/ringspin/pkg/math"
)

// Perspective is a perspective-projection camera looking down -Z from its position.
type Perspective struct {
	FOV    float32 // Vertical field of view in degrees
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	Position math.Vec3

	projection math.Mat4
}

// NewPerspective creates a camera and computes its projection.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection matrix.
// Call it after changing FOV, Aspect, Near or Far.
func (c *Perspective) UpdateProjection() {
	fovY := c.FOV * float32(gomath.Pi) / 180
	c.projection = math.Perspective(fovY, c.Aspect, c.Near, c.Far)
}

// SetViewport sets the aspect ratio from viewport dimensions and updates
// the projection. A zero height leaves the camera unchanged.
func (c *Perspective) SetViewport(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
	c.UpdateProjection()
}

// Projection returns the cached projection matrix.
func (c *Perspective) Projection() math.Mat4 {
	return c.projection
}

// ViewMatrix returns the world-to-camera transform.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return math.Translate(-c.Position.X, -c.Position.Y, -c.Position.Z)
}

// ViewProjection returns Projection * View.
func (c *Perspective) ViewProjection() math.Mat4 {
	return c.projection.Mul(c.ViewMatrix())
}
