package scene

import (
	"image"

	"github.com/Faultbox/ringspin/internal/engine/model"
)

// Side selects which triangle faces are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Filter is a texture sampling filter.
type Filter int

const (
	LinearFilter Filter = iota
	NearestFilter
)

// Wrap is a texture wrapping mode.
type Wrap int

const (
	ClampToEdge Wrap = iota
	RepeatWrapping
)

// Texture is a single-channel image sampled by a material.
// Row 0 of Image is the top of the texture.
type Texture struct {
	Image     *image.Alpha
	MagFilter Filter
	WrapS     Wrap
	WrapT     Wrap
	Repeat    [2]float32

	// Version is bumped by MarkDirty; renderers re-upload when it changes.
	Version int
}

// NewTexture wraps img with linear filtering, clamped edges and repeat (1, 1).
func NewTexture(img *image.Alpha) *Texture {
	return &Texture{
		Image:   img,
		Repeat:  [2]float32{1, 1},
		Version: 1,
	}
}

// MarkDirty flags the image as changed.
func (t *Texture) MarkDirty() {
	t.Version++
}

// Material describes how a mesh surface is shaded.
type Material struct {
	Color       [3]float32
	Transparent bool
	Side        Side
	// AlphaTest discards fragments whose alpha is below the threshold.
	AlphaTest float32
	// AlphaMap, when set, supplies per-fragment alpha.
	AlphaMap *Texture
}

// Mesh is a renderable node: shared geometry plus its own material.
type Mesh struct {
	Object
	Geometry *model.Mesh
	Material *Material
}

// NewMesh creates a visible mesh at the origin.
func NewMesh(name string, geometry *model.Mesh, material *Material) *Mesh {
	m := &Mesh{Geometry: geometry, Material: material}
	m.init(name)
	return m
}
