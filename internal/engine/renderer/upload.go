package renderer

import (
	"image"
	"sort"

	"github.com/Faultbox/ringspin/internal/engine/model"
	"github.com/Faultbox/ringspin/internal/engine/scene"
	"github.com/Faultbox/ringspin/pkg/math"
)

// vertexStride is position(3) + normal(3) + uv(2) floats.
const vertexStride = 8

// interleave packs mesh vertices as [px py pz nx ny nz u v] per vertex.
func interleave(m *model.Mesh) []float32 {
	data := make([]float32, 0, len(m.Vertices)*vertexStride)
	for _, v := range m.Vertices {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return data
}

// alphaRows returns the mask as tightly packed rows, bottom row first,
// the order glTexImage2D expects for UV v = 0 at the bottom.
func alphaRows(img *image.Alpha) (pix []byte, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]byte, width*height)
	for y := 0; y < height; y++ {
		src := img.Pix[(height-1-y)*img.Stride:]
		copy(pix[y*width:(y+1)*width], src[:width])
	}
	return pix, width, height
}

// drawOrder returns opaque meshes first, then transparent meshes sorted
// back to front by view-space depth.
func drawOrder(meshes []*scene.Mesh, view math.Mat4) []*scene.Mesh {
	ordered := make([]*scene.Mesh, 0, len(meshes))
	type item struct {
		mesh  *scene.Mesh
		depth float32
	}
	var transparent []item

	for _, m := range meshes {
		if m.Material == nil || !m.Material.Transparent {
			ordered = append(ordered, m)
			continue
		}
		p := view.Mul(m.WorldMatrix()).Position()
		transparent = append(transparent, item{mesh: m, depth: p.Z})
	}

	// More negative Z is farther from a camera looking down -Z.
	sort.SliceStable(transparent, func(i, j int) bool {
		return transparent[i].depth < transparent[j].depth
	})
	for _, it := range transparent {
		ordered = append(ordered, it.mesh)
	}
	return ordered
}

// cullState returns whether face culling is enabled for side, and which
// face is culled.
func cullState(side scene.Side) (enabled bool, back bool) {
	switch side {
	case scene.DoubleSide:
		return false, false
	case scene.BackSide:
		return true, false
	default:
		return true, true
	}
}
