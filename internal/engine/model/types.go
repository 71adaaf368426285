// Package model builds procedural mesh geometry ready for GPU upload.
package model

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds the complete mesh data ready for GPU upload.
// A Mesh is immutable once built and may be shared by many scene meshes.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// emptyBounds returns inverted bounds that any point will expand.
func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

// updateBounds expands b to contain pos.
func updateBounds(b *Bounds, pos [3]float32) {
	for i := 0; i < 3; i++ {
		if pos[i] < b.Min[i] {
			b.Min[i] = pos[i]
		}
		if pos[i] > b.Max[i] {
			b.Max[i] = pos[i]
		}
	}
}
