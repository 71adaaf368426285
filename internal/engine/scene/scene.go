package scene

// Scene is the root of a scene graph.
type Scene struct {
	Object
	Background [3]float32
}

// New creates an empty scene with a black background.
func New() *Scene {
	s := &Scene{}
	s.init("scene")
	return s
}

// Meshes returns every visible mesh in traversal order.
func (s *Scene) Meshes() []*Mesh {
	var meshes []*Mesh
	Traverse(s, func(n Node) {
		if m, ok := n.(*Mesh); ok {
			meshes = append(meshes, m)
		}
	})
	return meshes
}

// Lights returns every visible point light in traversal order.
func (s *Scene) Lights() []*PointLight {
	var lights []*PointLight
	Traverse(s, func(n Node) {
		if l, ok := n.(*PointLight); ok {
			lights = append(lights, l)
		}
	})
	return lights
}
