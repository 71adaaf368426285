// Package scene provides a small retained scene graph: objects with
// position, rotation and scale arranged in a parent/child hierarchy,
// meshes with materials, and point lights.
//
// The graph holds no GPU state; renderers walk it each frame.
package scene

import "github.com/Faultbox/ringspin/pkg/math"

// Node is anything that can be placed in the scene graph.
type Node interface {
	object() *Object
}

// Object is a transform node. Meshes and lights embed it.
type Object struct {
	Name     string
	Position math.Vec3
	Rotation math.Euler
	Scale    math.Vec3
	Visible  bool

	parent   *Object
	children []Node
}

// NewObject creates an empty, visible transform node.
func NewObject(name string) *Object {
	o := &Object{}
	o.init(name)
	return o
}

func (o *Object) init(name string) {
	o.Name = name
	o.Scale = math.One()
	o.Visible = true
}

func (o *Object) object() *Object { return o }

// Add attaches n as the last child of o, detaching it from any previous parent.
func (o *Object) Add(n Node) {
	child := n.object()
	if child.parent != nil {
		child.parent.Remove(n)
	}
	child.parent = o
	o.children = append(o.children, n)
}

// Remove detaches n from o. It is a no-op if n is not a child of o.
func (o *Object) Remove(n Node) {
	child := n.object()
	for i, c := range o.children {
		if c.object() == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Children returns the direct children in insertion order.
func (o *Object) Children() []Node {
	return o.children
}

// Parent returns the parent transform, or nil for a root.
func (o *Object) Parent() *Object {
	return o.parent
}

// LocalMatrix returns the transform relative to the parent.
func (o *Object) LocalMatrix() math.Mat4 {
	return math.Compose(o.Position, o.Rotation, o.Scale)
}

// WorldMatrix returns the transform relative to the scene root.
func (o *Object) WorldMatrix() math.Mat4 {
	m := o.LocalMatrix()
	for p := o.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// Traverse calls fn for n and every visible descendant, depth first.
// Invisible subtrees are skipped.
func Traverse(n Node, fn func(Node)) {
	o := n.object()
	if !o.Visible {
		return
	}
	fn(n)
	for _, c := range o.children {
		Traverse(c, fn)
	}
}
