// Package math provides the vector, matrix and rotation types used by the scene graph.
package math

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// One returns the unit scale vector (1, 1, 1).
func One() Vec3 {
	return Vec3{1, 1, 1}
}

// Array returns the components as an array, the layout used for GPU uploads.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
