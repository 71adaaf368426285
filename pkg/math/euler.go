package math

// Euler is a rotation expressed as angles in radians around X, Y and Z,
// applied in XYZ order (the matrix is Rx * Ry * Rz).
//
// A *Euler is the rotation handle the animation system writes to: tweens
// target the address of one of its components.
type Euler struct {
	X, Y, Z float32
}

// Matrix returns the rotation matrix for e.
func (e Euler) Matrix() Mat4 {
	return RotateX(e.X).Mul(RotateY(e.Y)).Mul(RotateZ(e.Z))
}

// Compose builds a model matrix from translation, rotation and scale (T * R * S).
func Compose(position Vec3, rotation Euler, scale Vec3) Mat4 {
	m := Translate(position.X, position.Y, position.Z)
	m = m.Mul(rotation.Matrix())
	return m.Mul(Scale(scale.X, scale.Y, scale.Z))
}
