package math

import (
	"math"
	"testing"
)

func TestVec3Array(t *testing.T) {
	if got := (Vec3{-200, 50, 100}).Array(); got != [3]float32{-200, 50, 100} {
		t.Errorf("Vec3.Array() = %v", got)
	}
	if One() != (Vec3{1, 1, 1}) {
		t.Errorf("One() = %v", One())
	}
}

func TestTranslatedPosition(t *testing.T) {
	m := Compose(Vec3{-200, 50, 100}, Euler{}, One())
	if got := m.Position().Array(); got != [3]float32{-200, 50, 100} {
		t.Errorf("Position() = %v, want (-200, 50, 100)", got)
	}
}

func TestEulerZeroIsIdentity(t *testing.T) {
	if got := (Euler{}).Matrix(); got != Identity() {
		t.Errorf("zero Euler matrix = %v, want identity", got)
	}
}

func TestEulerOrder(t *testing.T) {
	// XYZ order: Z is applied first, then Y, then X.
	e := Euler{X: float32(math.Pi / 2), Z: float32(math.Pi / 2)}
	p := e.Matrix().TransformPoint([3]float32{1, 0, 0})

	// Rz(90): (1,0,0) -> (0,1,0); Rx(90): (0,1,0) -> (0,0,1)
	if abs(p[0]) > 0.001 || abs(p[1]) > 0.001 || abs(p[2]-1) > 0.001 {
		t.Errorf("Euler XYZ: got %v, want (0, 0, 1)", p)
	}
}

func TestCompose(t *testing.T) {
	m := Compose(Vec3{0, 50, 0}, Euler{Y: float32(math.Pi)}, One())
	p := m.TransformPoint([3]float32{150, 0, 0})

	if abs(p[0]+150) > 0.01 || abs(p[1]-50) > 0.01 || abs(p[2]) > 0.01 {
		t.Errorf("Compose: got %v, want (-150, 50, 0)", p)
	}
}
