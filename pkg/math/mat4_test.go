package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	if got := m.Position(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translate position: got %v, want (5, 10, 15)", got)
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{0, 1, 0})

	// (0,1,0) turns towards +Z
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]-1) > 0.001 {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", result)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveAspect(t *testing.T) {
	square := Perspective(float32(math.Pi/4), 1, 1, 1000)
	wide := Perspective(float32(math.Pi/4), 2, 1, 1000)

	if abs(wide[0]*2-square[0]) > 0.0001 {
		t.Errorf("doubling aspect should halve [0]: square=%f wide=%f", square[0], wide[0])
	}
	if wide[5] != square[5] {
		t.Errorf("aspect must not change [5]: square=%f wide=%f", square[5], wide[5])
	}
}

func TestInverse(t *testing.T) {
	m := Compose(Vec3{3, -4, 5}, Euler{X: 0.3, Y: 1.1, Z: -0.7}, Vec3{2, 2, 2})
	result := m.Mul(m.Inverse())
	id := Identity()

	for i := 0; i < 16; i++ {
		if abs(result[i]-id[i]) > 0.0001 {
			t.Fatalf("M * M^-1 element %d: got %f, want %f", i, result[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if got := Scale(0, 1, 1).Inverse(); got != Identity() {
		t.Errorf("singular inverse should fall back to identity, got %v", got)
	}
}

func TestNormalMatrixRotation(t *testing.T) {
	// For a pure rotation the normal matrix equals the rotation itself.
	r := RotateZ(0.8)
	n := r.NormalMatrix()
	want := [9]float32{r[0], r[1], r[2], r[4], r[5], r[6], r[8], r[9], r[10]}

	for i := range n {
		if abs(n[i]-want[i]) > 0.0001 {
			t.Errorf("NormalMatrix[%d]: got %f, want %f", i, n[i], want[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
