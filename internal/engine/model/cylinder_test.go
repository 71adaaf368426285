package model

import (
	gomath "math"
	"testing"
)

func ringOptions() CylinderOptions {
	return CylinderOptions{
		RadiusTop:      150,
		RadiusBottom:   150,
		Height:         50,
		RadialSegments: 32,
		HeightSegments: 1,
		OpenEnded:      true,
	}
}

func TestBuildCylinderOpenEndedCounts(t *testing.T) {
	m := BuildCylinder(ringOptions())

	if got, want := len(m.Vertices), 33*2; got != want {
		t.Errorf("vertex count: got %d, want %d", got, want)
	}
	if got, want := len(m.Indices), 32*6; got != want {
		t.Errorf("index count: got %d, want %d", got, want)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}
}

func TestBuildCylinderWithCaps(t *testing.T) {
	opts := ringOptions()
	opts.OpenEnded = false
	m := BuildCylinder(opts)

	// side + 2 caps of (32 centers + 33 ring vertices)
	if got, want := len(m.Vertices), 66+2*(32+33); got != want {
		t.Errorf("vertex count: got %d, want %d", got, want)
	}
	if got, want := len(m.Indices), 32*6+2*32*3; got != want {
		t.Errorf("index count: got %d, want %d", got, want)
	}
}

func TestBuildCylinderRadiusAndBounds(t *testing.T) {
	m := BuildCylinder(ringOptions())

	for i, v := range m.Vertices {
		r := gomath.Hypot(float64(v.Position[0]), float64(v.Position[2]))
		if gomath.Abs(r-150) > 0.01 {
			t.Fatalf("vertex %d radius: got %f, want 150", i, r)
		}
		if y := v.Position[1]; y != 25 && y != -25 {
			t.Fatalf("vertex %d height: got %f, want +-25", i, y)
		}
		if v.Normal[1] != 0 {
			t.Fatalf("vertex %d normal should be horizontal for a straight cylinder, got %v", i, v.Normal)
		}
	}

	if m.Bounds.Min[1] != -25 || m.Bounds.Max[1] != 25 {
		t.Errorf("Y bounds: got [%f, %f], want [-25, 25]", m.Bounds.Min[1], m.Bounds.Max[1])
	}
	if gomath.Abs(float64(m.Bounds.Max[0]-150)) > 0.01 {
		t.Errorf("X max bound: got %f, want 150", m.Bounds.Max[0])
	}
}

func TestBuildCylinderTexCoords(t *testing.T) {
	m := BuildCylinder(ringOptions())

	top := m.Vertices[0]
	if top.TexCoord != [2]float32{0, 1} {
		t.Errorf("first top vertex UV: got %v, want (0, 1)", top.TexCoord)
	}
	// seam: first and last column share a position but not a U
	last := m.Vertices[32]
	if last.TexCoord[0] != 1 {
		t.Errorf("seam vertex U: got %f, want 1", last.TexCoord[0])
	}
	if gomath.Abs(float64(last.Position[0]-top.Position[0])) > 0.01 ||
		gomath.Abs(float64(last.Position[2]-top.Position[2])) > 0.01 {
		t.Errorf("seam vertex should coincide with the first: %v vs %v", last.Position, top.Position)
	}
	bottom := m.Vertices[33]
	if bottom.TexCoord[1] != 0 {
		t.Errorf("bottom row V: got %f, want 0", bottom.TexCoord[1])
	}
}

func TestBuildCylinderClampsSegments(t *testing.T) {
	m := BuildCylinder(CylinderOptions{RadiusTop: 1, RadiusBottom: 1, Height: 1, OpenEnded: true})

	if got, want := len(m.Vertices), 4*2; got != want {
		t.Errorf("vertex count with clamped segments: got %d, want %d", got, want)
	}
}
