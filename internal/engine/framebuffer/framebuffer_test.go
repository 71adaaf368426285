package framebuffer

import "testing"

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		scale         float64
		wantW, wantH  int
	}{
		{"identity", 1280, 720, 1, 1280, 720},
		{"double", 1280, 720, 2, 2560, 1440},
		{"half rounds", 801, 601, 0.5, 401, 301},
		{"zero scale", 640, 480, 0, 640, 480},
		{"negative scale", 640, 480, -2, 640, 480},
		{"empty", 0, 0, 2, 1, 1},
		{"clamped", 10000, 5000, 4, MaxSize, MaxSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaledSize(tt.width, tt.height, tt.scale)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ScaledSize(%d, %d, %v) = %dx%d, want %dx%d",
					tt.width, tt.height, tt.scale, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
