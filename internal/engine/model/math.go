package model

import gomath "math"

// normalize returns a unit vector in the same direction as v.
// Degenerate input yields +Y.
func normalize(v [3]float32) [3]float32 {
	length := float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if length < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / length, v[1] / length, v[2] / length}
}

func sincos(theta float64) (float32, float32) {
	s, c := gomath.Sincos(theta)
	return float32(s), float32(c)
}
