package model

import gomath "math"

// CylinderOptions describes a cylinder around the Y axis, centered on the origin.
type CylinderOptions struct {
	RadiusTop      float32
	RadiusBottom   float32
	Height         float32
	RadialSegments int
	HeightSegments int
	// OpenEnded skips the top and bottom caps.
	OpenEnded bool
}

// BuildCylinder generates cylinder geometry.
//
// The side surface maps U around the circumference starting at +Z and V from
// the bottom (0) to the top (1), so a texture wraps exactly once around the
// cylinder.
func BuildCylinder(opts CylinderOptions) *Mesh {
	radial := opts.RadialSegments
	if radial < 3 {
		radial = 3
	}
	rows := opts.HeightSegments
	if rows < 1 {
		rows = 1
	}

	m := &Mesh{Bounds: emptyBounds()}
	halfHeight := opts.Height / 2
	slope := float32(0)
	if opts.Height != 0 {
		slope = (opts.RadiusBottom - opts.RadiusTop) / opts.Height
	}

	// Side surface: (rows+1) x (radial+1) grid, the seam column is duplicated
	// so U can run from 0 to 1.
	grid := make([][]uint32, rows+1)
	for y := 0; y <= rows; y++ {
		v := float32(y) / float32(rows)
		radius := v*(opts.RadiusBottom-opts.RadiusTop) + opts.RadiusTop
		grid[y] = make([]uint32, radial+1)

		for x := 0; x <= radial; x++ {
			u := float32(x) / float32(radial)
			sin, cos := sincos(float64(u) * 2 * gomath.Pi)

			pos := [3]float32{radius * sin, -v*opts.Height + halfHeight, radius * cos}
			updateBounds(&m.Bounds, pos)

			grid[y][x] = uint32(len(m.Vertices))
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   normalize([3]float32{sin, slope, cos}),
				TexCoord: [2]float32{u, 1 - v},
			})
		}
	}

	for x := 0; x < radial; x++ {
		for y := 0; y < rows; y++ {
			a := grid[y][x]
			b := grid[y+1][x]
			c := grid[y+1][x+1]
			d := grid[y][x+1]
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}

	if !opts.OpenEnded {
		if opts.RadiusTop > 0 {
			buildCap(m, radial, opts.RadiusTop, halfHeight, true)
		}
		if opts.RadiusBottom > 0 {
			buildCap(m, radial, opts.RadiusBottom, halfHeight, false)
		}
	}

	return m
}

// buildCap adds a triangle fan closing the top or bottom of the cylinder.
func buildCap(m *Mesh, radial int, radius, halfHeight float32, top bool) {
	sign := float32(-1)
	if top {
		sign = 1
	}
	normal := [3]float32{0, sign, 0}

	// One center vertex per segment keeps UVs of the fan independent.
	centerStart := uint32(len(m.Vertices))
	for x := 1; x <= radial; x++ {
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{0, halfHeight * sign, 0},
			Normal:   normal,
			TexCoord: [2]float32{0.5, 0.5},
		})
	}

	ringStart := uint32(len(m.Vertices))
	for x := 0; x <= radial; x++ {
		u := float32(x) / float32(radial)
		sin, cos := sincos(float64(u) * 2 * gomath.Pi)
		pos := [3]float32{radius * sin, halfHeight * sign, radius * cos}
		updateBounds(&m.Bounds, pos)

		m.Vertices = append(m.Vertices, Vertex{
			Position: pos,
			Normal:   normal,
			TexCoord: [2]float32{cos*0.5 + 0.5, sin*0.5*sign + 0.5},
		})
	}

	for x := uint32(0); x < uint32(radial); x++ {
		c := centerStart + x
		i := ringStart + x
		if top {
			m.Indices = append(m.Indices, i, i+1, c)
		} else {
			m.Indices = append(m.Indices, i+1, i, c)
		}
	}
}
