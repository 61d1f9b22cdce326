package mesh

import (
	gomath "math"

	"github.com/vesselworks/vesselview/pkg/math"
)

// CylinderY builds a cylinder in a local frame: axis along +Y from y0 to y1,
// given radius and radial segment count. capBottom/capTop close the ends with
// triangle fans. Used for nozzle necks and flanges before placement onto the
// vessel surface.
func CylinderY(radius, y0, y1 float32, segments int, capBottom, capTop bool) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{Primitive: Triangles}

	// Side wall: two rings of segments+1 vertices so UVs can wrap.
	for ring := 0; ring < 2; ring++ {
		y := y0
		if ring == 1 {
			y = y1
		}
		for i := 0; i <= segments; i++ {
			a := float64(i) / float64(segments) * 2 * gomath.Pi
			c := float32(gomath.Cos(a))
			s := float32(gomath.Sin(a))
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{radius * c, y, radius * s},
				Normal:   [3]float32{c, 0, s},
				TexCoord: [2]float32{float32(i) / float32(segments), float32(ring)},
			})
		}
	}
	for i := 0; i < segments; i++ {
		b := uint32(i)
		tRow := uint32(segments + 1)
		m.Indices = append(m.Indices,
			b, b+tRow, b+1,
			b+1, b+tRow, b+tRow+1,
		)
	}

	if capBottom {
		appendDisc(m, radius, y0, segments, false)
	}
	if capTop {
		appendDisc(m, radius, y1, segments, true)
	}

	m.RecomputeBounds()
	return m
}

// appendDisc adds a fan-capped disc at height y. up selects the +Y facing.
func appendDisc(m *Mesh, radius, y float32, segments int, up bool) {
	ny := float32(-1)
	if up {
		ny = 1
	}
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{
		Position: [3]float32{0, y, 0},
		Normal:   [3]float32{0, ny, 0},
		TexCoord: [2]float32{0.5, 0.5},
	})
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * gomath.Pi
		c := float32(gomath.Cos(a))
		s := float32(gomath.Sin(a))
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{radius * c, y, radius * s},
			Normal:   [3]float32{0, ny, 0},
			TexCoord: [2]float32{0.5 + c/2, 0.5 + s/2},
		})
	}
	for i := 0; i < segments; i++ {
		a := center + 1 + uint32(i)
		if up {
			m.Indices = append(m.Indices, center, a, a+1)
		} else {
			m.Indices = append(m.Indices, center, a+1, a)
		}
	}
}

// Box builds an axis-aligned box centered at center with full extents size.
func Box(center, size math.Vec3) *Mesh {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	c := center
	m := &Mesh{Primitive: Triangles}

	// Six faces, four vertices each, flat normals.
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}, {hx, -hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}, {-hx, -hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, -hz}, {-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, hz}, {-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
	}
	uvs := [4][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for i, corner := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{c.X + corner[0], c.Y + corner[1], c.Z + corner[2]},
				Normal:   f.normal,
				TexCoord: uvs[i],
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	m.RecomputeBounds()
	return m
}

// GridLines builds a ground-reference line grid on the XZ plane at height y,
// spanning [-extent, extent] with the given line step.
func GridLines(extent, step, y float32) *Mesh {
	m := &Mesh{Primitive: Lines}
	if step <= 0 {
		step = extent / 10
	}

	addLine := func(a, b [3]float32) {
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Position: a, Normal: [3]float32{0, 1, 0}},
			Vertex{Position: b, Normal: [3]float32{0, 1, 0}},
		)
		m.Indices = append(m.Indices, base, base+1)
	}

	for x := -extent; x <= extent+step/2; x += step {
		addLine([3]float32{x, y, -extent}, [3]float32{x, y, extent})
	}
	for z := -extent; z <= extent+step/2; z += step {
		addLine([3]float32{-extent, y, z}, [3]float32{extent, y, z})
	}
	m.RecomputeBounds()
	return m
}
