// Package mesh provides CPU-side triangle and line mesh types plus the
// primitive builders the scene assembler composes. Meshes are plain vertex
// and index slices ready for GPU upload; no GL calls happen here.
package mesh

// Vertex is one mesh vertex with the attributes the renderer uploads.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Primitive selects how indices are interpreted when drawing.
type Primitive int

const (
	// Triangles draws the index list as a triangle list.
	Triangles Primitive = iota
	// Lines draws the index list as a line list (grid, axes).
	Lines
)

// Mesh holds geometry in world coordinates (transforms are baked in at
// build time, so picking and rendering never deal with per-node matrices).
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Primitive Primitive
	Bounds    Bounds
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// emptyBounds returns bounds that any real point will shrink onto.
func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

// add grows the bounds to include p.
func (b *Bounds) add(p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// RecomputeBounds rebuilds the bounding box from the current vertices.
// Call after mutating positions.
func (m *Mesh) RecomputeBounds() {
	b := emptyBounds()
	for i := range m.Vertices {
		b.add(m.Vertices[i].Position)
	}
	m.Bounds = b
}

// TriangleCount returns the number of triangles in a triangle-list mesh.
func (m *Mesh) TriangleCount() int {
	if m.Primitive != Triangles {
		return 0
	}
	return len(m.Indices) / 3
}
