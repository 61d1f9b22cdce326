package mesh

import "github.com/vesselworks/vesselview/pkg/math"

// Transform bakes a rigid transform into the mesh: rotate every position and
// normal by rot, then translate positions. Bounds are recomputed.
func Transform(m *Mesh, rot math.Quat, translate math.Vec3) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		p := rot.Rotate(math.FromArray(v.Position)).Add(translate)
		n := rot.Rotate(math.FromArray(v.Normal))
		v.Position = p.Array()
		v.Normal = n.Array()
	}
	m.RecomputeBounds()
}

// Merge appends src's geometry into dst, offsetting indices.
func Merge(dst, src *Mesh) {
	base := uint32(len(dst.Vertices))
	dst.Vertices = append(dst.Vertices, src.Vertices...)
	for _, idx := range src.Indices {
		dst.Indices = append(dst.Indices, base+idx)
	}
	dst.RecomputeBounds()
}
