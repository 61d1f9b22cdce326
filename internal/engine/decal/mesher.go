package decal

import (
	"image"

	"github.com/vesselworks/vesselview/internal/engine/mesh"
	"github.com/vesselworks/vesselview/internal/vessel"
	"github.com/vesselworks/vesselview/pkg/math"
)

const (
	// surfaceOffset lifts decal vertices off the shell so the decal never
	// z-fights the surface it conforms to.
	surfaceOffset = 3.0 // mm

	// curvatureCompensation expands the decal height: a flat image height
	// maps to an arc length, not a chord, and without the expansion the
	// decal looks compressed circumferentially.
	curvatureCompensation = 1.15

	// baseSize is the decal height in mm at scale factor 1.
	baseSize = 500.0

	// Grid density: one segment per segmentSpan mm of decal extent,
	// clamped so small decals still curve smoothly and huge ones stay cheap.
	segmentSpan = 50.0
	minSegments = 8
	maxSegments = 64

	// Highlight overlay: slightly larger and further off the surface than
	// the decal it outlines.
	highlightGrow   = 1.08
	highlightOffset = 4.5 // mm
)

// Size returns the decal's physical extent in mm: width along the vessel
// axis, height along the circumference. Width carries the image aspect
// ratio (swapped when the decal is rotated 90/270) and height the fixed
// curvature compensation. img may be nil; the aspect then defaults to 1.
func Size(d vessel.DecalSpec, img image.Image) (width, height float32) {
	aspect := float32(1)
	if img != nil {
		b := img.Bounds()
		if b.Dy() > 0 {
			aspect = float32(b.Dx()) / float32(b.Dy())
		}
	}
	if d.Rotation == 90 || d.Rotation == 270 {
		if aspect != 0 {
			aspect = 1 / aspect
		}
	}

	width = baseSize * d.ScaleW * aspect
	height = baseSize * d.ScaleH * curvatureCompensation
	return width, height
}

// segmentsFor picks the grid resolution for one side of the decal.
func segmentsFor(extent float32) int {
	n := int(extent / segmentSpan)
	if n < minSegments {
		return minSegments
	}
	if n > maxSegments {
		return maxSegments
	}
	return n
}

// Build returns the surface-conforming grid mesh for the decal. Every grid
// vertex is a parametric offset from the decal center passed through the
// vessel forward transform, then pushed out along the local normal.
func Build(s vessel.Spec, d vessel.DecalSpec, img image.Image) *mesh.Mesh {
	w, h := Size(d, img)
	return buildGrid(s, d, w, h, surfaceOffset)
}

// BuildHighlight returns the enlarged flat-tint overlay drawn when the decal
// is the active selection.
func BuildHighlight(s vessel.Spec, d vessel.DecalSpec, img image.Image) *mesh.Mesh {
	w, h := Size(d, img)
	return buildGrid(s, d, w*highlightGrow, h*highlightGrow, highlightOffset)
}

func buildGrid(s vessel.Spec, d vessel.DecalSpec, width, height, offset float32) *mesh.Mesh {
	nx := segmentsFor(width)
	ny := segmentsFor(height)

	m := &mesh.Mesh{Primitive: mesh.Triangles}
	for j := 0; j <= ny; j++ {
		fv := float32(j) / float32(ny)
		arc := (fv - 0.5) * height
		dAngle := vessel.ArcToDegrees(s, arc)
		for i := 0; i <= nx; i++ {
			fu := float32(i) / float32(nx)
			dPos := (fu - 0.5) * width

			p, n := vessel.SurfacePoint(s, d.Pos+dPos, d.Angle+dAngle)
			p = p.Add(n.Scale(offset))

			uv := TransformUV(math.Vec2{X: fu, Y: 1 - fv}, d.FlipH, d.FlipV, d.Rotation)
			m.Vertices = append(m.Vertices, mesh.Vertex{
				Position: p.Array(),
				Normal:   n.Array(),
				TexCoord: uv.Array(),
			})
		}
	}

	row := uint32(nx + 1)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			b := uint32(j)*row + uint32(i)
			m.Indices = append(m.Indices,
				b, b+row, b+1,
				b+1, b+row, b+row+1,
			)
		}
	}

	m.RecomputeBounds()
	return m
}
