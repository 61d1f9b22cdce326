// Package attach builds nozzle and lifting-lug meshes in a canonical local
// frame and places them onto the vessel surface: translate to the forward
// transform's point, rotate the local outward axis onto the surface normal.
package attach

import (
	"github.com/vesselworks/vesselview/internal/engine/mesh"
	"github.com/vesselworks/vesselview/internal/vessel"
	"github.com/vesselworks/vesselview/pkg/math"
)

// localUp is the canonical outward axis of every attachment's local frame.
// Meshes are built extending along +Y with their base at the local origin.
var localUp = math.Vec3{Y: 1}

// neckSegments is the radial resolution of nozzle necks and flanges.
const neckSegments = 24

// NozzleParts holds the two meshes a nozzle is made of. They are tagged as
// separate scene nodes under one logical attachment so a ray hit on either
// resolves to the same index.
type NozzleParts struct {
	Neck   *mesh.Mesh
	Flange *mesh.Mesh
}

// BuildNozzle returns the nozzle meshes placed on the vessel surface.
// Out-of-catalog bores snap to the nearest entry silently.
func BuildNozzle(s vessel.Spec, n vessel.NozzleSpec) NozzleParts {
	dims := vessel.NearestBore(n.Bore)

	neck := mesh.CylinderY(dims.OD/2, 0, dims.Standoff, neckSegments, false, false)
	flange := mesh.CylinderY(dims.FlangeOD/2, dims.Standoff, dims.Standoff+dims.FlangeThk,
		neckSegments, true, true)

	place(s, n.Pos, n.Angle, neck, flange)
	return NozzleParts{Neck: neck, Flange: flange}
}

// BuildLug returns a lifting-lug plate placed on the vessel surface. The
// plate stands its Height radially outward, Width along the vessel axis.
func BuildLug(s vessel.Spec, l vessel.LugSpec) *mesh.Mesh {
	plate := mesh.Box(
		math.Vec3{Y: l.Height / 2},
		math.Vec3{X: l.Width, Y: l.Height, Z: l.Thick},
	)
	place(s, l.Pos, l.Angle, plate)
	return plate
}

// place bakes the surface placement into the given local-frame meshes:
// a minimal rotation mapping localUp onto the surface normal, then a
// translation to the surface point. Roll about the normal is whatever the
// shortest-arc rotation produces.
func place(s vessel.Spec, pos, angle float32, meshes ...*mesh.Mesh) {
	point, normal := vessel.SurfacePoint(s, pos, angle)
	rot := math.RotationBetween(localUp, normal)
	for _, m := range meshes {
		mesh.Transform(m, rot, point)
	}
}
