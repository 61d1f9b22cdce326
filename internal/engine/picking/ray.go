// Package picking provides ray construction and ray/geometry intersection
// for pointer hit-testing.
package picking

import (
	gomath "math"

	"github.com/vesselworks/vesselview/internal/engine/mesh"
	"github.com/vesselworks/vesselview/pkg/math"
)

// Ray is a ray in world space with normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts pointer pixel coordinates to a world-space ray.
// screenX, screenY are pixels within the viewport, viewportW/H its size,
// invViewProj the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Normalized device coordinates (-1..1), Y flipped.
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH

	nearPoint := math.Vec4{ndcX, ndcY, -1.0, 1.0}
	farPoint := math.Vec4{ndcX, ndcY, 1.0, 1.0}

	nearWorld := invViewProj.MulVec4(nearPoint)
	farWorld := invViewProj.MulVec4(farPoint)

	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir := math.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}.Normalize()

	return Ray{Origin: origin, Direction: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane at the given
// Y level. Used for saddle drags, which slide on a fixed rest plane.
func (r Ray) IntersectPlaneY(planeY float32) (point math.Vec3, ok bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 1e-5 {
		return math.Vec3{}, false // parallel to the plane
	}
	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false // behind the origin
	}
	return r.At(t), true
}

// IntersectAABB tests the ray against an axis-aligned box using the slab
// method. Returns the entry distance (exit distance if the origin is
// inside) and whether the box is hit.
func (r Ray) IntersectAABB(b mesh.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (b.Min[axis] - origin[axis]) / dir[axis]
			t2 := (b.Max[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin[axis] < b.Min[axis] || origin[axis] > b.Max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// triEpsilon rejects rays parallel to a triangle's plane.
const triEpsilon = 1e-7

// IntersectTriangle runs the Moller-Trumbore test against one triangle.
// Backfaces count as hits; the shell is viewed from outside and in.
func (r Ray) IntersectTriangle(v0, v1, v2 math.Vec3) (t float32, hit bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -triEpsilon && det < triEpsilon {
		return 0, false
	}
	invDet := 1 / det

	tv := r.Origin.Sub(v0)
	u := tv.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := tv.Cross(e1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * invDet
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectMesh returns the nearest triangle hit on a triangle-list mesh.
// The mesh bounds prune whole meshes before any triangle test runs.
func (r Ray) IntersectMesh(m *mesh.Mesh) (t float32, hit bool) {
	if m == nil || m.Primitive != mesh.Triangles {
		return 0, false
	}
	if _, ok := r.IntersectAABB(m.Bounds); !ok {
		return 0, false
	}

	best := float32(gomath.MaxFloat32)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		v0 := math.FromArray(m.Vertices[m.Indices[i]].Position)
		v1 := math.FromArray(m.Vertices[m.Indices[i+1]].Position)
		v2 := math.FromArray(m.Vertices[m.Indices[i+2]].Position)
		if tt, ok := r.IntersectTriangle(v0, v1, v2); ok && tt < best {
			best = tt
			hit = true
		}
	}
	if !hit {
		return 0, false
	}
	return best, true
}
