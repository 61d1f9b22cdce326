package picking

import (
	gomath "math"
	"testing"

	"github.com/vesselworks/vesselview/internal/engine/mesh"
	"github.com/vesselworks/vesselview/pkg/math"
)

const eps = 1e-3

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < eps
}

func TestScreenToRayCenter(t *testing.T) {
	proj := math.Perspective(gomath.Pi/4, 800.0/600.0, 0.1, 100000)
	view := math.LookAt(
		math.Vec3{Z: 5000},
		math.Vec3{},
		math.Vec3{Y: 1},
	)
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(400, 300, 800, 600, inv)

	// A center-screen ray must run straight down -Z toward the target.
	if !near(r.Direction.X, 0) || !near(r.Direction.Y, 0) || r.Direction.Z >= 0 {
		t.Errorf("center ray direction = %+v, want -Z", r.Direction)
	}
	if !near(r.Direction.Length(), 1) {
		t.Errorf("direction not normalized: length = %f", r.Direction.Length())
	}
}

func TestScreenToRayOffCenter(t *testing.T) {
	proj := math.Perspective(gomath.Pi/4, 1.0, 0.1, 100000)
	view := math.LookAt(
		math.Vec3{Z: 5000},
		math.Vec3{},
		math.Vec3{Y: 1},
	)
	inv := proj.Mul(view).Inverse()

	right := ScreenToRay(600, 300, 800, 600, inv)
	if right.Direction.X <= 0 {
		t.Errorf("ray right of center should point +X, got %+v", right.Direction)
	}
	up := ScreenToRay(400, 150, 800, 600, inv)
	if up.Direction.Y <= 0 {
		t.Errorf("ray above center should point +Y, got %+v", up.Direction)
	}
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{
		Origin:    math.Vec3{X: 100, Y: 2000, Z: 50},
		Direction: math.Vec3{Y: -1},
	}
	p, ok := r.IntersectPlaneY(-1000)
	if !ok {
		t.Fatal("expected hit on plane")
	}
	if !near(p.X, 100) || !near(p.Y, -1000) || !near(p.Z, 50) {
		t.Errorf("plane hit = %+v", p)
	}

	// Parallel ray misses.
	flat := Ray{Origin: math.Vec3{Y: 10}, Direction: math.Vec3{X: 1}}
	if _, ok := flat.IntersectPlaneY(0); ok {
		t.Error("parallel ray should not hit the plane")
	}

	// Plane behind the origin misses.
	away := Ray{Origin: math.Vec3{Y: 10}, Direction: math.Vec3{Y: 1}}
	if _, ok := away.IntersectPlaneY(0); ok {
		t.Error("plane behind origin should not hit")
	}
}

func TestIntersectAABB(t *testing.T) {
	b := mesh.Bounds{
		Min: [3]float32{-100, -100, -100},
		Max: [3]float32{100, 100, 100},
	}

	r := Ray{Origin: math.Vec3{Z: 500}, Direction: math.Vec3{Z: -1}}
	tt, hit := r.IntersectAABB(b)
	if !hit || !near(tt, 400) {
		t.Errorf("front hit: t = %f, hit = %v, want 400", tt, hit)
	}

	miss := Ray{Origin: math.Vec3{X: 500, Z: 500}, Direction: math.Vec3{Z: -1}}
	if _, hit := miss.IntersectAABB(b); hit {
		t.Error("offset ray should miss the box")
	}

	// Origin inside the box still reports a hit.
	inside := Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}
	if _, hit := inside.IntersectAABB(b); !hit {
		t.Error("ray from inside should hit")
	}
}

func TestIntersectTriangle(t *testing.T) {
	v0 := math.Vec3{X: -100, Y: -100}
	v1 := math.Vec3{X: 100, Y: -100}
	v2 := math.Vec3{Y: 100}

	r := Ray{Origin: math.Vec3{Z: 50}, Direction: math.Vec3{Z: -1}}
	tt, hit := r.IntersectTriangle(v0, v1, v2)
	if !hit || !near(tt, 50) {
		t.Errorf("triangle hit: t = %f, hit = %v, want 50", tt, hit)
	}

	// Backface hit still counts.
	back := Ray{Origin: math.Vec3{Z: -50}, Direction: math.Vec3{Z: 1}}
	if _, hit := back.IntersectTriangle(v0, v1, v2); !hit {
		t.Error("backface should still hit")
	}

	outside := Ray{Origin: math.Vec3{X: 300, Z: 50}, Direction: math.Vec3{Z: -1}}
	if _, hit := outside.IntersectTriangle(v0, v1, v2); hit {
		t.Error("ray outside the triangle should miss")
	}

	parallel := Ray{Origin: math.Vec3{Z: 50}, Direction: math.Vec3{X: 1}}
	if _, hit := parallel.IntersectTriangle(v0, v1, v2); hit {
		t.Error("ray parallel to the plane should miss")
	}
}

func TestIntersectMeshNearest(t *testing.T) {
	// Two quads facing +Z at z = 0 and z = -200; the nearer wins.
	m := &mesh.Mesh{Primitive: mesh.Triangles}
	addQuad := func(z float32) {
		base := uint32(len(m.Vertices))
		for _, p := range [][3]float32{
			{-100, -100, z}, {100, -100, z}, {100, 100, z}, {-100, 100, z},
		} {
			m.Vertices = append(m.Vertices, mesh.Vertex{Position: p})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	addQuad(0)
	addQuad(-200)
	m.RecomputeBounds()

	r := Ray{Origin: math.Vec3{Z: 300}, Direction: math.Vec3{Z: -1}}
	tt, hit := r.IntersectMesh(m)
	if !hit || !near(tt, 300) {
		t.Errorf("nearest hit: t = %f, hit = %v, want 300", tt, hit)
	}

	miss := Ray{Origin: math.Vec3{X: 5000, Z: 300}, Direction: math.Vec3{Z: -1}}
	if _, hit := miss.IntersectMesh(m); hit {
		t.Error("ray outside mesh bounds should miss")
	}

	lines := &mesh.Mesh{Primitive: mesh.Lines}
	if _, hit := r.IntersectMesh(lines); hit {
		t.Error("line meshes are never pickable")
	}
}
