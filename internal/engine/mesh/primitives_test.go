package mesh

import (
	gomath "math"
	"testing"

	"github.com/vesselworks/vesselview/pkg/math"
)

func TestCylinderYWallRadius(t *testing.T) {
	m := CylinderY(50, 0, 200, 16, false, false)
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d not a triangle list", len(m.Indices))
	}
	for i, v := range m.Vertices {
		r := gomath.Hypot(float64(v.Position[0]), float64(v.Position[2]))
		if gomath.Abs(r-50) > 0.001 {
			t.Errorf("vertex %d radius %v, want 50", i, r)
		}
		if v.Position[1] < 0 || v.Position[1] > 200 {
			t.Errorf("vertex %d height %v out of [0,200]", i, v.Position[1])
		}
		if v.Normal[1] != 0 {
			t.Errorf("wall normal %d has axial component %v", i, v.Normal[1])
		}
	}
}

func TestCylinderYCaps(t *testing.T) {
	open := CylinderY(50, 0, 200, 16, false, false)
	capped := CylinderY(50, 0, 200, 16, true, true)
	if len(capped.Vertices) <= len(open.Vertices) {
		t.Errorf("caps added no vertices: %d vs %d", len(capped.Vertices), len(open.Vertices))
	}
	// Two fans of `segments` triangles each.
	wantExtra := 2 * 16 * 3
	if got := len(capped.Indices) - len(open.Indices); got != wantExtra {
		t.Errorf("cap indices = %d, want %d", got, wantExtra)
	}
}

func TestBoxBounds(t *testing.T) {
	m := Box(math.Vec3{X: 10, Y: -5, Z: 0}, math.Vec3{X: 4, Y: 6, Z: 8})
	if m.TriangleCount() != 12 {
		t.Errorf("box has %d triangles, want 12", m.TriangleCount())
	}
	wantMin := [3]float32{8, -8, -4}
	wantMax := [3]float32{12, -2, 4}
	if m.Bounds.Min != wantMin || m.Bounds.Max != wantMax {
		t.Errorf("bounds = %v..%v, want %v..%v", m.Bounds.Min, m.Bounds.Max, wantMin, wantMax)
	}
}

func TestGridLines(t *testing.T) {
	m := GridLines(100, 25, -10)
	if m.Primitive != Lines {
		t.Fatal("grid should be a line list")
	}
	if len(m.Indices)%2 != 0 {
		t.Errorf("line index count %d not even", len(m.Indices))
	}
	// 9 lines each direction for extent 100 step 25.
	if want := 2 * 9 * 2; len(m.Indices) != want {
		t.Errorf("grid index count = %d, want %d", len(m.Indices), want)
	}
	for i, v := range m.Vertices {
		if v.Position[1] != -10 {
			t.Errorf("grid vertex %d not at plane height: %v", i, v.Position[1])
		}
	}
}

func TestTransformBakesRotationAndTranslation(t *testing.T) {
	m := CylinderY(10, 0, 100, 8, false, false)
	// Rotate local +Y onto +X, then move to (500,0,0).
	rot := math.RotationBetween(math.Vec3{Y: 1}, math.Vec3{X: 1})
	Transform(m, rot, math.Vec3{X: 500})

	for i, v := range m.Vertices {
		if v.Position[0] < 500-0.01 || v.Position[0] > 600+0.01 {
			t.Errorf("vertex %d X = %v, want within [500,600]", i, v.Position[0])
		}
		// Wall normals must now be perpendicular to +X.
		if gomath.Abs(float64(v.Normal[0])) > 1e-3 {
			t.Errorf("vertex %d normal X = %v, want 0", i, v.Normal[0])
		}
	}
}

func TestMerge(t *testing.T) {
	a := Box(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	b := Box(math.Vec3{X: 10}, math.Vec3{X: 1, Y: 1, Z: 1})
	na, nb := len(a.Vertices), len(b.Vertices)
	ia := len(a.Indices)
	Merge(a, b)
	if len(a.Vertices) != na+nb {
		t.Errorf("merged vertex count %d, want %d", len(a.Vertices), na+nb)
	}
	for _, idx := range a.Indices[ia:] {
		if int(idx) < na {
			t.Fatalf("merged index %d not offset", idx)
		}
	}
}
