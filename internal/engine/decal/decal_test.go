package decal

import (
	"image"
	gomath "math"
	"testing"

	"github.com/vesselworks/vesselview/internal/vessel"
	"github.com/vesselworks/vesselview/pkg/math"
)

func testVessel() vessel.Spec {
	return vessel.Spec{ID: 2000, Length: 6000, HeadRatio: 2, Orientation: vessel.Horizontal}
}

func TestTransformUVIdentity(t *testing.T) {
	got := TransformUV(math.Vec2{X: 0.25, Y: 0.75}, false, false, 0)
	if got.X != 0.25 || got.Y != 0.75 {
		t.Errorf("identity transform moved uv: %v", got)
	}
}

func TestTransformUVFlips(t *testing.T) {
	got := TransformUV(math.Vec2{X: 0.25, Y: 0.75}, true, false, 0)
	if got.X != 0.75 || got.Y != 0.75 {
		t.Errorf("flipH: got %v, want (0.75, 0.75)", got)
	}
	got = TransformUV(math.Vec2{X: 0.25, Y: 0.75}, false, true, 0)
	if got.X != 0.25 || got.Y != 0.25 {
		t.Errorf("flipV: got %v, want (0.25, 0.25)", got)
	}
}

func TestTransformUVFlipBeforeRotate(t *testing.T) {
	// Flip-then-rotate differs from rotate-then-flip at 90 degrees; pin the
	// implemented order. Start at (0.25, 0.75): flipH -> (0.75, 0.75),
	// rotate 90 CCW -> (0.25, 0.75).
	got := TransformUV(math.Vec2{X: 0.25, Y: 0.75}, true, false, 90)
	if gomath.Abs(float64(got.X-0.25)) > 1e-6 || gomath.Abs(float64(got.Y-0.75)) > 1e-6 {
		t.Errorf("flip-before-rotate: got %v, want (0.25, 0.75)", got)
	}
	// Rotate-then-flip would give (0.75, 0.25) instead.
}

func TestTransformUVDoubleFlipSelfInverse(t *testing.T) {
	// With both flips set, applying the transform and then the transform
	// with negated rotation returns the original coordinate for every
	// rotation step.
	points := []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.25, Y: 0.75}, {X: 0.5, Y: 0.5}}
	for _, rot := range []int{0, 90, 180, 270} {
		for _, p := range points {
			mid := TransformUV(p, true, true, rot)
			got := TransformUV(mid, true, true, -rot)
			if gomath.Abs(float64(got.X-p.X)) > 1e-6 || gomath.Abs(float64(got.Y-p.Y)) > 1e-6 {
				t.Errorf("rot %d: round trip of %v gave %v", rot, p, got)
			}
		}
	}
}

func TestTransformUVNoFlipSelfInverse(t *testing.T) {
	p := math.Vec2{X: 0.1, Y: 0.9}
	for _, rot := range []int{0, 90, 180, 270} {
		mid := TransformUV(p, false, false, rot)
		got := TransformUV(mid, false, false, -rot)
		if gomath.Abs(float64(got.X-p.X)) > 1e-6 || gomath.Abs(float64(got.Y-p.Y)) > 1e-6 {
			t.Errorf("rot %d: round trip of %v gave %v", rot, p, got)
		}
	}
}

func TestSizeAspectAndCompensation(t *testing.T) {
	d := vessel.DecalSpec{ID: 1, Pos: 3000, Angle: 90, ScaleW: 1, ScaleH: 1}
	img := image.NewRGBA(image.Rect(0, 0, 200, 100)) // 2:1 aspect
	w, h := Size(d, img)
	if gomath.Abs(float64(w-1000)) > 0.01 {
		t.Errorf("width = %v, want 1000 (base 500 * aspect 2)", w)
	}
	if gomath.Abs(float64(h-575)) > 0.01 {
		t.Errorf("height = %v, want 575 (base 500 * 1.15)", h)
	}
}

func TestSizeRotationSwapsAspect(t *testing.T) {
	d := vessel.DecalSpec{ID: 1, ScaleW: 1, ScaleH: 1, Rotation: 90}
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	w, _ := Size(d, img)
	if gomath.Abs(float64(w-250)) > 0.01 {
		t.Errorf("rotated width = %v, want 250 (aspect inverted)", w)
	}
}

func TestBuildConformsWithOffset(t *testing.T) {
	s := testVessel()
	d := vessel.DecalSpec{ID: 7, Pos: 3000, Angle: 90, ScaleW: 1, ScaleH: 1}
	m := Build(s, d, nil)

	if len(m.Vertices) < (minSegments+1)*(minSegments+1) {
		t.Fatalf("grid too sparse: %d vertices", len(m.Vertices))
	}
	// Every vertex floats surfaceOffset above the shell. On the cylinder the
	// distance from the axis is exactly R + offset.
	for i, v := range m.Vertices {
		r := gomath.Hypot(float64(v.Position[1]), float64(v.Position[2]))
		if gomath.Abs(r-(1000+surfaceOffset)) > 0.01 {
			t.Errorf("vertex %d at radial distance %v, want %v", i, r, 1000+surfaceOffset)
		}
	}
}

func TestBuildHighlightLargerAndFurther(t *testing.T) {
	s := testVessel()
	d := vessel.DecalSpec{ID: 7, Pos: 3000, Angle: 90, ScaleW: 1, ScaleH: 1}
	hl := BuildHighlight(s, d, nil)

	for i, v := range hl.Vertices {
		r := gomath.Hypot(float64(v.Position[1]), float64(v.Position[2]))
		if gomath.Abs(r-(1000+highlightOffset)) > 0.01 {
			t.Errorf("highlight vertex %d at radial distance %v, want %v", i, r, 1000+highlightOffset)
		}
	}

	// Axial span of the highlight exceeds the decal's.
	base := Build(s, d, nil)
	baseSpan := base.Bounds.Max[0] - base.Bounds.Min[0]
	hlSpan := hl.Bounds.Max[0] - hl.Bounds.Min[0]
	if hlSpan <= baseSpan {
		t.Errorf("highlight span %v not larger than decal span %v", hlSpan, baseSpan)
	}
}

func TestBuildUntexturedDecal(t *testing.T) {
	// nil image: aspect defaults to 1 and the grid still builds.
	s := testVessel()
	d := vessel.DecalSpec{ID: 2, Pos: 1000, Angle: 180, ScaleW: 1, ScaleH: 1}
	m := Build(s, d, nil)
	if len(m.Indices) == 0 {
		t.Fatal("untextured decal built no triangles")
	}
}
