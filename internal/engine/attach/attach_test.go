package attach

import (
	gomath "math"
	"testing"

	"github.com/vesselworks/vesselview/internal/vessel"
)

func testVessel() vessel.Spec {
	return vessel.Spec{ID: 2000, Length: 6000, HeadRatio: 2, Orientation: vessel.Horizontal}
}

func TestBuildNozzleTopCenter(t *testing.T) {
	s := testVessel()
	parts := BuildNozzle(s, vessel.NozzleSpec{Pos: 3000, Angle: 90, Bore: 150})

	// Base of the neck sits on the shell at Y=1000, X=0, Z=0; the neck
	// extends straight up, so every vertex is at Y >= 1000 (caps none).
	for i, v := range parts.Neck.Vertices {
		if v.Position[1] < 1000-0.1 {
			t.Errorf("neck vertex %d below shell: Y=%v", i, v.Position[1])
		}
	}

	dims := vessel.NearestBore(150)
	// Flange face tops out at standoff + flange thickness above the shell.
	wantTop := 1000 + dims.Standoff + dims.FlangeThk
	top := parts.Flange.Bounds.Max[1]
	if gomath.Abs(float64(top-wantTop)) > 0.1 {
		t.Errorf("flange top = %v, want %v", top, wantTop)
	}

	// Neck stays centered over the placement point in X/Z.
	cx := (parts.Neck.Bounds.Min[0] + parts.Neck.Bounds.Max[0]) / 2
	cz := (parts.Neck.Bounds.Min[2] + parts.Neck.Bounds.Max[2]) / 2
	if gomath.Abs(float64(cx)) > 0.1 || gomath.Abs(float64(cz)) > 0.1 {
		t.Errorf("neck center = (%v, %v), want origin", cx, cz)
	}
}

func TestBuildNozzleOutOfCatalogBore(t *testing.T) {
	s := testVessel()
	// Bore 9999 snaps to the largest catalog entry rather than failing.
	parts := BuildNozzle(s, vessel.NozzleSpec{Pos: 3000, Angle: 90, Bore: 9999})
	dims := vessel.NearestBore(9999)

	span := parts.Flange.Bounds.Max[0] - parts.Flange.Bounds.Min[0]
	if gomath.Abs(float64(span-dims.FlangeOD)) > 0.5 {
		t.Errorf("flange span = %v, want %v", span, dims.FlangeOD)
	}
}

func TestBuildNozzleOnHeadTilts(t *testing.T) {
	s := testVessel()
	parts := BuildNozzle(s, vessel.NozzleSpec{Pos: 6300, Angle: 90, Bore: 100})

	// On the head the normal gains a +X component, so the nozzle leans
	// toward +X: its bounds center in X lies beyond the placement point.
	point, _ := vessel.SurfacePoint(s, 6300, 90)
	cx := (parts.Neck.Bounds.Min[0] + parts.Neck.Bounds.Max[0]) / 2
	if cx <= point.X {
		t.Errorf("nozzle on head does not lean outward: center X %v, base X %v", cx, point.X)
	}
}

func TestBuildLugSitsOnSurface(t *testing.T) {
	s := testVessel()
	lug := BuildLug(s, vessel.LugSpec{Pos: 1500, Angle: 0, Width: 300, Height: 250, Thick: 30})

	// Angle 0 on a horizontal vessel points at +Z: the plate spans
	// Z in [1000, 1250].
	if gomath.Abs(float64(lug.Bounds.Min[2]-1000)) > 0.1 {
		t.Errorf("lug base Z = %v, want 1000", lug.Bounds.Min[2])
	}
	if gomath.Abs(float64(lug.Bounds.Max[2]-1250)) > 0.1 {
		t.Errorf("lug tip Z = %v, want 1250", lug.Bounds.Max[2])
	}
}
