package camera

import (
	gomath "math"
	"testing"

	"github.com/vesselworks/vesselview/internal/engine/mesh"
)

func TestOrbitPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0
	c.RotationY = 0
	c.Distance = 1000

	pos := c.Position()
	if gomath.Abs(float64(pos.X)) > 1e-3 || gomath.Abs(float64(pos.Y)) > 1e-3 ||
		gomath.Abs(float64(pos.Z-1000)) > 1e-3 {
		t.Errorf("yaw=0 pitch=0 position = %+v, want (0,0,1000)", pos)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch = %f, want clamped to %f", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -1e7)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch = %f, want clamped to %f", c.RotationX, c.MinPitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 200; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %f, want clamped to %f", c.Distance, c.MinDistance)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %f, want clamped to %f", c.Distance, c.MaxDistance)
	}
}

func TestDisabledCameraIgnoresInput(t *testing.T) {
	c := NewOrbitCamera()
	c.Enabled = false

	yaw, pitch, dist := c.RotationY, c.RotationX, c.Distance
	c.HandleDrag(100, 100)
	c.HandleZoom(5)
	c.HandlePan(50, 50)

	if c.RotationY != yaw || c.RotationX != pitch || c.Distance != dist {
		t.Error("disabled camera must ignore drag, zoom and pan")
	}
	if c.Center.X != 0 || c.Center.Y != 0 || c.Center.Z != 0 {
		t.Errorf("disabled camera moved its center: %+v", c.Center)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	b := mesh.Bounds{
		Min: [3]float32{-3000, -1000, -1000},
		Max: [3]float32{3000, 1000, 1000},
	}
	c.FitToBounds(b)

	if c.Center.X != 0 || c.Center.Y != 0 || c.Center.Z != 0 {
		t.Errorf("center = %+v, want origin", c.Center)
	}
	if c.Distance != 6000*1.4 {
		t.Errorf("distance = %f, want %f", c.Distance, 6000*1.4)
	}
}
