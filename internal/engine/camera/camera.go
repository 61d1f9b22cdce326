// Package camera provides the orbit camera used by the vessel viewer.
package camera

import (
	gomath "math"

	"github.com/vesselworks/vesselview/internal/engine/mesh"
	"github.com/vesselworks/vesselview/pkg/math"
)

// OrbitCamera orbits around a center point. Distances are in millimetres,
// matching the vessel geometry, so defaults are large.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Enabled gates orbit and zoom input. The interaction controller
	// switches this off while an object drag is in progress so the view
	// does not rotate under the pointer.
	Enabled bool
}

// NewOrbitCamera creates an orbit camera with viewer defaults.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        8000.0,
		RotationX:       0.4,
		RotationY:       0.6,
		MinDistance:     500.0,
		MaxDistance:     60000.0,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Enabled:         true,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// HandleDrag updates rotation based on mouse drag delta. No-op while the
// camera is disabled.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	if !c.Enabled {
		return
	}
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	if !c.Enabled {
		return
	}
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandlePan moves the center point parallel to the view plane.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	if !c.Enabled {
		return
	}
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.0015

	rightX := float32(gomath.Cos(float64(c.RotationY)))
	rightZ := float32(-gomath.Sin(float64(c.RotationY)))

	c.Center.X += -deltaX * rightX * speed
	c.Center.Z += -deltaX * rightZ * speed
	c.Center.Y += deltaY * speed
}

// FitToBounds adjusts the camera to frame the given bounding box.
func (c *OrbitCamera) FitToBounds(b mesh.Bounds) {
	c.Center = math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}

	maxSize := b.Max[0] - b.Min[0]
	for i := 1; i < 3; i++ {
		if s := b.Max[i] - b.Min[i]; s > maxSize {
			maxSize = s
		}
	}

	c.Distance = maxSize * 1.4
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
}
