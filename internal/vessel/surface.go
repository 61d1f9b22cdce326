package vessel

import (
	gomath "math"

	"github.com/vesselworks/vesselview/pkg/math"
)

// poleRatioCap keeps the ellipsoid cross-section ratio away from 1 so the
// local radius never collapses to zero at the head apex. The pole region is
// therefore slightly flattened; callers must tolerate that rather than
// expect exact apex convergence.
const poleRatioCap = 0.99

// Angle convention: on a horizontal vessel 0 degrees points at world +Z and
// 90 degrees straight up (+Y); on a vertical vessel 0 degrees points at +X
// and 90 degrees at +Z. The vessel is centered on the world origin along its
// axis, so axial position pos maps to axis coordinate pos - Length/2.

// SurfacePoint is the forward transform: parametric (pos, angle) to a world
// point on the outer surface plus the outward unit normal there. pos in mm
// along the centerline (0 at the left/bottom tan line), angle in degrees.
func SurfacePoint(s Spec, pos, angle float32) (point, normal math.Vec3) {
	r := s.Radius()
	h := s.HeadDepth()
	axial := pos - s.Length/2

	rad := float64(angle) * gomath.Pi / 180
	cos := float32(gomath.Cos(rad))
	sin := float32(gomath.Sin(rad))

	var localRadius float32
	var axialGrad float32 // axial component of the (unnormalized) surface gradient

	switch {
	case pos >= 0 && pos <= s.Length:
		// Cylindrical region: radius is exactly R, normal purely radial.
		localRadius = r
		axialGrad = 0
	default:
		// Dished head: ellipsoid cross-section at local axial offset d from
		// the tangent line.
		d := pos
		if pos > s.Length {
			d = pos - s.Length
		}
		ratio := float32(gomath.Abs(float64(d))) / h
		if ratio > poleRatioCap {
			ratio = poleRatioCap
		}
		localRadius = r * float32(gomath.Sqrt(float64(1-ratio*ratio)))
		axialGrad = d / (h * h)
	}

	c1 := localRadius * cos
	c2 := localRadius * sin

	// Ellipsoid gradient: (c1/R^2, d/H^2, c2/R^2). On the cylinder the axial
	// term vanishes and this reduces to the radial direction.
	r2 := r * r
	n := normalFrame(s.Orientation, axialGrad, c1/r2, c2/r2).Normalize()
	p := pointFrame(s.Orientation, axial, c1, c2)
	return p, n
}

// InverseSurfacePoint maps a world point on (or near) the surface back to
// parametric coordinates. The axial position is clamped to the drag range
// [-HeadDepth, Length+HeadDepth] and the angle normalized to [0,360).
func InverseSurfacePoint(s Spec, p math.Vec3) (pos, angle float32) {
	var axial, c1, c2 float32
	if s.Orientation == Vertical {
		axial, c1, c2 = p.Y, p.X, p.Z
	} else {
		axial, c1, c2 = p.X, p.Z, p.Y
	}
	pos = ClampAxial(s, axial+s.Length/2)
	angle = NormalizeAngle(float32(gomath.Atan2(float64(c2), float64(c1)) * 180 / gomath.Pi))
	return pos, angle
}

// pointFrame assembles world coordinates from the axial coordinate and the
// two cross-section coordinates (c1 at 0 degrees, c2 at 90 degrees).
func pointFrame(o Orientation, axial, c1, c2 float32) math.Vec3 {
	if o == Vertical {
		return math.Vec3{X: c1, Y: axial, Z: c2}
	}
	return math.Vec3{X: axial, Y: c2, Z: c1}
}

// normalFrame assembles a world direction the same way as pointFrame.
func normalFrame(o Orientation, axial, c1, c2 float32) math.Vec3 {
	return pointFrame(o, axial, c1, c2)
}

// NormalizeAngle wraps a circumferential angle into [0, 360).
func NormalizeAngle(deg float32) float32 {
	m := float32(gomath.Mod(float64(deg), 360))
	if m < 0 {
		m += 360
	}
	if m >= 360 {
		m = 0
	}
	return m
}

// ClampAxial bounds an axial position to the reachable drag range, which
// includes both heads.
func ClampAxial(s Spec, pos float32) float32 {
	if pos < s.AxialMin() {
		return s.AxialMin()
	}
	if pos > s.AxialMax() {
		return s.AxialMax()
	}
	return pos
}

// ClampSaddle bounds a saddle position to the cylindrical section; saddles
// never extend onto the heads.
func ClampSaddle(s Spec, pos float32) float32 {
	if pos < 0 {
		return 0
	}
	if pos > s.Length {
		return s.Length
	}
	return pos
}

// ArcToDegrees converts a circumferential arc length in mm to degrees at the
// shell radius.
func ArcToDegrees(s Spec, arc float32) float32 {
	return arc / s.Radius() * 180 / gomath.Pi
}
