// Package decal builds surface-conforming quad-grid meshes that wrap flat
// images onto the curved vessel shell, plus the selection-highlight variant.
package decal

import "github.com/vesselworks/vesselview/pkg/math"

// TransformUV remaps a texture coordinate on the unit square by the decal's
// flip flags and rotation. Order is flip first, then rotate in 90-degree
// steps; the two do not commute for 90/270 rotations, and the reference
// behavior is flip-before-rotate.
func TransformUV(uv math.Vec2, flipH, flipV bool, rotDeg int) math.Vec2 {
	u, v := uv.X, uv.Y

	if flipH {
		u = 1 - u
	}
	if flipV {
		v = 1 - v
	}

	steps := ((rotDeg/90)%4 + 4) % 4
	for i := 0; i < steps; i++ {
		// 90 degrees counterclockwise about the square center.
		u, v = 1-v, u
	}
	return math.Vec2{X: u, Y: v}
}
