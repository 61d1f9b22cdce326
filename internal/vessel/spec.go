// Package vessel holds the parametric pressure-vessel model: the dimension
// specs supplied by the application layer and the forward/inverse mapping
// between parametric coordinates (axial mm, circumferential degrees) and
// 3D space.
package vessel

import "fmt"

// Orientation selects which world axis carries the vessel centerline.
type Orientation int

const (
	// Horizontal lays the centerline along world X.
	Horizontal Orientation = iota
	// Vertical stands the centerline along world Y.
	Vertical
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Spec describes the vessel geometry. All lengths are millimeters.
// It is immutable per rebuild and owned by the caller.
type Spec struct {
	ID          float32 `yaml:"id"`         // internal diameter
	Length      float32 `yaml:"length"`     // tan-tan length of the cylindrical section
	HeadRatio   float32 `yaml:"head_ratio"` // head depth = ID / (2 * HeadRatio)
	Orientation Orientation
}

// Validate reports the first violated invariant, or nil.
func (s Spec) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("internal diameter must be positive, got %v", s.ID)
	}
	if s.Length <= 0 {
		return fmt.Errorf("tan-tan length must be positive, got %v", s.Length)
	}
	if s.HeadRatio <= 0 {
		return fmt.Errorf("head ratio must be positive, got %v", s.HeadRatio)
	}
	return nil
}

// Radius returns the shell radius ID/2.
func (s Spec) Radius() float32 {
	return s.ID / 2
}

// HeadDepth returns the axial extent of one dished head.
func (s Spec) HeadDepth() float32 {
	return s.ID / (2 * s.HeadRatio)
}

// AxialMin returns the lowest axial position reachable by an attachment.
func (s Spec) AxialMin() float32 {
	return -s.HeadDepth()
}

// AxialMax returns the highest axial position reachable by an attachment.
func (s Spec) AxialMax() float32 {
	return s.Length + s.HeadDepth()
}

// NozzleSpec places one nozzle on the shell. Identity is the index in the
// caller's ordered list.
type NozzleSpec struct {
	Pos   float32 // axial, mm; may run onto a head
	Angle float32 // circumferential, degrees [0,360)
	Bore  float32 // nominal bore, mm; snapped to the nearest catalog entry
}

// LugSpec places one lifting lug on the shell.
type LugSpec struct {
	Pos    float32
	Angle  float32
	Width  float32 // along the vessel axis
	Height float32 // radially outward
	Thick  float32
}

// SaddleSpec places one saddle support. Saddles exist only on horizontal
// vessels and always sit at the bottom of the cylinder, so there is no
// angular freedom.
type SaddleSpec struct {
	Pos float32 // axial, mm, within [0, Length]
}

// DecalSpec wraps a flat image onto the shell. Identity is the explicit ID,
// not a list index, because decals are added and removed non-contiguously.
// The image itself is supplied separately as a map of decal ID to loaded
// image resource.
type DecalSpec struct {
	ID       int64
	Pos      float32
	Angle    float32
	ScaleW   float32 // width multiplier on the base decal size
	ScaleH   float32 // height multiplier on the base decal size
	Rotation int     // 0, 90, 180, 270 degrees
	FlipH    bool
	FlipV    bool
}
