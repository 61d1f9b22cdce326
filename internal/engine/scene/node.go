// Package scene assembles the vessel scene graph: shell and head primitives,
// placed attachments, saddles, decals, and the ground grid, plus the
// side-tables that map graph nodes back to the attachment data they came
// from. The graph is rebuilt wholesale on every spec change and carries no
// GPU state; the renderer owns uploads and their disposal.
package scene

import "github.com/vesselworks/vesselview/internal/engine/mesh"

// NodeID identifies one node within a single build. IDs are never reused
// across rebuilds; the whole graph and its tables are discarded together.
type NodeID uint32

// NodeKind drives both rendering style and ray-cast filtering.
type NodeKind int

const (
	// KindShell marks the vessel surface itself (cylinder and heads);
	// pointer-move ray-casts during a drag hit only these.
	KindShell NodeKind = iota
	// KindGroup is an empty node that groups multi-mesh attachments.
	KindGroup
	// KindAttachment marks nozzle and lug geometry.
	KindAttachment
	// KindSaddle marks saddle support boxes.
	KindSaddle
	// KindDecal marks textured decal grids.
	KindDecal
	// KindHighlight marks the selection overlay for a decal.
	KindHighlight
	// KindGround marks the reference grid.
	KindGround
)

// Class partitions the interactive attachments for hit-test priority and for
// the index lists handed to the drag controller.
type Class int

const (
	ClassNozzle Class = iota
	ClassLug
	ClassSaddle
	ClassDecal
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case ClassNozzle:
		return "nozzle"
	case ClassLug:
		return "lug"
	case ClassSaddle:
		return "saddle"
	default:
		return "decal"
	}
}

// Tag is the back-reference from a graph node to its attachment: which class
// and which index in the caller's spec list. Tags are used only for hit-test
// lookup; the authoritative data stays in the spec lists.
type Tag struct {
	Class Class
	Index int
}

// Node is one scene graph entry. Mesh is nil for group nodes. Geometry is in
// world coordinates; there are no per-node transforms to compose.
type Node struct {
	ID      NodeID
	Kind    NodeKind
	Mesh    *mesh.Mesh
	Color   [4]float32
	DecalID int64 // texture key for decal nodes; 0 otherwise
}

// maxParentWalk bounds the ancestor walk when resolving a tag from a raw
// mesh hit. The graph is at most group -> part deep, so a small bound
// guards against a malformed parent table rather than real depth.
const maxParentWalk = 8

// ResolveTag walks from a hit node up the parent table until it finds a node
// carrying a class/index tag.
func (s *Scene) ResolveTag(id NodeID) (Tag, bool) {
	cur := id
	for i := 0; i < maxParentWalk; i++ {
		if tag, ok := s.Tags[cur]; ok {
			return tag, true
		}
		parent, ok := s.Parents[cur]
		if !ok {
			return Tag{}, false
		}
		cur = parent
	}
	return Tag{}, false
}
