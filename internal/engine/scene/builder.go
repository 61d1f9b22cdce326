package scene

import (
	"image"

	"github.com/vesselworks/vesselview/internal/engine/attach"
	"github.com/vesselworks/vesselview/internal/engine/decal"
	"github.com/vesselworks/vesselview/internal/engine/mesh"
	"github.com/vesselworks/vesselview/internal/vessel"
	"github.com/vesselworks/vesselview/pkg/math"
)

// Default mesh resolutions; overridable through Options.
const (
	defaultShellSegments = 64 // radial segments around the circumference
	defaultShellRows     = 32 // axial rows along the cylinder
	defaultHeadRows      = 16 // rows from tan line to pole
)

// Saddle box proportions relative to the shell radius, and the gap between
// the shell bottom and the ground grid.
const (
	saddleAxialRatio  = 0.3
	saddleSpanRatio   = 1.5
	saddleHeightRatio = 0.7
	groundClearance   = 200.0 // mm
)

// Colors are RGBA 0..1.
var (
	shellColor     = [4]float32{0.62, 0.64, 0.68, 1}
	nozzleColor    = [4]float32{0.78, 0.55, 0.25, 1}
	lugColor       = [4]float32{0.45, 0.55, 0.75, 1}
	saddleColor    = [4]float32{0.35, 0.38, 0.42, 1}
	decalTint      = [4]float32{1, 1, 1, 1}
	highlightColor = [4]float32{0.25, 0.85, 0.95, 0.45}
	groundColor    = [4]float32{0.5, 0.5, 0.5, 0.35}
)

// Options tune mesh density. The zero value selects the defaults.
type Options struct {
	ShellSegments int
	ShellRows     int
	HeadRows      int
	// SelectedDecal is the ID of the decal to overlay with the selection
	// highlight; negative for none.
	SelectedDecal int64
}

func (o Options) withDefaults() Options {
	if o.ShellSegments < 8 {
		o.ShellSegments = defaultShellSegments
	}
	if o.ShellRows < 2 {
		o.ShellRows = defaultShellRows
	}
	if o.HeadRows < 2 {
		o.HeadRows = defaultHeadRows
	}
	return o
}

// Scene is one assembled graph plus the lookup tables the drag controller
// consumes. It is immutable after Build; spec changes produce a new Scene.
type Scene struct {
	Nodes   []*Node
	Tags    map[NodeID]Tag
	Parents map[NodeID]NodeID

	// ShellNodes are the surface meshes pointer-move ray-casts target.
	ShellNodes []NodeID

	// Per-class interactive node lists, in spec order. Nozzles are mesh
	// groups, so each entry lists the pickable part nodes.
	NozzleNodes [][]NodeID
	LugNodes    []NodeID
	SaddleNodes []NodeID
	DecalNodes  []NodeID

	byID   map[NodeID]*Node
	nextID NodeID
}

// Node returns the node with the given ID, or nil.
func (s *Scene) Node(id NodeID) *Node {
	return s.byID[id]
}

func (s *Scene) addNode(kind NodeKind, m *mesh.Mesh, color [4]float32) *Node {
	n := &Node{ID: s.nextID, Kind: kind, Mesh: m, Color: color}
	s.nextID++
	s.Nodes = append(s.Nodes, n)
	s.byID[n.ID] = n
	return n
}

// Build assembles the scene for the given specs. Decal images arrive as a
// map of decal ID to loaded image; missing entries render untextured.
func Build(spec vessel.Spec, nozzles []vessel.NozzleSpec, lugs []vessel.LugSpec,
	saddles []vessel.SaddleSpec, decals []vessel.DecalSpec,
	images map[int64]image.Image, opts Options) *Scene {

	opts = opts.withDefaults()
	s := &Scene{
		Tags:    make(map[NodeID]Tag),
		Parents: make(map[NodeID]NodeID),
		byID:    make(map[NodeID]*Node),
	}

	// Vessel surface: cylinder plus both heads, all ray-castable as shell.
	shell := s.addNode(KindShell, buildShellMesh(spec, opts), shellColor)
	headA := s.addNode(KindShell, buildHeadMesh(spec, opts, false), shellColor)
	headB := s.addNode(KindShell, buildHeadMesh(spec, opts, true), shellColor)
	s.ShellNodes = []NodeID{shell.ID, headA.ID, headB.ID}

	// Nozzles: a group node carries the tag, the neck and flange are the
	// pickable parts beneath it.
	for i, n := range nozzles {
		parts := attach.BuildNozzle(spec, n)
		group := s.addNode(KindGroup, nil, [4]float32{})
		s.Tags[group.ID] = Tag{Class: ClassNozzle, Index: i}

		neck := s.addNode(KindAttachment, parts.Neck, nozzleColor)
		flange := s.addNode(KindAttachment, parts.Flange, nozzleColor)
		s.Parents[neck.ID] = group.ID
		s.Parents[flange.ID] = group.ID
		s.NozzleNodes = append(s.NozzleNodes, []NodeID{neck.ID, flange.ID})
	}

	// Lugs are single plates, tagged directly.
	for i, l := range lugs {
		node := s.addNode(KindAttachment, attach.BuildLug(spec, l), lugColor)
		s.Tags[node.ID] = Tag{Class: ClassLug, Index: i}
		s.LugNodes = append(s.LugNodes, node.ID)
	}

	// Saddles exist only under horizontal vessels.
	if spec.Orientation == vessel.Horizontal {
		for i, sd := range saddles {
			node := s.addNode(KindSaddle, buildSaddleMesh(spec, sd), saddleColor)
			s.Tags[node.ID] = Tag{Class: ClassSaddle, Index: i}
			s.SaddleNodes = append(s.SaddleNodes, node.ID)
		}
	}

	for i, d := range decals {
		img := images[d.ID]
		node := s.addNode(KindDecal, decal.Build(spec, d, img), decalTint)
		node.DecalID = d.ID
		s.Tags[node.ID] = Tag{Class: ClassDecal, Index: i}
		s.DecalNodes = append(s.DecalNodes, node.ID)

		if d.ID == opts.SelectedDecal {
			s.addNode(KindHighlight, decal.BuildHighlight(spec, d, img), highlightColor)
		}
	}

	s.addNode(KindGround, buildGroundMesh(spec), groundColor)

	return s
}

// buildShellMesh samples the cylindrical section through the forward
// transform so shell ray hits invert exactly.
func buildShellMesh(spec vessel.Spec, opts Options) *mesh.Mesh {
	positions := make([]float32, 0, opts.ShellRows+1)
	for i := 0; i <= opts.ShellRows; i++ {
		positions = append(positions, spec.Length*float32(i)/float32(opts.ShellRows))
	}
	return surfaceGrid(spec, positions, opts.ShellSegments)
}

// buildHeadMesh samples one dished head from the tan line toward the pole
// and closes the flattened pole ring with an apex fan.
func buildHeadMesh(spec vessel.Spec, opts Options, far bool) *mesh.Mesh {
	h := spec.HeadDepth()
	positions := make([]float32, 0, opts.HeadRows+1)
	for i := 0; i <= opts.HeadRows; i++ {
		off := h * float32(i) / float32(opts.HeadRows)
		if far {
			positions = append(positions, spec.Length+off)
		} else {
			positions = append(positions, -off)
		}
	}
	m := surfaceGrid(spec, positions, opts.ShellSegments)

	// Apex: the pole clamp leaves a small open ring at the last row; cap it
	// with a fan to the true pole point.
	axial := -(spec.Length/2 + h)
	axialSign := float32(-1)
	if far {
		axial = spec.Length/2 + h
		axialSign = 1
	}
	var apexPos, apexNormal math.Vec3
	if spec.Orientation == vessel.Vertical {
		apexPos = math.Vec3{Y: axial}
		apexNormal = math.Vec3{Y: axialSign}
	} else {
		apexPos = math.Vec3{X: axial}
		apexNormal = math.Vec3{X: axialSign}
	}

	apex := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, mesh.Vertex{
		Position: apexPos.Array(),
		Normal:   apexNormal.Array(),
		TexCoord: [2]float32{0.5, 0.5},
	})
	lastRow := uint32(opts.HeadRows) * uint32(opts.ShellSegments+1)
	for i := 0; i < opts.ShellSegments; i++ {
		a := lastRow + uint32(i)
		if far {
			m.Indices = append(m.Indices, apex, a, a+1)
		} else {
			m.Indices = append(m.Indices, apex, a+1, a)
		}
	}
	m.RecomputeBounds()
	return m
}

// surfaceGrid builds a lattice over the given axial stations, sampling the
// vessel forward transform at every (pos, angle) pair.
func surfaceGrid(spec vessel.Spec, positions []float32, segments int) *mesh.Mesh {
	m := &mesh.Mesh{Primitive: mesh.Triangles}
	for ri, pos := range positions {
		for i := 0; i <= segments; i++ {
			angle := 360 * float32(i) / float32(segments)
			p, n := vessel.SurfacePoint(spec, pos, angle)
			m.Vertices = append(m.Vertices, mesh.Vertex{
				Position: p.Array(),
				Normal:   n.Array(),
				TexCoord: [2]float32{float32(i) / float32(segments), float32(ri) / float32(len(positions))},
			})
		}
	}
	row := uint32(segments + 1)
	for ri := 0; ri < len(positions)-1; ri++ {
		for i := 0; i < segments; i++ {
			b := uint32(ri)*row + uint32(i)
			m.Indices = append(m.Indices,
				b, b+1, b+row,
				b+1, b+row+1, b+row,
			)
		}
	}
	m.RecomputeBounds()
	return m
}

// buildSaddleMesh returns the support box under a horizontal shell. Box
// dimensions are proportional to the radius; the top face meets the shell
// bottom at Y = -R.
func buildSaddleMesh(spec vessel.Spec, sd vessel.SaddleSpec) *mesh.Mesh {
	r := spec.Radius()
	pos := vessel.ClampSaddle(spec, sd.Pos)
	center := math.Vec3{
		X: pos - spec.Length/2,
		Y: -r - saddleHeightRatio*r/2,
	}
	size := math.Vec3{
		X: saddleAxialRatio * r,
		Y: saddleHeightRatio * r,
		Z: saddleSpanRatio * r,
	}
	return mesh.Box(center, size)
}

// SaddleRestHeight is the world Y of the plane saddles slide on during a
// drag: the bottom of the cylindrical shell.
func SaddleRestHeight(spec vessel.Spec) float32 {
	return -spec.Radius()
}

// buildGroundMesh returns the reference grid, sized to the vessel extent and
// placed below everything.
func buildGroundMesh(spec vessel.Spec) *mesh.Mesh {
	half := spec.Length/2 + spec.HeadDepth()
	extent := half * 1.5
	if r := spec.Radius() * 3; r > extent {
		extent = r
	}

	y := -spec.Radius() - groundClearance
	if spec.Orientation == vessel.Vertical {
		y = -half - groundClearance
	}
	return mesh.GridLines(extent, extent/12, y)
}
