// Package interact implements pointer-driven selection and dragging of
// vessel attachments. The controller is a two-state machine (idle or
// dragging one object); all geometry questions go through the picking and
// vessel packages, and results come back through callbacks so the owner of
// the spec lists stays in charge of the data.
package interact

import (
	"github.com/vesselworks/vesselview/internal/engine/picking"
	"github.com/vesselworks/vesselview/internal/engine/scene"
	"github.com/vesselworks/vesselview/internal/vessel"
	"github.com/vesselworks/vesselview/pkg/math"
	"go.uber.org/zap"
)

// Locks disables picking per class. A locked object neither selects nor
// drags; rays pass through it to whatever is behind.
type Locks struct {
	Decals  bool
	Nozzles bool
	Lugs    bool
	Saddles bool
}

func (l Locks) locked(c scene.Class) bool {
	switch c {
	case scene.ClassDecal:
		return l.Decals
	case scene.ClassNozzle:
		return l.Nozzles
	case scene.ClassLug:
		return l.Lugs
	default:
		return l.Saddles
	}
}

// Callbacks notify the owner of the attachment lists. Any may be nil.
type Callbacks struct {
	// OnSelected fires when pointer-down hits an unlocked object.
	OnSelected func(class scene.Class, index int)
	// OnDeselected fires when pointer-down hits nothing while something
	// was selected.
	OnDeselected func()
	// OnMoved fires on every pointer-move that lands the dragged object at
	// a new placement. For saddles angle is always 0.
	OnMoved func(class scene.Class, index int, pos, angle float32)
	// OnDragEnd fires on pointer-up after a drag, whether or not the
	// object moved.
	OnDragEnd func(class scene.Class, index int)
}

// classPriority orders hit-testing: decals sit on the shell surface and
// would otherwise lose every tie to the attachments protruding over them.
var classPriority = []scene.Class{
	scene.ClassDecal,
	scene.ClassNozzle,
	scene.ClassLug,
	scene.ClassSaddle,
}

// Controller runs the drag state machine against the current scene.
type Controller struct {
	log *zap.Logger

	spec  vessel.Spec
	scene *scene.Scene

	callbacks Callbacks

	dragging  bool
	selected  bool
	dragClass scene.Class
	dragIndex int
}

// NewController returns an idle controller. SetScene must be called before
// the first pointer event.
func NewController(log *zap.Logger, cb Callbacks) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{log: log, callbacks: cb}
}

// SetScene swaps in a rebuilt scene. Selection is carried by class and
// index, so it survives rebuilds as long as the lists keep their order.
func (c *Controller) SetScene(spec vessel.Spec, s *scene.Scene) {
	c.spec = spec
	c.scene = s
}

// Dragging reports whether a drag is in progress. The viewer disables
// camera orbit while this is true.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Selected returns the current selection, if any.
func (c *Controller) Selected() (class scene.Class, index int, ok bool) {
	return c.dragClass, c.dragIndex, c.selected
}

// PointerDown hit-tests the scene and either begins a drag or clears the
// selection. Classes are tested in fixed priority order; within a class the
// nearest triangle hit wins. Locks arrive with every call so the controller
// stays a function of its latest inputs rather than holding UI state.
func (c *Controller) PointerDown(r picking.Ray, locks Locks) {
	if c.scene == nil {
		return
	}

	for _, class := range classPriority {
		if locks.locked(class) {
			continue
		}
		index, ok := c.pickClass(r, class)
		if !ok {
			continue
		}

		c.dragging = true
		c.selected = true
		c.dragClass = class
		c.dragIndex = index
		c.log.Debug("drag started",
			zap.Stringer("class", class),
			zap.Int("index", index))
		if c.callbacks.OnSelected != nil {
			c.callbacks.OnSelected(class, index)
		}
		return
	}

	// Empty click: drop any selection.
	if c.selected {
		c.selected = false
		if c.callbacks.OnDeselected != nil {
			c.callbacks.OnDeselected()
		}
	}
}

// PointerMove moves the dragged object under the pointer. Saddles slide on
// their rest plane; everything else re-projects onto the vessel surface.
// Locking the dragged class mid-drag cancels the drag.
func (c *Controller) PointerMove(r picking.Ray, locks Locks) {
	if !c.dragging || c.scene == nil {
		return
	}
	if locks.locked(c.dragClass) {
		c.endDrag()
		return
	}

	var pos, angle float32
	if c.dragClass == scene.ClassSaddle {
		hit, ok := r.IntersectPlaneY(scene.SaddleRestHeight(c.spec))
		if !ok {
			return
		}
		pos = vessel.ClampSaddle(c.spec, hit.X+c.spec.Length/2)
		angle = 0
	} else {
		point, ok := c.castShell(r)
		if !ok {
			return // pointer left the vessel; keep the last placement
		}
		pos, angle = vessel.InverseSurfacePoint(c.spec, point)
		pos = vessel.ClampAxial(c.spec, pos)
	}

	if c.callbacks.OnMoved != nil {
		c.callbacks.OnMoved(c.dragClass, c.dragIndex, pos, angle)
	}
}

// PointerUp ends an in-flight drag. The selection stays.
func (c *Controller) PointerUp() {
	if !c.dragging {
		return
	}
	c.endDrag()
}

func (c *Controller) endDrag() {
	c.dragging = false
	c.log.Debug("drag ended",
		zap.Stringer("class", c.dragClass),
		zap.Int("index", c.dragIndex))
	if c.callbacks.OnDragEnd != nil {
		c.callbacks.OnDragEnd(c.dragClass, c.dragIndex)
	}
}

// pickClass finds the nearest hit among one class's nodes and resolves it
// back to a spec-list index.
func (c *Controller) pickClass(r picking.Ray, class scene.Class) (index int, ok bool) {
	var ids []scene.NodeID
	switch class {
	case scene.ClassNozzle:
		for _, parts := range c.scene.NozzleNodes {
			ids = append(ids, parts...)
		}
	case scene.ClassLug:
		ids = c.scene.LugNodes
	case scene.ClassSaddle:
		ids = c.scene.SaddleNodes
	default:
		ids = c.scene.DecalNodes
	}

	best := float32(0)
	bestIndex := -1
	for _, id := range ids {
		node := c.scene.Node(id)
		if node == nil || node.Mesh == nil {
			continue
		}
		t, hit := r.IntersectMesh(node.Mesh)
		if !hit {
			continue
		}
		if bestIndex >= 0 && t >= best {
			continue
		}
		tag, ok := c.scene.ResolveTag(id)
		if !ok || tag.Class != class {
			continue
		}
		best = t
		bestIndex = tag.Index
	}
	if bestIndex < 0 {
		return 0, false
	}
	return bestIndex, true
}

// castShell intersects the ray against the vessel surface meshes and
// returns the nearest hit point.
func (c *Controller) castShell(r picking.Ray) (point math.Vec3, ok bool) {
	best := float32(0)
	found := false
	for _, id := range c.scene.ShellNodes {
		node := c.scene.Node(id)
		if node == nil || node.Mesh == nil {
			continue
		}
		t, hit := r.IntersectMesh(node.Mesh)
		if !hit {
			continue
		}
		if !found || t < best {
			best = t
			found = true
		}
	}
	if !found {
		return math.Vec3{}, false
	}
	return r.At(best), true
}
