// Package viewer implements the interactive vessel viewer loop: it owns the
// window, the editable vessel document, and the per-frame cycle of input,
// drag handling, scene rebuild, and rendering.
package viewer

import (
	"fmt"
	"image"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/vesselworks/vesselview/internal/engine/camera"
	"github.com/vesselworks/vesselview/internal/engine/input"
	"github.com/vesselworks/vesselview/internal/engine/interact"
	"github.com/vesselworks/vesselview/internal/engine/picking"
	"github.com/vesselworks/vesselview/internal/engine/renderer"
	"github.com/vesselworks/vesselview/internal/engine/scene"
	"github.com/vesselworks/vesselview/internal/engine/window"
	"github.com/vesselworks/vesselview/internal/logger"
	"github.com/vesselworks/vesselview/internal/vessel"
	"github.com/vesselworks/vesselview/pkg/math"
)

// Perspective parameters, sized for millimetre geometry.
const (
	fovY     = gomath.Pi / 4
	nearClip = 10.0
	farClip  = 400000.0
)

// Config holds viewer configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// Mesh density forwarded to the scene builder.
	ShellSegments int
	ShellRows     int
	HeadRows      int

	Locks interact.Locks
}

// Document is the editable vessel state the viewer displays. Drag edits
// mutate these lists in place; every mutation triggers a scene rebuild.
type Document struct {
	Vessel  vessel.Spec
	Nozzles []vessel.NozzleSpec
	Lugs    []vessel.LugSpec
	Saddles []vessel.SaddleSpec
	Decals  []vessel.DecalSpec
	Images  map[int64]image.Image
}

// Viewer is the main application instance.
type Viewer struct {
	config  Config
	running bool

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	camera     *camera.OrbitCamera
	controller *interact.Controller

	doc           *Document
	scene         *scene.Scene
	selectedDecal int64
	dirty         bool

	orbiting bool
}

// New creates the viewer, its window, and its GL resources.
func New(cfg Config, doc *Document) (*Viewer, error) {
	if err := doc.Vessel.Validate(); err != nil {
		return nil, fmt.Errorf("vessel spec: %w", err)
	}

	logger.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Float32("diameter_mm", doc.Vessel.ID),
		zap.Float32("length_mm", doc.Vessel.Length),
		zap.Stringer("orientation", doc.Vessel.Orientation),
	)

	v := &Viewer{
		config:        cfg,
		doc:           doc,
		selectedDecal: -1,
		dirty:         true,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.camera = camera.NewOrbitCamera()
	v.controller = interact.NewController(logger.Log, interact.Callbacks{
		OnSelected:   v.onSelected,
		OnDeselected: v.onDeselected,
		OnMoved:      v.onMoved,
		OnDragEnd:    v.onDragEnd,
	})

	// First build frames the camera on the vessel.
	v.rebuild()
	if len(v.scene.ShellNodes) > 0 {
		if n := v.scene.Node(v.scene.ShellNodes[0]); n != nil && n.Mesh != nil {
			v.camera.FitToBounds(n.Mesh.Bounds)
		}
	}

	logger.Info("viewer initialized")
	return v, nil
}

// Run starts the main loop. Returns when the window closes or ESC is hit.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}

		// The camera must not orbit underneath an object drag.
		v.camera.Enabled = !v.controller.Dragging()

		if v.dirty {
			v.rebuild()
		}

		width, height := v.renderer.Size()
		proj := math.Perspective(fovY, float32(width)/float32(height), nearClip, farClip)
		viewProj := proj.Mul(v.camera.ViewMatrix())

		v.renderer.Begin()
		v.renderer.Draw(viewProj)
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvent dispatches one input event.
func (v *Viewer) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		v.renderer.Resize(e.Width, e.Height)

	case input.EventKeyDown:
		if e.Key == sdl.SCANCODE_ESCAPE {
			v.running = false
		}

	case input.EventMouseDown:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			v.controller.PointerDown(v.pointerRay(e.MouseX, e.MouseY), v.config.Locks)
			// A miss leaves the button free to orbit the camera.
			v.orbiting = !v.controller.Dragging()
		case sdl.BUTTON_RIGHT:
			v.orbiting = true
		}

	case input.EventMouseMove:
		if v.controller.Dragging() {
			v.controller.PointerMove(v.pointerRay(e.MouseX, e.MouseY), v.config.Locks)
		} else if v.orbiting {
			v.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
		}

	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT || e.Button == sdl.BUTTON_RIGHT {
			v.controller.PointerUp()
			v.orbiting = false
		}

	case input.EventMouseWheel:
		v.camera.HandleZoom(e.Wheel)
	}
}

// pointerRay converts a pixel position to a world ray through the current
// camera.
func (v *Viewer) pointerRay(x, y int) picking.Ray {
	width, height := v.renderer.Size()
	proj := math.Perspective(fovY, float32(width)/float32(height), nearClip, farClip)
	inv := proj.Mul(v.camera.ViewMatrix()).Inverse()
	return picking.ScreenToRay(float32(x), float32(y), float32(width), float32(height), inv)
}

// rebuild reassembles the scene from the document and republishes it to the
// controller and the renderer.
func (v *Viewer) rebuild() {
	v.scene = scene.Build(
		v.doc.Vessel,
		v.doc.Nozzles,
		v.doc.Lugs,
		v.doc.Saddles,
		v.doc.Decals,
		v.doc.Images,
		scene.Options{
			ShellSegments: v.config.ShellSegments,
			ShellRows:     v.config.ShellRows,
			HeadRows:      v.config.HeadRows,
			SelectedDecal: v.selectedDecal,
		},
	)
	v.controller.SetScene(v.doc.Vessel, v.scene)
	v.renderer.SetScene(v.scene, v.doc.Images)
	v.dirty = false
}

func (v *Viewer) onSelected(class scene.Class, index int) {
	logger.Debug("selected", zap.Stringer("class", class), zap.Int("index", index))
	if class == scene.ClassDecal && index < len(v.doc.Decals) {
		v.selectedDecal = v.doc.Decals[index].ID
		v.dirty = true
	}
}

func (v *Viewer) onDeselected() {
	if v.selectedDecal >= 0 {
		v.selectedDecal = -1
		v.dirty = true
	}
}

// onMoved writes the new placement back into the document list the scene
// was built from.
func (v *Viewer) onMoved(class scene.Class, index int, pos, angle float32) {
	switch class {
	case scene.ClassNozzle:
		if index < len(v.doc.Nozzles) {
			v.doc.Nozzles[index].Pos = pos
			v.doc.Nozzles[index].Angle = angle
		}
	case scene.ClassLug:
		if index < len(v.doc.Lugs) {
			v.doc.Lugs[index].Pos = pos
			v.doc.Lugs[index].Angle = angle
		}
	case scene.ClassSaddle:
		if index < len(v.doc.Saddles) {
			v.doc.Saddles[index].Pos = pos
		}
	default:
		if index < len(v.doc.Decals) {
			v.doc.Decals[index].Pos = pos
			v.doc.Decals[index].Angle = angle
		}
	}
	v.dirty = true
}

func (v *Viewer) onDragEnd(class scene.Class, index int) {
	logger.Info("placement updated",
		zap.Stringer("class", class),
		zap.Int("index", index))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
