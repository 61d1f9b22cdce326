// Package renderer provides OpenGL rendering of assembled vessel scenes.
// Geometry arrives already in world space, so the only matrix uniform is the
// combined view-projection. Every scene swap releases the previous scene's
// buffers and textures before uploading the new ones.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/vesselworks/vesselview/internal/engine/mesh"
	"github.com/vesselworks/vesselview/internal/engine/scene"
	"github.com/vesselworks/vesselview/internal/logger"
	"github.com/vesselworks/vesselview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// gpuMesh is one uploaded scene node.
type gpuMesh struct {
	vao         uint32
	vbo         uint32
	ebo         uint32
	indexCount  int32
	mode        uint32 // gl.TRIANGLES or gl.LINES
	color       [4]float32
	texture     uint32
	flatShade   bool
	translucent bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program      uint32
	locViewProj  int32
	locColor     int32
	locLightDir  int32
	locUseTex    int32
	locFlatShade int32
	locTexture   int32

	meshes   []gpuMesh
	textures map[int64]uint32
}

// lightDir is the fixed scene light, pointing down and slightly forward.
var lightDir = math.Vec3{X: -0.3, Y: -0.8, Z: -0.5}.Normalize()

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		textures: make(map[int64]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.12, 0.13, 0.16, 1.0)

	program, err := compileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	r.program = program
	r.locViewProj = getUniform(program, "uViewProj")
	r.locColor = getUniform(program, "uColor")
	r.locLightDir = getUniform(program, "uLightDir")
	r.locUseTex = getUniform(program, "uUseTexture")
	r.locFlatShade = getUniform(program, "uFlatShade")
	r.locTexture = getUniform(program, "uTexture")

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// SetScene replaces the uploaded scene. Previous buffers and textures are
// deleted first; rebuilds happen on every drag step, so leaks here would
// exhaust the GPU quickly.
func (r *Renderer) SetScene(s *scene.Scene, images map[int64]image.Image) {
	r.clearScene()
	if s == nil {
		return
	}

	for _, node := range s.Nodes {
		if node.Mesh == nil || len(node.Mesh.Indices) == 0 {
			continue
		}

		gm := gpuMesh{
			color:       node.Color,
			mode:        gl.TRIANGLES,
			flatShade:   node.Kind == scene.KindGround || node.Kind == scene.KindHighlight,
			translucent: node.Color[3] < 1,
		}
		if node.Mesh.Primitive == mesh.Lines {
			gm.mode = gl.LINES
		}

		if node.Kind == scene.KindDecal {
			gm.texture = r.decalTexture(node.DecalID, images)
		}

		r.uploadMesh(&gm, node.Mesh)
		r.meshes = append(r.meshes, gm)
	}

	logger.Debug("scene uploaded",
		zap.Int("meshes", len(r.meshes)),
		zap.Int("textures", len(r.textures)),
	)
}

// decalTexture uploads a decal image once per ID and reuses it across
// rebuild and highlight nodes.
func (r *Renderer) decalTexture(id int64, images map[int64]image.Image) uint32 {
	if tex, ok := r.textures[id]; ok {
		return tex
	}
	tex := uploadTexture(images[id])
	if tex != 0 {
		r.textures[id] = tex
	}
	return tex
}

// uploadMesh creates the VAO/VBO/EBO for one node. Vertices are interleaved
// position, normal, uv.
func (r *Renderer) uploadMesh(gm *gpuMesh, m *mesh.Mesh) {
	data := make([]float32, 0, len(m.Vertices)*8)
	for _, v := range m.Vertices {
		data = append(data, v.Position[0], v.Position[1], v.Position[2])
		data = append(data, v.Normal[0], v.Normal[1], v.Normal[2])
		data = append(data, v.TexCoord[0], v.TexCoord[1])
	}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
	gm.indexCount = int32(len(m.Indices))

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the uploaded scene with the given view-projection matrix.
// Opaque meshes go first, translucent ones after with the depth write off.
func (r *Renderer) Draw(viewProj math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(r.locLightDir, lightDir.X, lightDir.Y, lightDir.Z)
	gl.Uniform1i(r.locTexture, 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for i := range r.meshes {
		if !r.meshes[i].translucent {
			r.drawMesh(&r.meshes[i])
		}
	}
	gl.DepthMask(false)
	for i := range r.meshes {
		if r.meshes[i].translucent {
			r.drawMesh(&r.meshes[i])
		}
	}
	gl.DepthMask(true)

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) drawMesh(gm *gpuMesh) {
	gl.Uniform4f(r.locColor, gm.color[0], gm.color[1], gm.color[2], gm.color[3])
	setBool(r.locUseTex, gm.texture != 0)
	setBool(r.locFlatShade, gm.flatShade)
	if gm.texture != 0 {
		gl.BindTexture(gl.TEXTURE_2D, gm.texture)
	}

	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gm.mode, gm.indexCount, gl.UNSIGNED_INT, nil)
}

func setBool(loc int32, v bool) {
	if v {
		gl.Uniform1i(loc, 1)
	} else {
		gl.Uniform1i(loc, 0)
	}
}

// clearScene deletes the current scene's GPU objects.
func (r *Renderer) clearScene() {
	for i := range r.meshes {
		gm := &r.meshes[i]
		if gm.vao != 0 {
			gl.DeleteVertexArrays(1, &gm.vao)
		}
		if gm.vbo != 0 {
			gl.DeleteBuffers(1, &gm.vbo)
		}
		if gm.ebo != 0 {
			gl.DeleteBuffers(1, &gm.ebo)
		}
	}
	r.meshes = r.meshes[:0]

	for _, tex := range r.textures {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
		}
	}
	r.textures = make(map[int64]uint32)
}

// Destroy releases all resources.
func (r *Renderer) Destroy() {
	logger.Info("closing renderer")
	r.clearScene()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
