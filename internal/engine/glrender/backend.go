// Package glrender implements the scene drawing backend on OpenGL 4.1 core.
package glrender

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/brickforge/partscene/internal/logger"
	"github.com/brickforge/partscene/pkg/geometry"
	"github.com/brickforge/partscene/pkg/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds backend configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
}

// meshBuffers holds the GL objects backing one uploaded geometry.
type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Backend uploads geometry into vertex arrays and draws them with a
// single lit shader program. It implements scene.Backend.
type Backend struct {
	config Config

	program  uint32
	uniforms uniformLocations

	meshes map[scene.MeshID]meshBuffers
	nextID scene.MeshID
}

// New creates the GL backend.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Backend, error) {
	b := &Backend{
		config: cfg,
		meshes: make(map[scene.MeshID]meshBuffers),
		nextID: 1,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	// Create the lit shader program
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	b.program = program
	b.uniforms = resolveUniforms(program)

	logger.Debug("shader program created", zap.Uint32("program", program))

	return b, nil
}

// Close cleans up all GL resources owned by the backend.
func (b *Backend) Close() {
	logger.Info("closing render backend", zap.Int("meshes", len(b.meshes)))
	for _, m := range b.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	b.meshes = make(map[scene.MeshID]meshBuffers)
	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
}

// Resize handles window resize.
func (b *Backend) Resize(width, height int) {
	b.config.Width = width
	b.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("backend resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// BeginFrame clears the color and depth buffers.
func (b *Backend) BeginFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// UploadGeometry copies an interleaved vertex buffer and its index
// buffer into GL objects and returns the id to draw them with.
func (b *Backend) UploadGeometry(g geometry.Geometry) (scene.MeshID, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	var m meshBuffers
	m.indexCount = int32(len(g.Indices))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, geometry.VertexStride*4, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, geometry.VertexStride*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*2, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	// Unbind the VAO first: the element buffer binding lives in VAO state.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	id := b.nextID
	b.nextID++
	b.meshes[id] = m

	logger.Debug("geometry uploaded",
		zap.Uint32("mesh", uint32(id)),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("triangles", g.TriangleCount()),
	)
	return id, nil
}

// SetUniforms binds the lit program and loads the per-draw state.
func (b *Backend) SetUniforms(u scene.Uniforms) {
	gl.UseProgram(b.program)

	gl.UniformMatrix4fv(b.uniforms.model, 1, false, u.Model.Ptr())
	gl.UniformMatrix4fv(b.uniforms.view, 1, false, u.View.Ptr())
	gl.UniformMatrix4fv(b.uniforms.projection, 1, false, u.Projection.Ptr())
	gl.UniformMatrix4fv(b.uniforms.normalMatrix, 1, false, u.Normal.Ptr())

	gl.Uniform3f(b.uniforms.color, u.Color[0], u.Color[1], u.Color[2])
	gl.Uniform1f(b.uniforms.shininess, u.Shininess)
	var mirror float32
	if u.Mirror {
		mirror = 1
	}
	gl.Uniform1f(b.uniforms.mirror, mirror)

	gl.Uniform3f(b.uniforms.lightDir, u.LightDir.X, u.LightDir.Y, u.LightDir.Z)
	gl.Uniform3f(b.uniforms.ambientColor, u.AmbientColor[0], u.AmbientColor[1], u.AmbientColor[2])
	gl.Uniform3f(b.uniforms.diffuseColor, u.DiffuseColor[0], u.DiffuseColor[1], u.DiffuseColor[2])
	gl.Uniform3f(b.uniforms.viewPos, u.CameraPos.X, u.CameraPos.Y, u.CameraPos.Z)
}

// ReadPixels returns the framebuffer contents as RGBA bytes in GL row
// order, bottom-up, along with the framebuffer size.
func (b *Backend) ReadPixels() ([]byte, int, int) {
	w, h := b.config.Width, b.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// DrawIndexed draws a previously uploaded mesh.
func (b *Backend) DrawIndexed(id scene.MeshID) {
	m, ok := b.meshes[id]
	if !ok {
		logger.Warn("draw of unknown mesh", zap.Uint32("mesh", uint32(id)))
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}
