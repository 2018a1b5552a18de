// Package renderer draws the textured paint mesh with OpenGL.
//
// Geometry is uploaded non-indexed, three vertices per face, because
// the two texture mappings assign coordinates per face corner: a
// vertex shared by several faces carries a different UV in each.
// Positions and normals are static; the UV buffer is re-uploaded
// whenever the active mapping or its coordinates change.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/footsoldier/chameleon/internal/engine/mesh"
	"github.com/footsoldier/chameleon/internal/engine/shader"
	"github.com/footsoldier/chameleon/internal/engine/texture"
	"github.com/footsoldier/chameleon/internal/logger"
	"github.com/footsoldier/chameleon/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Renderer owns the GL resources for one paintable mesh: the shader
// program, the vertex buffers and one texture per mapping.
type Renderer struct {
	config Config

	program     uint32
	locMVP      int32
	locTexture  int32
	locLit      int32
	locLightDir int32

	vao         uint32
	vertexVBO   uint32
	uvVBO       uint32
	vertexCount int32

	viewingTex uint32
	drawingTex uint32

	mesh     *mesh.Mesh
	textures *texture.Manager

	uvScratch []float32
}

// New creates a renderer for the mesh. Must be called after the OpenGL
// context exists.
func New(cfg Config, m *mesh.Mesh, tex *texture.Manager) (*Renderer, error) {
	if len(m.Faces) == 0 {
		return nil, fmt.Errorf("mesh has no faces")
	}

	r := &Renderer{
		config:   cfg,
		mesh:     m,
		textures: tex,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	gpu := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", gpu),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	bg := cfg.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1.0)

	var err error
	r.program, err = shader.CompileProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locMVP = shader.MustGetUniform(r.program, "uMVP")
	r.locTexture = shader.MustGetUniform(r.program, "uTexture")
	r.locLit = shader.MustGetUniform(r.program, "uLit")
	r.locLightDir = shader.MustGetUniform(r.program, "uLightDir")

	gl.UseProgram(r.program)
	gl.Uniform3f(r.locLightDir, 0.35, 0.55, 0.75)
	gl.UseProgram(0)

	r.buildBuffers()
	r.viewingTex = newPaintTexture()
	r.drawingTex = newPaintTexture()

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vertexVBO != 0 {
		gl.DeleteBuffers(1, &r.vertexVBO)
	}
	if r.uvVBO != 0 {
		gl.DeleteBuffers(1, &r.uvVBO)
	}
	if r.viewingTex != 0 {
		gl.DeleteTextures(1, &r.viewingTex)
	}
	if r.drawingTex != 0 {
		gl.DeleteTextures(1, &r.drawingTex)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// SetBackground changes the clear color, for live config reload.
func (r *Renderer) SetBackground(bg color.RGBA) {
	r.config.Background = bg
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1.0)
}

// Resize updates the viewport after a window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame under the given view-projection. Dirty UV and
// raster data is uploaded first. The viewing mapping is drawn with
// Lambert shading so the blank mesh reads as a solid; the drawing
// mapping is drawn unlit so painted pixels appear exactly as painted.
func (r *Renderer) Draw(viewProj math.Mat4) {
	r.syncUVs()
	r.syncTextures()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, &viewProj[0])

	lit := int32(1)
	tex := r.viewingTex
	if r.mesh.Active() == mesh.MappingDrawing {
		lit = 0
		tex = r.drawingTex
	}
	gl.Uniform1i(r.locLit, lit)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(r.locTexture, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
}

// syncUVs re-uploads the UV buffer when the active mapping changed.
func (r *Renderer) syncUVs() {
	if !r.mesh.TakeUVDirty() {
		return
	}

	buf := r.uvScratch[:0]
	for _, f := range r.mesh.ActiveUV() {
		for _, c := range f {
			buf = append(buf, c.X, c.Y)
		}
	}
	r.uvScratch = buf

	gl.BindBuffer(gl.ARRAY_BUFFER, r.uvVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, unsafe.Pointer(&buf[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// syncTextures re-uploads any raster whose pixels changed since the
// last frame.
func (r *Renderer) syncTextures() {
	if r.textures.Viewing().TakeDirty() {
		uploadTexture(r.viewingTex, r.textures.Viewing().Image())
	}
	if r.textures.Drawing().TakeDirty() {
		uploadTexture(r.drawingTex, r.textures.Drawing().Image())
		r.textures.SyncDone()
	}
}

// buildBuffers expands the face list into flat vertex arrays and
// uploads them.
func (r *Renderer) buildBuffers() {
	m := r.mesh
	verts := make([]float32, 0, len(m.Faces)*3*6)
	for _, f := range m.Faces {
		for _, idx := range f {
			p := m.Positions[idx]
			n := m.Normals[idx]
			verts = append(verts, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
		}
	}
	r.vertexCount = int32(len(m.Faces) * 3)
	r.uvScratch = make([]float32, 0, len(m.Faces)*3*2)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vertexVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertexVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.uvVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.uvVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Faces)*3*2*4, nil, gl.DYNAMIC_DRAW)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh buffers created",
		zap.Uint32("vao", r.vao),
		zap.Int32("vertices", r.vertexCount),
	)
}

// newPaintTexture allocates a texture configured for canvas sampling:
// linear filtering, no mipmaps, clamped edges.
func newPaintTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// uploadTexture replaces a texture's storage with the raster pixels.
// The drawing raster changes size on window resize, so storage is
// redefined rather than updated in place.
func uploadTexture(id uint32, img *image.RGBA) {
	b := img.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
