// Package renderer draws scene graphs with OpenGL.
package renderer

import (
	"fmt"
	"strconv"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ringspin/internal/engine/camera"
	"github.com/Faultbox/ringspin/internal/engine/framebuffer"
	"github.com/Faultbox/ringspin/internal/engine/lighting"
	"github.com/Faultbox/ringspin/internal/engine/model"
	"github.com/Faultbox/ringspin/internal/engine/scene"
	"github.com/Faultbox/ringspin/internal/engine/shader"
	"github.com/Faultbox/ringspin/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// gpuMesh is uploaded geometry.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// gpuTexture is an uploaded texture and the version it was uploaded at.
type gpuTexture struct {
	id      uint32
	version int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	lights  *lighting.Buffer

	meshes   map[*model.Mesh]*gpuMesh
	textures map[*scene.Texture]*gpuTexture

	offscreen *framebuffer.Framebuffer
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		lights:   lighting.NewBuffer(),
		meshes:   make(map[*model.Mesh]*gpuMesh),
		textures: make(map[*scene.Texture]*gpuTexture),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	r.log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)

	var err error
	r.program, err = shader.New(meshVertexShader, meshFragmentShader, map[string]string{
		"MAX_POINT_LIGHTS": strconv.Itoa(lighting.MaxPointLights),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh shader: %w", err)
	}

	r.SetSize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.id)
	}
	r.meshes = map[*model.Mesh]*gpuMesh{}
	r.textures = map[*scene.Texture]*gpuTexture{}
	if r.offscreen != nil {
		r.offscreen.Destroy()
		r.offscreen = nil
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// SetSize resizes the drawing area.
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the drawing area size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Render draws every visible mesh of s as seen from cam.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) error {
	bg := s.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.lights.Collect(s.Lights())

	p := r.program
	p.Use()
	p.SetMat4("uViewProj", cam.ViewProjection())
	p.SetInt("uLightCount", int32(r.lights.Count()))
	p.SetVec3Array("uLightPos", r.lights.Positions())
	p.SetVec3Array("uLightColor", r.lights.Colors())
	p.SetFloatArray("uLightRange", r.lights.Ranges())
	p.SetInt("uAlphaMap", 0)

	for _, m := range drawOrder(s.Meshes(), cam.ViewMatrix()) {
		r.drawMesh(m)
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func (r *Renderer) drawMesh(m *scene.Mesh) {
	if m.Geometry == nil || len(m.Geometry.Indices) == 0 {
		return
	}
	gm := r.uploadMesh(m.Geometry)

	mat := m.Material
	if mat == nil {
		mat = &scene.Material{Color: [3]float32{1, 1, 1}}
	}

	world := m.WorldMatrix()
	p := r.program
	p.SetMat4("uModel", world)
	p.SetMat3("uNormalMatrix", world.NormalMatrix())
	p.SetVec3("uColor", mat.Color)
	p.SetFloat("uAlphaTest", mat.AlphaTest)

	if mat.AlphaMap != nil && mat.AlphaMap.Image != nil {
		tex := r.uploadTexture(mat.AlphaMap)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		p.SetInt("uHasAlphaMap", 1)
		p.SetVec2("uUVRepeat", mat.AlphaMap.Repeat)
	} else {
		p.SetInt("uHasAlphaMap", 0)
		p.SetVec2("uUVRepeat", [2]float32{1, 1})
	}

	if cull, back := cullState(mat.Side); cull {
		gl.Enable(gl.CULL_FACE)
		if back {
			gl.CullFace(gl.BACK)
		} else {
			gl.CullFace(gl.FRONT)
		}
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	if mat.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, gm.count, gl.UNSIGNED_INT, nil)
}

// uploadMesh returns the GPU copy of geometry, uploading it on first use.
func (r *Renderer) uploadMesh(geometry *model.Mesh) *gpuMesh {
	if gm, ok := r.meshes[geometry]; ok {
		return gm
	}

	gm := &gpuMesh{count: int32(len(geometry.Indices))}
	data := interleave(geometry)

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geometry.Indices)*4, unsafe.Pointer(&geometry.Indices[0]), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.meshes[geometry] = gm
	r.log.Debug("mesh uploaded",
		zap.Int("vertices", len(geometry.Vertices)),
		zap.Int32("indices", gm.count),
	)
	return gm
}

// uploadTexture returns the GL texture for t, re-uploading when t.Version
// has changed.
func (r *Renderer) uploadTexture(t *scene.Texture) uint32 {
	gt, ok := r.textures[t]
	if ok && gt.version == t.Version {
		return gt.id
	}
	if !ok {
		gt = &gpuTexture{}
		gl.GenTextures(1, &gt.id)
		r.textures[t] = gt
	}

	pix, w, h := alphaRows(t.Image)

	gl.BindTexture(gl.TEXTURE_2D, gt.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(t.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(t.WrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(t.WrapT))

	gt.version = t.Version
	r.log.Debug("texture uploaded", zap.Int("width", w), zap.Int("height", h), zap.Int("version", t.Version))
	return gt.id
}

func glFilter(f scene.Filter) int32 {
	if f == scene.NearestFilter {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func glWrap(w scene.Wrap) int32 {
	if w == scene.RepeatWrapping {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// RenderOffscreen draws s into an offscreen target of the given size and
// returns its RGBA pixels, bottom row first. The on-screen viewport is left
// untouched.
func (r *Renderer) RenderOffscreen(s *scene.Scene, cam *camera.Perspective, width, height int) ([]byte, int, int, error) {
	if r.offscreen == nil {
		fb, err := framebuffer.New(width, height)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("offscreen target: %w", err)
		}
		r.offscreen = fb
	} else {
		r.offscreen.Resize(width, height)
	}

	restore := r.offscreen.Bind()
	err := r.Render(s, cam)
	pixels := r.offscreen.ReadPixels()
	restore()

	w, h := r.offscreen.Size()
	if err != nil {
		return nil, 0, 0, err
	}
	return pixels, w, h, nil
}
