package glbackend

import (
	"math"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glrender/engine/core"
	"github.com/hubastard/glrender/engine/gfx/status"
	"github.com/hubastard/glrender/engine/logx"
)

// RendererGL is the OpenGL 3.3 core backend. Pipeline state arrives through
// the Apply* methods and is written as sg_* uniforms of the bound program.
type RendererGL struct {
	win     core.Window
	lit     *Program
	current *Program
	vao     uint32
	vbo     uint32
}

var _ core.Renderer = (*RendererGL)(nil)

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.lit, err = NewProgram("lit", litVertexSource, litFragmentSource)
	if err != nil {
		return err
	}

	verts := cubeVertices()
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec3 aPos;
	// layout(location = 1) in vec3 aNormal;
	const stride = 6 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.lit != nil {
		r.lit.Delete()
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) DefaultShader() status.Shader { return r.lit }

// DrawDemoCube draws a unit cube with the bound program. Nothing is drawn
// without one.
func (r *RendererGL) DrawDemoCube() {
	if r.current == nil {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)
}

// ---- rendering.Applier ----

func (r *RendererGL) UseShader(sh status.Shader) {
	if sh == nil {
		r.current = nil
		gl.UseProgram(0)
		return
	}
	p, ok := sh.(*Program)
	if !ok {
		panic("glbackend: foreign shader type")
	}
	r.current = p
	gl.UseProgram(p.id)
}

func (r *RendererGL) ApplyCamera(camera, inverse mgl32.Mat4) {
	if p := r.current; p != nil {
		p.setMat4(uCameraMatrix, camera)
		p.setMat4(uCameraInverseMatrix, inverse)
	}
}

func (r *RendererGL) ApplyLights(lights []status.LightParameters) {
	p := r.current
	if p == nil {
		return
	}
	p.setInt(uLightCount, int32(len(lights)))
	for i, l := range lights {
		n := &lightUniforms[i]
		p.setInt(n.typ, int32(l.Type))
		p.setVec3(n.position, l.Position)
		p.setVec3(n.direction, l.Direction)
		p.setVec4(n.ambient, l.Ambient)
		p.setVec4(n.diffuse, l.Diffuse)
		p.setVec4(n.specular, l.Specular)
		p.setFloat(n.constant, l.Constant)
		p.setFloat(n.linear, l.Linear)
		p.setFloat(n.quadratic, l.Quadratic)
		p.setFloat(n.exponent, l.Exponent)
		p.setFloat(n.cosCutoff, float32(math.Cos(float64(mgl32.DegToRad(l.Cutoff)))))
	}
}

func (r *RendererGL) ApplyMaterial(enabled bool, m status.MaterialParameters) {
	p := r.current
	if p == nil {
		return
	}
	p.setBool(uUseMaterials, enabled)
	if !enabled {
		return
	}
	p.setVec4(materialUniforms.ambient, m.Ambient)
	p.setVec4(materialUniforms.diffuse, m.Diffuse)
	p.setVec4(materialUniforms.specular, m.Specular)
	p.setVec4(materialUniforms.emission, m.Emission)
	p.setFloat(materialUniforms.shininess, m.Shininess)
	p.setBool(materialUniforms.colorMaterial, m.ColorMaterial)
}

func (r *RendererGL) ApplyModelView(m mgl32.Mat4) {
	if p := r.current; p != nil {
		p.setMat4(uModelViewMatrix, m)
	}
}

// ApplyPointParameters writes point state as program uniforms only; the
// context-wide gl.PointSize is left alone.
func (r *RendererGL) ApplyPointParameters(pp status.PointParameters) {
	if p := r.current; p != nil {
		p.setFloat(uPointSize, pp.Size)
		p.setFloat(uPointSizeMin, pp.MinSize)
		p.setFloat(uPointSizeMax, pp.MaxSize)
		p.setBool(uPointSmooth, pp.Smooth)
	}
}

func (r *RendererGL) ApplyProjection(m mgl32.Mat4) {
	if p := r.current; p != nil {
		p.setMat4(uProjectionMatrix, m)
	}
}

func (r *RendererGL) ApplyTextureUnits(usages [status.MaxTextures]status.TexUnitUsage) {
	p := r.current
	if p == nil {
		return
	}
	for i, u := range usages {
		p.setInt(textureUniforms[i], int32(u))
	}
	logx.Logger().Debug("texture unit usages applied", "program", p.name)
}

// cubeVertices returns 36 vertices of a unit cube: pos3 + normal3.
func cubeVertices() []float32 {
	faces := [6]struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

	out := make([]float32, 0, 36*6)
	for _, f := range faces {
		c := f.n.Mul(0.5)
		for _, k := range corners {
			pos := c.Add(f.u.Mul(k[0] * 0.5)).Add(f.v.Mul(k[1] * 0.5))
			out = append(out, pos[0], pos[1], pos[2], f.n[0], f.n[1], f.n[2])
		}
	}
	return out
}
