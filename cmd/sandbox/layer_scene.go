package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glrender/engine/assets"
	"github.com/hubastard/glrender/engine/colors"
	"github.com/hubastard/glrender/engine/core"
	glbackend "github.com/hubastard/glrender/engine/gfx/gl"
	"github.com/hubastard/glrender/engine/gfx/rendering"
	"github.com/hubastard/glrender/engine/gfx/status"
	"github.com/hubastard/glrender/engine/logx"
	"github.com/hubastard/glrender/engine/scene"
)

// ------- Lit cube grid: L toggles the lamp, M the materials, P the shader -------
type LayerScene struct {
	cam  *scene.PerspectiveCamera
	ctrl *scene.Controller

	lit   status.Shader
	unlit *glbackend.Program

	lampSlot  uint8
	lampOn    bool
	materials bool
	t         float32
}

var cubeColors = []colors.Color{colors.Red, colors.Green, colors.Blue, colors.Yellow, colors.Magenta, colors.Cyan, colors.White, colors.Gray, colors.Red}

func (l *LayerScene) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewPerspective(e.Config.FovDeg, w, h)
	l.cam.Position = mgl32.Vec3{0, 1.5, 6}
	l.cam.Rotate(0, -0.2)
	l.ctrl = scene.NewController(l.cam)

	l.lit = e.Renderer.DefaultShader()
	vs, fs, err := assets.LoadProgramSources(e.Config.ShaderDir, "unlit")
	if err == nil {
		l.unlit, err = glbackend.NewProgram("unlit", vs, fs)
	}
	if err != nil {
		logx.Logger().Warn("unlit shader unavailable, P toggle disabled", "error", err)
	}
	e.Context.SetShader(l.lit)

	ctx := e.Context
	sun := status.DefaultLight()
	sun.Type = status.DirectionalLight
	sun.Direction = mgl32.Vec3{-0.4, -1, -0.3}.Normalize()
	sun.Ambient = colors.White.Scale(0.15).Vec4()
	sun.Diffuse = colors.White.Scale(0.7).Vec4()
	if _, err := ctx.EnableLight(sun); err != nil {
		panic(err)
	}

	spot := status.DefaultLight()
	spot.Type = status.SpotLight
	spot.Position = mgl32.Vec3{0, 4, 0}
	spot.Direction = mgl32.Vec3{0, -1, 0}
	spot.Diffuse = colors.Blue.Vec4()
	spot.Exponent = 8
	spot.Cutoff = 30
	if _, err := ctx.EnableLight(spot); err != nil {
		panic(err)
	}

	l.enableLamp(ctx)
	l.materials = true

	if err := ctx.SetTextureUnitUsage(0, status.Disabled); err != nil {
		panic(err)
	}
	ctx.SetPointParameters(status.PointParameters{Size: 4, MinSize: 1, MaxSize: 16})
}

func (l *LayerScene) OnDetach(e *core.Engine) {
	if l.unlit != nil {
		e.Context.ForgetShader(l.unlit)
		l.unlit.Delete()
		l.unlit = nil
	}
}

func (l *LayerScene) enableLamp(ctx *rendering.Context) {
	lamp := status.DefaultLight()
	lamp.Position = mgl32.Vec3{2, 1, 2}
	lamp.Diffuse = colors.Red.Vec4()
	lamp.Linear = 0.2
	slot, err := ctx.EnableLight(lamp)
	if err != nil {
		panic(err)
	}
	l.lampSlot, l.lampOn = slot, true
}

func (l *LayerScene) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e.Input, float32(dt))
	l.t += float32(dt)

	ctx := e.Context
	if e.Input.WasPressed(core.KeyL) {
		if l.lampOn {
			if err := ctx.DisableLight(l.lampSlot); err != nil {
				panic(err)
			}
			l.lampOn = false
		} else {
			l.enableLamp(ctx)
		}
	}
	if e.Input.WasPressed(core.KeyM) {
		l.materials = !l.materials
	}
	if e.Input.WasPressed(core.KeyP) && l.unlit != nil {
		if ctx.Shader() == l.lit {
			ctx.SetShader(l.unlit)
		} else {
			ctx.SetShader(l.lit)
		}
	}
}

func (l *LayerScene) OnRender(e *core.Engine, alpha float64) {
	ctx := e.Context
	view := l.cam.View()
	// set every frame; unchanged values are not re-sent
	ctx.SetCameraInverseMatrix(view)
	ctx.SetProjectionMatrix(l.cam.Projection())

	for i, c := range cubeColors {
		x := float32(i%3-1) * 2
		z := float32(i/3-1) * 2
		model := mgl32.Translate3D(x, 0, z).Mul4(mgl32.HomogRotate3DY(l.t + float32(i)))

		ctx.PushStatus()
		ctx.SetModelViewMatrix(view.Mul4(model))
		if l.materials {
			m := status.DefaultMaterial()
			m.Diffuse = c.Vec4()
			m.Ambient = c.Scale(0.3).Vec4()
			m.Specular = colors.White.Vec4()
			m.Shininess = 32
			ctx.SetMaterial(m)
		} else {
			ctx.DisableMaterial()
		}
		ctx.ApplyChanges()
		e.Renderer.DrawDemoCube()
		if err := ctx.PopStatus(); err != nil {
			panic(err)
		}
	}
}

func (l *LayerScene) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}
