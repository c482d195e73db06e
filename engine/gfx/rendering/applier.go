package rendering

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glrender/engine/gfx/status"
)

// Applier issues the graphics API calls for one state group. The context
// only calls it for groups that differ from what was last applied to the
// active shader.
type Applier interface {
	// UseShader binds sh, or the fixed pipeline when sh is nil.
	UseShader(sh status.Shader)

	ApplyCamera(camera, inverse mgl32.Mat4)
	// ApplyLights receives the enabled lights in ascending slot order.
	ApplyLights(lights []status.LightParameters)
	ApplyMaterial(enabled bool, m status.MaterialParameters)
	ApplyModelView(m mgl32.Mat4)
	ApplyPointParameters(p status.PointParameters)
	ApplyProjection(m mgl32.Mat4)
	ApplyTextureUnits(usages [status.MaxTextures]status.TexUnitUsage)
}
