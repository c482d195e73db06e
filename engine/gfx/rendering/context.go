// Package rendering keeps a stack of requested pipeline states and applies
// only what changed to the graphics backend before each draw.
package rendering

import (
	"errors"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glrender/engine/gfx/status"
	"github.com/hubastard/glrender/engine/logx"
)

var ErrStackUnderflow = errors.New("rendering: cannot pop the root status")

// Statistics counts the work done by ApplyChanges since the last reset.
type Statistics struct {
	Passes        int // ApplyChanges calls
	FullPasses    int // passes that applied every group
	GroupsApplied int
	GroupsSkipped int
}

// Context tracks requested state (a stack of statuses) and, per shader, the
// state last sent to the backend. Shaders used as keys must be comparable.
type Context struct {
	applier Applier
	stack   []*status.Status
	shader  status.Shader
	applied map[status.Shader]*status.Status
	stats   Statistics
}

// NewContext returns a context with one root status, bound to the fixed
// pipeline.
func NewContext(a Applier) *Context {
	return &Context{
		applier: a,
		stack:   []*status.Status{status.New(nil)},
		applied: make(map[status.Shader]*status.Status, 4),
	}
}

// Status returns the top of the stack. Mutate it through the context.
func (c *Context) Status() *status.Status { return c.stack[len(c.stack)-1] }

func (c *Context) Depth() int { return len(c.stack) }

// PushStatus opens a nested scope starting from a copy of the current state.
func (c *Context) PushStatus() {
	c.stack = append(c.stack, c.Status().Clone())
}

// PopStatus discards the innermost scope. The enclosing state is re-applied
// lazily by the next ApplyChanges.
func (c *Context) PopStatus() error {
	if len(c.stack) == 1 {
		return ErrStackUnderflow
	}
	c.stack[len(c.stack)-1] = nil
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// ---- shaders ----

func (c *Context) Shader() status.Shader { return c.shader }

// SetShader makes sh the active program (nil for the fixed pipeline).
func (c *Context) SetShader(sh status.Shader) {
	if sh == c.shader {
		return
	}
	c.shader = sh
	c.applier.UseShader(sh)
}

// ForgetShader drops the applied state kept for sh. Call it when the program
// is deleted; the context never owns shaders.
func (c *Context) ForgetShader(sh status.Shader) {
	delete(c.applied, sh)
	if sh == c.shader && sh != nil {
		c.shader = nil
		c.applier.UseShader(nil)
	}
}

// Invalidate forces the next ApplyChanges to apply every group, e.g. after
// foreign code touched the pipeline.
func (c *Context) Invalidate() {
	clear(c.applied)
}

func (c *Context) appliedStatus() *status.Status {
	act, ok := c.applied[c.shader]
	if !ok {
		act = status.New(c.shader)
		c.applied[c.shader] = act
	}
	return act
}

// ---- state setters (top of stack) ----

func (c *Context) SetCameraInverseMatrix(m mgl32.Mat4) { c.Status().SetCameraInverseMatrix(m) }

func (c *Context) EnableLight(l status.LightParameters) (uint8, error) {
	return c.Status().EnableLight(l)
}

func (c *Context) DisableLight(slot uint8) error { return c.Status().DisableLight(slot) }

func (c *Context) SetLightParameters(slot uint8, l status.LightParameters) error {
	return c.Status().SetLightParameters(slot, l)
}

func (c *Context) SetMaterial(m status.MaterialParameters) { c.Status().SetMaterial(m) }
func (c *Context) DisableMaterial()                        { c.Status().DisableMaterial() }
func (c *Context) SetModelViewMatrix(m mgl32.Mat4)         { c.Status().SetModelViewMatrix(m) }
func (c *Context) MultModelViewMatrix(m mgl32.Mat4)        { c.Status().MultModelViewMatrix(m) }
func (c *Context) SetPointParameters(p status.PointParameters) {
	c.Status().SetPointParameters(p)
}
func (c *Context) SetProjectionMatrix(m mgl32.Mat4) { c.Status().SetProjectionMatrix(m) }

func (c *Context) SetTextureUnitUsage(unit uint8, use status.TexUnitUsage) error {
	return c.Status().SetTextureUnitUsage(unit, use)
}

// ---- application ----

// ApplyChanges sends the requested state to the backend for the active
// shader. The first pass for a shader applies every group; later passes only
// the groups that differ from what that shader last received.
func (c *Context) ApplyChanges() Groups {
	req := c.Status()
	act := c.appliedStatus()
	full := !act.Initialized()

	var g Groups
	if full || req.CameraInverseMatrixChanged(act) {
		c.applier.ApplyCamera(req.CameraMatrix(), req.CameraInverseMatrix())
		act.UpdateCameraMatrix(req)
		g |= GroupCamera
	}
	if full || req.LightsChanged(act) {
		c.applier.ApplyLights(req.EnabledLights())
		act.UpdateLights(req)
		g |= GroupLights
	}
	if full || req.MaterialChanged(act) {
		c.applier.ApplyMaterial(req.MaterialEnabled(), req.MaterialParameters())
		act.UpdateMaterial(req)
		g |= GroupMaterial
	}
	if full || req.ModelViewMatrixChanged(act) {
		c.applier.ApplyModelView(req.ModelViewMatrix())
		act.UpdateModelViewMatrix(req)
		g |= GroupModelView
	}
	if full || req.PointParametersChanged(act) {
		c.applier.ApplyPointParameters(req.PointParameters())
		act.UpdatePointParameters(req)
		g |= GroupPointParameters
	}
	if full || req.ProjectionMatrixChanged(act) {
		c.applier.ApplyProjection(req.ProjectionMatrix())
		act.UpdateProjectionMatrix(req)
		g |= GroupProjection
	}
	if full || req.TextureUnitsChanged(act) {
		c.applier.ApplyTextureUnits(req.TextureUnitUsages())
		act.UpdateTextureUnits(req)
		g |= GroupTextureUnits
	}

	c.stats.Passes++
	c.stats.GroupsApplied += g.Count()
	c.stats.GroupsSkipped += AllGroups.Count() - g.Count()
	if full {
		act.MarkInitialized()
		c.stats.FullPasses++
		logx.Logger().Debug("full state application", "shader", shaderID(c.shader))
	} else if g != 0 {
		logx.Logger().Debug("state applied", "shader", shaderID(c.shader), slog.String("groups", g.String()))
	}
	return g
}

// Stats returns counters accumulated since the last ResetStats.
func (c *Context) Stats() Statistics { return c.stats }

func (c *Context) ResetStats() { c.stats = Statistics{} }

func shaderID(sh status.Shader) uint32 {
	if sh == nil {
		return 0
	}
	return sh.ProgramID()
}
