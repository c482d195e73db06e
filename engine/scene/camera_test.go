package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glrender/engine/core"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func TestCameraDefaultsLookDownNegativeZ(t *testing.T) {
	c := NewPerspective(60, 800, 400)
	assert.Equal(t, float32(2), c.Aspect)
	assert.True(t, c.Forward().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, tol))

	// the camera position maps to the view-space origin
	p := c.View().Mul4x1(c.Position.Vec4(1))
	assert.True(t, p.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, tol))
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(60), 2, 0.1, 100), c.Projection())
}

func TestCameraMoveMarksDirty(t *testing.T) {
	c := NewPerspective(60, 100, 100)
	before := c.View()

	c.Move(0, 0, 1)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 2}, tol))
	assert.NotEqual(t, before, c.View())

	c.Rotate(mgl32.DegToRad(90), 0)
	assert.True(t, c.Forward().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, tol))
	assert.True(t, c.Right().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, tol))
}

func TestCameraPitchIsClamped(t *testing.T) {
	c := NewPerspective(60, 100, 100)
	c.Rotate(0, 10)
	assert.InDelta(t, maxPitch, c.Pitch, tol)
	c.Rotate(0, -20)
	assert.InDelta(t, -maxPitch, c.Pitch, tol)
}

func TestCameraViewportGuardsZeroHeight(t *testing.T) {
	c := NewPerspective(60, 100, 0)
	assert.Equal(t, float32(100), c.Aspect)
}

func TestControllerMovesCamera(t *testing.T) {
	c := NewPerspective(60, 100, 100)
	cc := NewController(c)
	in := core.NewInput()

	in.Handle(core.EventKey{Key: core.KeyW, Down: true})
	cc.Update(in, 1)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 3 - cc.MoveSpeed}, tol))

	in.Handle(core.EventKey{Key: core.KeyW, Down: false})
	in.Handle(core.EventScroll{Yoff: 5})
	cc.Update(in, 1)
	assert.InDelta(t, 50, mgl32.RadToDeg(c.FovY), 1e-3)
}
