package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glrender/engine/core"
)

// Controller: WASD move, R/F up/down, Q/E yaw, scroll zoom.
type Controller struct {
	MoveSpeed float32 // units per second
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // degrees per scroll step
	Camera    *PerspectiveCamera
}

func NewController(cam *PerspectiveCamera) *Controller {
	return &Controller{
		MoveSpeed: 2.5,
		RotSpeed:  1.5,
		ZoomSpeed: 2,
		Camera:    cam,
	}
}

func (cc *Controller) Update(in *core.Input, dt float32) {
	speed := cc.MoveSpeed * dt
	rot := cc.RotSpeed * dt

	var right, up, forward float32
	if in.IsKeyDown(core.KeyW) {
		forward += speed
	}
	if in.IsKeyDown(core.KeyS) {
		forward -= speed
	}
	if in.IsKeyDown(core.KeyD) {
		right += speed
	}
	if in.IsKeyDown(core.KeyA) {
		right -= speed
	}
	if in.IsKeyDown(core.KeyR) {
		up += speed
	}
	if in.IsKeyDown(core.KeyF) {
		up -= speed
	}
	if right != 0 || up != 0 || forward != 0 {
		cc.Camera.Move(right, up, forward)
	}

	if in.IsKeyDown(core.KeyQ) {
		cc.Camera.Rotate(-rot, 0)
	}
	if in.IsKeyDown(core.KeyE) {
		cc.Camera.Rotate(rot, 0)
	}

	if s := in.Scroll(); s != 0 {
		cc.Camera.SetFov(mgl32.RadToDeg(cc.Camera.FovY) - float32(s)*cc.ZoomSpeed)
	}
}
