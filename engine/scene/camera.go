package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera is a free-look camera. Yaw 0 looks down -Z.
type PerspectiveCamera struct {
	Position   mgl32.Vec3
	Yaw, Pitch float32 // radians
	FovY       float32 // radians
	Aspect     float32
	Near, Far  float32

	view, proj mgl32.Mat4
	dirty      bool
}

func NewPerspective(fovDeg float32, width, height int) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Position: mgl32.Vec3{0, 0, 3},
		FovY:     mgl32.DegToRad(fovDeg),
		Near:     0.1,
		Far:      100,
	}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *PerspectiveCamera) SetViewportPixels(w, h int) {
	if h < 1 {
		h = 1
	}
	c.Aspect = float32(w) / float32(h)
	c.dirty = true
}

// Forward is the unit view direction.
func (c *PerspectiveCamera) Forward() mgl32.Vec3 {
	cy, sy := float32(math.Cos(float64(c.Yaw))), float32(math.Sin(float64(c.Yaw)))
	cp, sp := float32(math.Cos(float64(c.Pitch))), float32(math.Sin(float64(c.Pitch)))
	return mgl32.Vec3{sy * cp, sp, -cy * cp}
}

// Right is the unit vector to the right of Forward, parallel to the ground.
func (c *PerspectiveCamera) Right() mgl32.Vec3 {
	cy, sy := float32(math.Cos(float64(c.Yaw))), float32(math.Sin(float64(c.Yaw)))
	return mgl32.Vec3{cy, 0, sy}
}

// Move translates along the camera's right, up and forward axes.
func (c *PerspectiveCamera) Move(right, up, forward float32) {
	c.Position = c.Position.
		Add(c.Right().Mul(right)).
		Add(mgl32.Vec3{0, up, 0}).
		Add(c.Forward().Mul(forward))
	c.dirty = true
}

const maxPitch = math.Pi/2 - 0.01

func (c *PerspectiveCamera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
	c.dirty = true
}

func (c *PerspectiveCamera) SetFov(deg float32) {
	c.FovY = mgl32.DegToRad(mgl32.Clamp(deg, 10, 120))
	c.dirty = true
}

// View returns the world-to-camera matrix (the inverse camera matrix).
func (c *PerspectiveCamera) View() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.view
}

func (c *PerspectiveCamera) Projection() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.proj
}

func (c *PerspectiveCamera) Recalculate() {
	c.view = mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
	c.proj = mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
	c.dirty = false
}
