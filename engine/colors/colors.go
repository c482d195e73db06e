package colors

import "github.com/go-gl/mathgl/mgl32"

// Color is linear RGBA in [0..1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies the colour channels by f, leaving alpha untouched.
func (c Color) Scale(f float32) Color {
	return Color{c[0] * f, c[1] * f, c[2] * f, c[3]}
}

// Vec4 converts c for light and material parameters.
func (c Color) Vec4() mgl32.Vec4 { return mgl32.Vec4(c) }
