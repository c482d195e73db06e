package colors

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestColorHelpers(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0, 0.5}, Red.WithAlpha(0.5))
	assert.Equal(t, Color{0.5, 0.5, 0.5, 1}, White.Scale(0.5))
	assert.Equal(t, mgl32.Vec4{0, 1, 1, 1}, Cyan.Vec4())
}
