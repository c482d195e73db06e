package glbackend

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glrender/engine/gfx/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeVertices(t *testing.T) {
	v := cubeVertices()
	require.Len(t, v, 36*6)

	for i := 0; i < 36; i++ {
		pos := mgl32.Vec3{v[i*6], v[i*6+1], v[i*6+2]}
		n := mgl32.Vec3{v[i*6+3], v[i*6+4], v[i*6+5]}
		assert.InDelta(t, 1, n.Len(), 1e-6)
		// every vertex lies on the face its normal points out of
		assert.InDelta(t, 0.5, pos.Dot(n), 1e-6)
		for _, c := range pos {
			assert.InDelta(t, 0.5, mgl32.Abs(c), 1e-6)
		}
	}
}

func TestCubeWindingIsCounterClockwise(t *testing.T) {
	v := cubeVertices()
	for tri := 0; tri < 12; tri++ {
		at := func(k int) mgl32.Vec3 {
			i := (tri*3 + k) * 6
			return mgl32.Vec3{v[i], v[i+1], v[i+2]}
		}
		n := mgl32.Vec3{v[tri*18+3], v[tri*18+4], v[tri*18+5]}
		face := at(1).Sub(at(0)).Cross(at(2).Sub(at(0)))
		assert.Greater(t, face.Dot(n), float32(0), "triangle %d", tri)
	}
}

func TestUniformNames(t *testing.T) {
	assert.Equal(t, "sg_light[0].position", lightUniforms[0].position)
	assert.Equal(t, "sg_light[7].cosCutoff", lightUniforms[status.MaxLights-1].cosCutoff)
	assert.Equal(t, "sg_textureUsage[3]", textureUniforms[3])
	assert.Equal(t, "sg_material.shininess", materialUniforms.shininess)
}

func TestApplyWithoutProgramIsNoop(t *testing.T) {
	r := &RendererGL{}
	// no GL calls happen without a bound program
	r.ApplyCamera(mgl32.Ident4(), mgl32.Ident4())
	r.ApplyLights([]status.LightParameters{status.DefaultLight()})
	r.ApplyMaterial(true, status.DefaultMaterial())
	r.ApplyModelView(mgl32.Ident4())
	r.ApplyPointParameters(status.DefaultPointParameters())
	r.ApplyProjection(mgl32.Ident4())
	r.ApplyTextureUnits([status.MaxTextures]status.TexUnitUsage{})
	r.DrawDemoCube()
	assert.Nil(t, r.current)
}
