package status

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShader uint32

func (f fakeShader) ProgramID() uint32 { return uint32(f) }

func TestNewDefaults(t *testing.T) {
	s := New(nil)
	assert.Nil(t, s.Shader())
	assert.False(t, s.Initialized())
	assert.Equal(t, mgl32.Ident4(), s.CameraMatrix())
	assert.Equal(t, mgl32.Ident4(), s.CameraInverseMatrix())
	assert.Equal(t, mgl32.Ident4(), s.ModelViewMatrix())
	assert.Equal(t, mgl32.Ident4(), s.ProjectionMatrix())
	assert.Equal(t, DefaultPointParameters(), s.PointParameters())
	assert.Equal(t, DefaultMaterial(), s.MaterialParameters())
	assert.False(t, s.MaterialEnabled())
	assert.Equal(t, 0, s.NumEnabledLights())
	for _, u := range s.TextureUnitUsages() {
		assert.Equal(t, GeneralPurpose, u)
	}

	other := New(fakeShader(3))
	assert.False(t, s.CameraInverseMatrixChanged(other))
	assert.False(t, s.LightsChanged(other))
	assert.False(t, s.MaterialChanged(other))
	assert.False(t, s.ModelViewMatrixChanged(other))
	assert.False(t, s.PointParametersChanged(other))
	assert.False(t, s.ProjectionMatrixChanged(other))
	assert.False(t, s.TextureUnitsChanged(other))
}

func TestShaderAndInitialized(t *testing.T) {
	sh := fakeShader(7)
	s := New(sh)
	assert.Equal(t, Shader(sh), s.Shader())
	s.MarkInitialized()
	assert.True(t, s.Initialized())

	c := s.Clone()
	assert.True(t, c.Initialized())
	assert.Equal(t, Shader(sh), c.Shader())
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(nil)
	_, err := a.EnableLight(DefaultLight())
	require.NoError(t, err)
	b := a.Clone()

	_, err = b.EnableLight(DefaultLight())
	require.NoError(t, err)
	require.NoError(t, b.SetTextureUnitUsage(2, PointSprite))

	assert.Equal(t, 1, a.NumEnabledLights())
	assert.Equal(t, 2, b.NumEnabledLights())
	u, err := a.TextureUnitUsage(2)
	require.NoError(t, err)
	assert.Equal(t, GeneralPurpose, u)
}

func TestProjectionScenario(t *testing.T) {
	a := New(nil)
	b := a.Clone()
	m := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)

	a.SetProjectionMatrix(m)
	assert.True(t, a.ProjectionMatrixChanged(b))

	b.UpdateProjectionMatrix(a)
	assert.False(t, a.ProjectionMatrixChanged(b))
	assert.False(t, a.ProjectionMatrixChanged(b))
	assert.Equal(t, m, b.ProjectionMatrix())
}

func TestChangedFallsBackToValueComparison(t *testing.T) {
	a := New(nil)
	b := a.Clone()
	m := mgl32.Translate3D(1, 2, 3)

	a.SetModelViewMatrix(m)
	a.SetModelViewMatrix(mgl32.Ident4())
	// stamps differ but the value was restored
	assert.False(t, a.ModelViewMatrixChanged(b))

	a.MultModelViewMatrix(m)
	assert.True(t, a.ModelViewMatrixChanged(b))
	assert.Equal(t, m, a.ModelViewMatrix())
}

func TestIndependentMutationsDoNotCollide(t *testing.T) {
	a := New(nil)
	b := New(nil)
	a.SetProjectionMatrix(mgl32.Ortho(-1, 1, -1, 1, -1, 1))
	b.SetProjectionMatrix(mgl32.Ortho(-2, 2, -2, 2, -1, 1))
	assert.True(t, a.ProjectionMatrixChanged(b))
	assert.True(t, b.ProjectionMatrixChanged(a))
}

func TestUpdateIsIdempotent(t *testing.T) {
	requested := New(nil)
	applied := New(nil)
	requested.SetMaterial(MaterialParameters{Shininess: 32})

	applied.UpdateMaterial(requested)
	first := *applied
	applied.UpdateMaterial(requested)
	assert.Equal(t, first, *applied)
	assert.False(t, requested.MaterialChanged(applied))
	assert.False(t, applied.MaterialChanged(requested))
}

func TestCameraInverse(t *testing.T) {
	a := New(nil)
	b := a.Clone()
	view := mgl32.LookAtV(mgl32.Vec3{0, 2, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	a.SetCameraInverseMatrix(view)
	assert.Equal(t, view, a.CameraInverseMatrix())
	assert.True(t, a.CameraMatrix().Mul4(view).ApproxEqualThreshold(mgl32.Ident4(), 1e-5))
	assert.True(t, a.CameraInverseMatrixChanged(b))

	b.UpdateCameraMatrix(a)
	assert.False(t, a.CameraInverseMatrixChanged(b))
	assert.Equal(t, a.CameraMatrix(), b.CameraMatrix())
}

func TestMaterial(t *testing.T) {
	a := New(nil)
	b := a.Clone()

	a.SetMaterial(DefaultMaterial())
	// same parameters, but enabling is a change
	assert.True(t, a.MaterialChanged(b))
	b.UpdateMaterial(a)
	assert.True(t, b.MaterialEnabled())

	a.DisableMaterial()
	assert.True(t, a.MaterialChanged(b))
	b.UpdateMaterial(a)
	assert.False(t, a.MaterialChanged(b))
	assert.False(t, b.MaterialEnabled())
}

func TestPointParametersByValue(t *testing.T) {
	a := New(nil)
	b := New(nil)
	p := PointParameters{Size: 4, MaxSize: 16, Smooth: true}

	a.SetPointParameters(p)
	assert.True(t, a.PointParametersChanged(b))

	b.SetPointParameters(p)
	// different mutations, same value
	assert.False(t, a.PointParametersChanged(b))

	b.UpdatePointParameters(a)
	assert.Equal(t, p, b.PointParameters())
	assert.False(t, a.PointParametersChanged(b))
}

func TestTextureUnits(t *testing.T) {
	a := New(nil)
	b := a.Clone()

	require.NoError(t, a.SetTextureUnitUsage(0, TextureMapping))
	require.NoError(t, a.SetTextureUnitUsage(MaxTextures-1, Disabled))
	assert.True(t, a.TextureUnitsChanged(b))

	b.UpdateTextureUnits(a)
	assert.False(t, a.TextureUnitsChanged(b))
	assert.Equal(t, a.TextureUnitUsages(), b.TextureUnitUsages())

	u, err := b.TextureUnitUsage(MaxTextures - 1)
	require.NoError(t, err)
	assert.Equal(t, Disabled, u)
}

func TestTextureUnitRange(t *testing.T) {
	a := New(nil)
	b := a.Clone()

	err := a.SetTextureUnitUsage(MaxTextures, TextureMapping)
	assert.ErrorIs(t, err, ErrTextureUnitRange)
	assert.False(t, a.TextureUnitsChanged(b))

	_, err = a.TextureUnitUsage(MaxTextures)
	assert.ErrorIs(t, err, ErrTextureUnitRange)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "point-sprite", PointSprite.String())
	assert.Equal(t, "TexUnitUsage(9)", TexUnitUsage(9).String())
	assert.Equal(t, "spot", SpotLight.String())
}
