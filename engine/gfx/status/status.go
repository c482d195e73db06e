// Package status tracks the pipeline state requested by a rendering context
// and decides which parts of it differ from what was last sent to the GPU.
//
// Every state group carries a stamp. Stamps are drawn from a single
// package-wide generation counter, so two statuses holding the same stamp for
// a group received that group from the same mutation and therefore hold the
// same value. When stamps differ the values are compared directly.
//
// A Status is not safe for concurrent use; it belongs to the rendering thread.
package status

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MaxLights   = 8
	MaxTextures = 8
)

// Shader is the program whose uniforms a status mirrors. A status only keeps
// a reference; it never releases the shader.
type Shader interface {
	ProgramID() uint32
}

var generation atomic.Uint64

func nextStamp() uint64 { return generation.Add(1) }

// Status is one frame of pipeline state.
type Status struct {
	shader      Shader
	initialized bool

	cameraStamp   uint64
	camera        mgl32.Mat4
	cameraInverse mgl32.Mat4

	lightsStamp   uint64
	lights        [MaxLights]LightParameters
	lightsEnabled uint8 // bit i set = slot i enabled

	materialStamp   uint64
	materialEnabled bool
	material        MaterialParameters

	modelViewStamp uint64
	modelView      mgl32.Mat4

	pointStamp uint64
	point      PointParameters

	projectionStamp uint64
	projection      mgl32.Mat4

	texUnitsStamp uint64
	texUnits      [MaxTextures]TexUnitUsage
}

// New returns a status with default values for every group. shader may be
// nil for the fixed pipeline.
func New(shader Shader) *Status {
	return &Status{
		shader:        shader,
		camera:        mgl32.Ident4(),
		cameraInverse: mgl32.Ident4(),
		material:      DefaultMaterial(),
		modelView:     mgl32.Ident4(),
		point:         DefaultPointParameters(),
		projection:    mgl32.Ident4(),
	}
}

// Clone copies s, stamps included, for a nested state scope.
func (s *Status) Clone() *Status {
	c := *s
	return &c
}

func (s *Status) Shader() Shader    { return s.shader }
func (s *Status) Initialized() bool { return s.initialized }
func (s *Status) MarkInitialized()  { s.initialized = true }

// ---- camera ----

// SetCameraInverseMatrix sets the world-to-camera matrix. The camera matrix
// is derived from it; a singular m yields a zero camera matrix.
func (s *Status) SetCameraInverseMatrix(m mgl32.Mat4) {
	s.cameraInverse = m
	s.camera = m.Inv()
	s.cameraStamp = nextStamp()
}

func (s *Status) CameraMatrix() mgl32.Mat4        { return s.camera }
func (s *Status) CameraInverseMatrix() mgl32.Mat4 { return s.cameraInverse }

func (s *Status) CameraInverseMatrixChanged(actual *Status) bool {
	if s.cameraStamp == actual.cameraStamp {
		return false
	}
	return s.cameraInverse != actual.cameraInverse
}

func (s *Status) UpdateCameraMatrix(actual *Status) {
	s.cameraInverse = actual.cameraInverse
	s.camera = actual.camera
	s.cameraStamp = actual.cameraStamp
}

// ---- material ----

// SetMaterial sets and enables the material.
func (s *Status) SetMaterial(m MaterialParameters) {
	s.material = m
	s.materialEnabled = true
	s.materialStamp = nextStamp()
}

func (s *Status) DisableMaterial() {
	s.materialEnabled = false
	s.materialStamp = nextStamp()
}

func (s *Status) MaterialEnabled() bool                  { return s.materialEnabled }
func (s *Status) MaterialParameters() MaterialParameters { return s.material }

func (s *Status) MaterialChanged(actual *Status) bool {
	if s.materialStamp == actual.materialStamp {
		return false
	}
	return s.materialEnabled != actual.materialEnabled || s.material != actual.material
}

func (s *Status) UpdateMaterial(actual *Status) {
	s.materialEnabled = actual.materialEnabled
	s.material = actual.material
	s.materialStamp = actual.materialStamp
}

// ---- model-view ----

func (s *Status) SetModelViewMatrix(m mgl32.Mat4) {
	s.modelView = m
	s.modelViewStamp = nextStamp()
}

// MultModelViewMatrix right-multiplies the model-view matrix by m.
func (s *Status) MultModelViewMatrix(m mgl32.Mat4) {
	s.modelView = s.modelView.Mul4(m)
	s.modelViewStamp = nextStamp()
}

func (s *Status) ModelViewMatrix() mgl32.Mat4 { return s.modelView }

func (s *Status) ModelViewMatrixChanged(actual *Status) bool {
	if s.modelViewStamp == actual.modelViewStamp {
		return false
	}
	return s.modelView != actual.modelView
}

func (s *Status) UpdateModelViewMatrix(actual *Status) {
	s.modelView = actual.modelView
	s.modelViewStamp = actual.modelViewStamp
}

// ---- point parameters ----

func (s *Status) SetPointParameters(p PointParameters) {
	s.point = p
	s.pointStamp = nextStamp()
}

func (s *Status) PointParameters() PointParameters { return s.point }

func (s *Status) PointParametersChanged(actual *Status) bool {
	if s.pointStamp == actual.pointStamp {
		return false
	}
	return s.point != actual.point
}

func (s *Status) UpdatePointParameters(actual *Status) {
	s.point = actual.point
	s.pointStamp = actual.pointStamp
}

// ---- projection ----

func (s *Status) SetProjectionMatrix(m mgl32.Mat4) {
	s.projection = m
	s.projectionStamp = nextStamp()
}

func (s *Status) ProjectionMatrix() mgl32.Mat4 { return s.projection }

func (s *Status) ProjectionMatrixChanged(actual *Status) bool {
	if s.projectionStamp == actual.projectionStamp {
		return false
	}
	return s.projection != actual.projection
}

func (s *Status) UpdateProjectionMatrix(actual *Status) {
	s.projection = actual.projection
	s.projectionStamp = actual.projectionStamp
}
