package status

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// LightType selects how a light's position and direction are interpreted.
type LightType uint8

const (
	DirectionalLight LightType = iota
	PointLight
	SpotLight
)

func (t LightType) String() string {
	switch t {
	case DirectionalLight:
		return "directional"
	case PointLight:
		return "point"
	case SpotLight:
		return "spot"
	default:
		return fmt.Sprintf("LightType(%d)", uint8(t))
	}
}

// LightParameters describes one light source. It is a plain value; two
// records are equal when all fields are equal.
type LightParameters struct {
	Type      LightType
	Position  mgl32.Vec3
	Direction mgl32.Vec3

	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4

	// attenuation: 1 / (Constant + Linear*d + Quadratic*d*d)
	Constant  float32
	Linear    float32
	Quadratic float32

	// spot lights only
	Exponent float32
	Cutoff   float32 // degrees
}

// DefaultLight returns a white point light at the origin with no attenuation.
func DefaultLight() LightParameters {
	return LightParameters{
		Type:      PointLight,
		Direction: mgl32.Vec3{0, 0, -1},
		Ambient:   mgl32.Vec4{0, 0, 0, 1},
		Diffuse:   mgl32.Vec4{1, 1, 1, 1},
		Specular:  mgl32.Vec4{1, 1, 1, 1},
		Constant:  1,
		Cutoff:    180,
	}
}

// MaterialParameters are the surface properties used by the lighting model.
type MaterialParameters struct {
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Specular  mgl32.Vec4
	Emission  mgl32.Vec4
	Shininess float32

	// ColorMaterial makes ambient and diffuse follow the vertex colour.
	ColorMaterial bool
}

// DefaultMaterial returns the classic OpenGL default material.
func DefaultMaterial() MaterialParameters {
	return MaterialParameters{
		Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:  mgl32.Vec4{0.8, 0.8, 0.8, 1},
		Specular: mgl32.Vec4{0, 0, 0, 1},
		Emission: mgl32.Vec4{0, 0, 0, 1},
	}
}

// PointParameters control rasterization of point primitives.
type PointParameters struct {
	Size    float32
	MinSize float32
	MaxSize float32
	Smooth  bool
}

// DefaultPointParameters returns 1px unsmoothed points.
func DefaultPointParameters() PointParameters {
	return PointParameters{Size: 1, MinSize: 0, MaxSize: 64}
}

// TexUnitUsage tells shaders how a texture unit is to be sampled.
type TexUnitUsage uint8

const (
	GeneralPurpose TexUnitUsage = iota
	TextureMapping
	PointSprite
	Disabled
)

func (u TexUnitUsage) String() string {
	switch u {
	case GeneralPurpose:
		return "general-purpose"
	case TextureMapping:
		return "texture-mapping"
	case PointSprite:
		return "point-sprite"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("TexUnitUsage(%d)", uint8(u))
	}
}
