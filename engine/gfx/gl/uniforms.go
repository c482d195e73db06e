package glbackend

import (
	"strconv"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glrender/engine/gfx/status"
)

const (
	uCameraMatrix        = "sg_cameraMatrix"
	uCameraInverseMatrix = "sg_cameraInverseMatrix"
	uModelViewMatrix     = "sg_modelViewMatrix"
	uProjectionMatrix    = "sg_projectionMatrix"
	uLightCount          = "sg_lightCount"
	uUseMaterials        = "sg_useMaterials"
	uPointSize           = "sg_pointSize"
	uPointSizeMin        = "sg_pointSizeMin"
	uPointSizeMax        = "sg_pointSizeMax"
	uPointSmooth         = "sg_pointSmooth"
)

type lightNames struct {
	typ, position, direction    string
	ambient, diffuse, specular  string
	constant, linear, quadratic string
	exponent, cosCutoff         string
}

var (
	lightUniforms   [status.MaxLights]lightNames
	textureUniforms [status.MaxTextures]string

	materialUniforms = struct {
		ambient, diffuse, specular, emission, shininess, colorMaterial string
	}{
		"sg_material.ambient", "sg_material.diffuse", "sg_material.specular",
		"sg_material.emission", "sg_material.shininess", "sg_material.colorMaterial",
	}
)

func init() {
	for i := range lightUniforms {
		p := "sg_light[" + strconv.Itoa(i) + "]."
		lightUniforms[i] = lightNames{
			typ: p + "type", position: p + "position", direction: p + "direction",
			ambient: p + "ambient", diffuse: p + "diffuse", specular: p + "specular",
			constant: p + "constant", linear: p + "linear", quadratic: p + "quadratic",
			exponent: p + "exponent", cosCutoff: p + "cosCutoff",
		}
	}
	for i := range textureUniforms {
		textureUniforms[i] = "sg_textureUsage[" + strconv.Itoa(i) + "]"
	}
}

// Setters skip inactive uniforms (location -1).

func (p *Program) setMat4(name string, m mgl32.Mat4) {
	if loc := p.Location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (p *Program) setVec3(name string, v mgl32.Vec3) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

func (p *Program) setVec4(name string, v mgl32.Vec4) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform4fv(loc, 1, &v[0])
	}
}

func (p *Program) setFloat(name string, f float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1f(loc, f)
	}
}

func (p *Program) setInt(name string, i int32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1i(loc, i)
	}
}

func (p *Program) setBool(name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	p.setInt(name, i)
}
