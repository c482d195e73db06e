package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/glrender/engine/logx"
)

// Program is a linked shader program with a uniform location cache. It
// implements status.Shader; the rendering context keeps per-program applied
// state keyed by the *Program pointer.
type Program struct {
	name      string
	id        uint32
	locations map[string]int32
}

// NewProgram compiles and links a program from null-terminated GLSL sources.
func NewProgram(name, vertSrc, fragSrc string) (*Program, error) {
	id, err := makeProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", name, err)
	}
	logx.Logger().Info("shader program linked", "name", name, "id", id)
	return &Program{name: name, id: id, locations: make(map[string]int32, 64)}, nil
}

func (p *Program) ProgramID() uint32 { return p.id }
func (p *Program) Name() string      { return p.name }

// Location returns the cached uniform location, -1 if the program has no
// such active uniform.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	if loc < 0 {
		logx.Logger().Debug("uniform not active", "program", p.name, "uniform", name)
	}
	return loc
}

// Delete releases the GL program. The rendering context must be told with
// ForgetShader.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
	clear(p.locations)
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
