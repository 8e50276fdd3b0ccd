// Package shader provides OpenGL shader compilation and uniform helpers.
package shader

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/Faultbox/hello-gl/pkg/math"
)

// Program is a linked shader program with a uniform location cache.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// New compiles and links a program from GLSL source text.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

// Load reads both stages from disk and builds a program.
func Load(vertexPath, fragmentPath string) (*Program, error) {
	vs, fs, err := ReadSources(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return New(vs, fs)
}

// ReadSources reads vertex and fragment source files.
func ReadSources(vertexPath, fragmentPath string) (vertexSrc, fragmentSrc string, err error) {
	vb, err := os.ReadFile(vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("reading vertex shader: %w", err)
	}
	fb, err := os.ReadFile(fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("reading fragment shader: %w", err)
	}
	return string(vb), string(fb), nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes this program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
	p.uniforms = make(map[string]int32)
}

// Uniform returns the cached location of name, or -1 if the program has no
// active uniform with that name.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	p.uniforms[name] = loc
	return loc
}

// SetBool sets a bool uniform. The program must be in use.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.Uniform(name), i)
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
}

// SetMat4 sets a mat4 uniform. Mat4 is column-major so no transpose is needed.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, m.Ptr())
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, &Error{Stage: "link", Log: log}
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(terminate(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return 0, &Error{Stage: stage, Log: log}
	}

	return shader, nil
}

func infoLog(length int32, fetch func(*uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	fetch(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n ")
}

// terminate appends the NUL terminator gl.Strs needs, unless already present.
func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(terminate(name)))
}
