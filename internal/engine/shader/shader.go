// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/bouncecube/internal/scene"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error carrying the driver's info log.
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
		log := programLog(program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, trimLog(log))
	}

	return shader, nil
}

func programLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	log := make([]byte, logLen+1)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return trimLog(log)
}

// trimLog drops the NUL terminator and anything after it.
func trimLog(log []byte) string {
	for i, b := range log {
		if b == 0 {
			return string(log[:i])
		}
	}
	return string(log)
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// GetAttrib returns the attribute location for the given name, or -1.
func GetAttrib(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// Lookup resolves the cube shader's attribute and uniform locations.
// Every location must be active; a missing one means the program does not
// match the renderer and is reported as an error.
func Lookup(program uint32) (scene.ProgramInfo, error) {
	info := scene.ProgramInfo{Program: scene.Program(program)}

	attribs := []struct {
		name string
		dst  *scene.AttribLocation
	}{
		{scene.AttribVertexPosition, &info.Attribs.VertexPosition},
		{scene.AttribVertexNormal, &info.Attribs.VertexNormal},
		{scene.AttribVertexColor, &info.Attribs.VertexColor},
	}
	for _, a := range attribs {
		loc := GetAttrib(program, a.name)
		if loc < 0 {
			return scene.ProgramInfo{}, fmt.Errorf("attribute %q not found in program %d", a.name, program)
		}
		*a.dst = scene.AttribLocation(loc)
	}

	uniforms := []struct {
		name string
		dst  *scene.UniformLocation
	}{
		{scene.UniformProjectionMatrix, &info.Uniforms.ProjectionMatrix},
		{scene.UniformModelViewMatrix, &info.Uniforms.ModelViewMatrix},
		{scene.UniformNormalMatrix, &info.Uniforms.NormalMatrix},
	}
	for _, u := range uniforms {
		loc := GetUniform(program, u.name)
		if loc < 0 {
			return scene.ProgramInfo{}, fmt.Errorf("uniform %q not found in program %d", u.name, program)
		}
		*u.dst = scene.UniformLocation(loc)
	}

	return info, nil
}

// Build compiles, links and looks up the cube program in one step.
func Build(vertexSrc, fragmentSrc string) (scene.ProgramInfo, error) {
	program, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return scene.ProgramInfo{}, err
	}
	info, err := Lookup(program)
	if err != nil {
		gl.DeleteProgram(program)
		return scene.ProgramInfo{}, err
	}
	return info, nil
}
