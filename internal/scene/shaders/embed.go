// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader is the GLSL 4.10 core vertex shader for the lit cube.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader is the GLSL 4.10 core fragment shader for the lit cube.
//
//go:embed cube.frag
var CubeFragmentShader string

// CubeVertexShaderES is the GLSL ES 1.00 (WebGL) vertex shader.
//
//go:embed cube_es.vert
var CubeVertexShaderES string

// CubeFragmentShaderES is the GLSL ES 1.00 (WebGL) fragment shader.
//
//go:embed cube_es.frag
var CubeFragmentShaderES string
