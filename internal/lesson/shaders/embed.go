// Package shaders provides embedded GLSL shader sources.
package shaders

import (
	_ "embed"

	"github.com/Faultbox/hello-gl/internal/engine/shader"
)

// RectangleVertexShader passes per-vertex color through.
//
//go:embed rectangle.vert
var RectangleVertexShader string

// RectangleFragmentShader outputs the interpolated vertex color.
//
//go:embed rectangle.frag
var RectangleFragmentShader string

// TexturesVertexShader is the vertex shader for the two-texture quad.
//
//go:embed textures.vert
var TexturesVertexShader string

// TexturesFragmentShader mixes two samplers by mixValue.
//
//go:embed textures.frag
var TexturesFragmentShader string

// CameraVertexShader applies model, view and projection matrices.
//
//go:embed camera.vert
var CameraVertexShader string

// CameraFragmentShader is the fragment shader for the textured cubes.
//
//go:embed camera.frag
var CameraFragmentShader string

// Sources pairing each embedded shader with its on-disk override name.
var (
	Rectangle = shader.Source{Name: "rectangle", Vertex: RectangleVertexShader, Fragment: RectangleFragmentShader}
	Textures  = shader.Source{Name: "textures", Vertex: TexturesVertexShader, Fragment: TexturesFragmentShader}
	Camera    = shader.Source{Name: "camera", Vertex: CameraVertexShader, Fragment: CameraFragmentShader}
)
