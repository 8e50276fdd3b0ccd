package mesh

import "github.com/Faultbox/hello-gl/pkg/math"

// Rectangle is a textured quad in PosColorUV layout, drawn with RectangleIndices.
var Rectangle = []float32{
	// position        // color       // uv
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
}

// RectangleIndices splits Rectangle into two triangles.
var RectangleIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// Cube is a unit cube centered at the origin in PosUV layout, 36 vertices.
var Cube = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,

	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}

// CubePositions scatters ten cubes in front of the default camera.
var CubePositions = []math.Vec3{
	{X: 0.0, Y: 0.0, Z: 0.0},
	{X: 2.0, Y: 5.0, Z: -15.0},
	{X: -1.5, Y: -2.2, Z: -2.5},
	{X: -3.8, Y: -2.0, Z: -12.3},
	{X: 2.4, Y: -0.4, Z: -3.5},
	{X: -1.7, Y: 3.0, Z: -7.5},
	{X: 1.3, Y: -2.0, Z: -2.5},
	{X: 1.5, Y: 2.0, Z: -2.5},
	{X: 1.5, Y: 0.2, Z: -1.5},
	{X: -1.3, Y: 1.0, Z: -1.5},
}
