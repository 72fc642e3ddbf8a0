// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triangle draws a single colored triangle in a window
// with OpenGL, until the window is closed or Escape is pressed.
//
// A [Window] is made in two phases: [Initialize] (or [Open], which
// also opens the platform window and binds the device) creates all
// of the GPU resources once, and [Window.Run] or [Window.Step]
// then render frames until the window is flagged for closing.
package triangle

import (
	_ "embed"

	"cogentcore.org/triangle/gpu"
	"cogentcore.org/triangle/math32"
)

// Vertex is one vertex of the triangle: a 2D position
// in clip space and an RGB color.
type Vertex struct {
	Pos   math32.Vector2 `attr:"a_Pos"`
	Color math32.Vector3 `attr:"a_Color"`
}

// Vertices returns the three vertices of the triangle:
// red bottom left, green bottom right, and blue top.
func Vertices() [3]Vertex {
	return [3]Vertex{
		{Pos: math32.Vec2(-0.5, -0.5), Color: math32.Vec3(1, 0, 0)},
		{Pos: math32.Vec2(0.5, -0.5), Color: math32.Vec3(0, 1, 0)},
		{Pos: math32.Vec2(0, 0.5), Color: math32.Vec3(0, 0, 1)},
	}
}

//go:embed shaders/triangle_120.vert
var vertex120 string

//go:embed shaders/triangle_150.vert
var vertex150 string

//go:embed shaders/triangle_120.frag
var fragment120 string

//go:embed shaders/triangle_150.frag
var fragment150 string

// VertexSource is the vertex shader, which passes
// the position through and makes the color opaque.
var VertexSource = gpu.ShaderSource{GLSL120: vertex120, GLSL150: vertex150}

// FragmentSource is the fragment shader, which outputs
// the interpolated vertex color.
var FragmentSource = gpu.ShaderSource{GLSL120: fragment120, GLSL150: fragment150}
