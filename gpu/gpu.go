// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is a small, driver-neutral model of GPU rendering:
// a [Device] creates meshes and programs and executes recorded
// command buffers, and [Graphics] records clear and draw commands
// against a [Frame] and submits them once per frame.
//
// The OpenGL implementation of [Device] is in the gldriver package.
package gpu

import (
	"fmt"
	"unsafe"
)

// Context is a graphics context that GPU resources can be created in,
// typically owned by a window. It is passed explicitly to the device
// constructor instead of relying on whatever context is current.
type Context interface {
	// MakeContextCurrent makes this context current on the calling thread.
	MakeContextCurrent()

	// GetProcAddress returns the address of the given
	// graphics API function for this context.
	GetProcAddress(name string) unsafe.Pointer
}

// Device is a GPU device bound to one [Context].
// All of its methods must be called on the thread
// that the context is current on.
type Device interface {
	// Capabilities returns the versions and identity
	// of the bound context.
	Capabilities() Capabilities

	// CreateMesh uploads the given interleaved vertex data,
	// laid out according to format, into GPU memory.
	CreateMesh(format VertexFormat, data []float32) (*Mesh, error)

	// CompileProgram compiles and links the given vertex and
	// fragment stage sources, written in the given dialect.
	CompileProgram(dialect Dialect, vertex, fragment string) (*Program, error)

	// Submit executes all of the commands in the given buffer, in order.
	// The device must not retain the buffer.
	Submit(cb *CommandBuffer)

	// Release frees all of the GPU resources made by this device.
	Release()
}

// Capabilities describes what the context bound to a [Device] supports.
type Capabilities struct {

	// GL is the version of the graphics API.
	GL Version

	// GLSL is the version of the shading language.
	GLSL Version

	// Vendor is the name of the company responsible for the driver.
	Vendor string

	// Renderer is the name of the renderer, typically the GPU.
	Renderer string

	// ES is whether the context is OpenGL ES, whose shading
	// language is not compatible with any [Dialect].
	ES bool
}

// Dialect returns the shader dialect to use for these capabilities.
func (c Capabilities) Dialect() (Dialect, error) {
	if c.ES {
		return NoDialect, fmt.Errorf("gpu.Capabilities: GLSL ES %s: %w", c.GLSL, ErrNoDialect)
	}
	return DialectFor(c.GLSL)
}
