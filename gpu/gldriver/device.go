// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldriver implements [gpu.Device] with OpenGL,
// using the OpenGL 3.2 core bindings. Shading language
// version 1.20 contexts are also supported, without
// vertex array objects.
package gldriver

import (
	"fmt"
	"log/slog"

	"cogentcore.org/triangle/gpu"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Device is an OpenGL [gpu.Device]. It is bound to the
// context it was made with, which must stay current on
// the calling thread for all of its methods.
type Device struct {
	caps gpu.Capabilities

	// useVAO is whether vertex array objects are available (GL 3.0+).
	useVAO bool

	buffers  []uint32
	arrays   []uint32
	programs []uint32
}

// NewDevice makes the given context current, loads the OpenGL
// functions for it, and returns a new [Device] bound to it.
func NewDevice(ctx gpu.Context) (*Device, error) {
	ctx.MakeContextCurrent()
	if err := gl.InitWithProcAddrFunc(ctx.GetProcAddress); err != nil {
		return nil, fmt.Errorf("gldriver.NewDevice: initializing OpenGL: %w", err)
	}
	dv := &Device{}
	glv := gl.GoStr(gl.GetString(gl.VERSION))
	glslv := gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	var err error
	dv.caps.GL, err = gpu.ParseVersion(glv)
	if err != nil {
		return nil, fmt.Errorf("gldriver.NewDevice: OpenGL version: %w", err)
	}
	dv.caps.GLSL, err = gpu.ParseVersion(glslv)
	if err != nil {
		return nil, fmt.Errorf("gldriver.NewDevice: GLSL version: %w", err)
	}
	dv.caps.ES = gpu.IsES(glv)
	dv.caps.Vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	dv.caps.Renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	dv.useVAO = dv.caps.GL.AtLeast(gpu.Version{Major: 3, Minor: 0})
	slog.Info("gldriver: OpenGL device", "version", glv, "glsl", glslv, "vendor", dv.caps.Vendor, "renderer", dv.caps.Renderer)
	return dv, nil
}

func (dv *Device) Capabilities() gpu.Capabilities {
	return dv.caps
}

// CreateMesh uploads the given data into a new static vertex buffer.
func (dv *Device) CreateMesh(format gpu.VertexFormat, data []float32) (*gpu.Mesh, error) {
	nf := format.Floats()
	if nf == 0 || len(data)%nf != 0 {
		return nil, fmt.Errorf("gldriver.CreateMesh: %d floats is not a whole number of %d-float vertices", len(data), nf)
	}
	ms := &gpu.Mesh{Format: format, N: len(data) / nf}
	if dv.useVAO {
		gl.GenVertexArrays(1, &ms.VertexArray)
		gl.BindVertexArray(ms.VertexArray)
		dv.arrays = append(dv.arrays, ms.VertexArray)
	}
	gl.GenBuffers(1, &ms.Buffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, ms.Buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	dv.buffers = append(dv.buffers, ms.Buffer)
	if err := ErrCheck("CreateMesh"); err != nil {
		return nil, err
	}
	return ms, nil
}

// Release deletes all of the programs, buffers and
// vertex arrays made by the device.
func (dv *Device) Release() {
	for _, p := range dv.programs {
		gl.DeleteProgram(p)
	}
	dv.programs = nil
	if len(dv.buffers) > 0 {
		gl.DeleteBuffers(int32(len(dv.buffers)), &dv.buffers[0])
		dv.buffers = nil
	}
	if len(dv.arrays) > 0 {
		gl.DeleteVertexArrays(int32(len(dv.arrays)), &dv.arrays[0])
		dv.arrays = nil
	}
}

// ErrCheck returns an error for the current OpenGL error state,
// if there is one, labeled with the given context.
func ErrCheck(ctxt string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	return fmt.Errorf("gldriver %s: OpenGL error 0x%04X", ctxt, code)
}
