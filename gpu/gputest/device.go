// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a recording [gpu.Device]
// for testing rendering code without a GPU.
package gputest

import (
	"slices"
	"strings"

	"cogentcore.org/triangle/gpu"
)

// Compiled is the source of one program compiled by a [Device].
type Compiled struct {
	Dialect  gpu.Dialect
	Vertex   string
	Fragment string
}

// Device is a [gpu.Device] that records everything done with it.
// Programs report the attributes declared in their vertex source.
type Device struct {

	// Caps are the capabilities returned by Capabilities.
	Caps gpu.Capabilities

	// MeshErr and ProgramErr, if set, are returned by
	// CreateMesh and CompileProgram.
	MeshErr    error
	ProgramErr error

	// Meshes and Data are the created meshes and their vertex data.
	Meshes []*gpu.Mesh
	Data   [][]float32

	// Programs and Sources are the compiled programs and their sources.
	Programs []*gpu.Program
	Sources  []Compiled

	// Submitted are the commands of each submitted buffer.
	Submitted [][]gpu.Command

	// Released is whether Release has been called.
	Released bool

	handle uint32
}

// NewDevice returns a new [Device] for a context with the given
// shading language version.
func NewDevice(glsl gpu.Version) *Device {
	return &Device{Caps: gpu.Capabilities{
		GL:       gpu.Version{Major: 3, Minor: 2},
		GLSL:     glsl,
		Vendor:   "gputest",
		Renderer: "recording device",
	}}
}

func (d *Device) Capabilities() gpu.Capabilities {
	return d.Caps
}

func (d *Device) CreateMesh(format gpu.VertexFormat, data []float32) (*gpu.Mesh, error) {
	if d.MeshErr != nil {
		return nil, d.MeshErr
	}
	d.handle++
	ms := &gpu.Mesh{Format: format, N: len(data) / format.Floats(), Buffer: d.handle}
	d.Meshes = append(d.Meshes, ms)
	d.Data = append(d.Data, slices.Clone(data))
	return ms, nil
}

func (d *Device) CompileProgram(dialect gpu.Dialect, vertex, fragment string) (*gpu.Program, error) {
	d.Sources = append(d.Sources, Compiled{Dialect: dialect, Vertex: vertex, Fragment: fragment})
	if d.ProgramErr != nil {
		return nil, d.ProgramErr
	}
	d.handle++
	pr := &gpu.Program{Handle: d.handle, Dialect: dialect, Attributes: map[string]int32{}}
	for i, name := range VertexInputs(vertex) {
		pr.Attributes[name] = int32(i)
	}
	d.Programs = append(d.Programs, pr)
	return pr, nil
}

func (d *Device) Submit(cb *gpu.CommandBuffer) {
	d.Submitted = append(d.Submitted, slices.Clone(cb.Commands))
}

func (d *Device) Release() {
	d.Released = true
}

// VertexInputs returns the names of the attribute inputs declared
// in the given vertex shader source, in order. Both the GLSL 1.20
// attribute qualifier and the GLSL 1.50 in qualifier are recognized.
func VertexInputs(src string) []string {
	var names []string
	for line := range strings.Lines(src) {
		fs := strings.Fields(line)
		if len(fs) < 3 || (fs[0] != "attribute" && fs[0] != "in") {
			continue
		}
		names = append(names, strings.TrimSuffix(fs[2], ";"))
	}
	return names
}
