// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// Graphics records clear and draw commands for a [Device]
// and submits them to it at the end of each frame.
type Graphics struct {

	// Device is the device that commands are submitted to.
	Device Device

	// Frames is the number of frames ended so far.
	Frames int

	buf CommandBuffer
}

// NewGraphics returns a new [Graphics] for the given device.
func NewGraphics(dev Device) *Graphics {
	return &Graphics{Device: dev}
}

// LinkProgram links a program from the given vertex and fragment
// sources, in the dialect that matches the capabilities of the device.
func (gr *Graphics) LinkProgram(vertex, fragment ShaderSource) (*Program, error) {
	caps := gr.Device.Capabilities()
	d, err := caps.Dialect()
	if err != nil {
		return nil, fmt.Errorf("gpu.Graphics.LinkProgram: %w", err)
	}
	vs, err := vertex.Select(d)
	if err != nil {
		return nil, fmt.Errorf("gpu.Graphics.LinkProgram: %s: %w", VertexShader, err)
	}
	fs, err := fragment.Select(d)
	if err != nil {
		return nil, fmt.Errorf("gpu.Graphics.LinkProgram: %s: %w", FragmentShader, err)
	}
	pr, err := gr.Device.CompileProgram(d, vs, fs)
	if err != nil {
		return nil, fmt.Errorf("gpu.Graphics.LinkProgram: %s: %w: %w", d, ErrLink, err)
	}
	slog.Debug("gpu: linked program", "dialect", d, "glsl", caps.GLSL, "attributes", pr.AttributeNames())
	return pr, nil
}

// MakeBatch returns a new [Batch] for drawing the given slice of the
// given mesh with the given program. It returns an error if the program
// needs an attribute that the mesh does not have, or if the slice is
// not within the mesh.
func (gr *Graphics) MakeBatch(pr *Program, ms *Mesh, sl Slice, st DrawState) (*Batch, error) {
	for _, name := range pr.AttributeNames() {
		if _, ok := ms.Format.Attribute(name); !ok {
			return nil, fmt.Errorf("gpu.Graphics.MakeBatch: program attribute %q is not in the mesh", name)
		}
	}
	if sl.Start < 0 || sl.End > ms.N || sl.Count() <= 0 {
		return nil, fmt.Errorf("gpu.Graphics.MakeBatch: slice [%d, %d) is not within the %d mesh vertices", sl.Start, sl.End, ms.N)
	}
	return &Batch{Program: pr, Mesh: ms, Slice: sl, State: st}, nil
}

// Clear records clearing the given buffers of the frame.
func (gr *Graphics) Clear(cd ClearData, mask ClearMask, fr *Frame) {
	gr.buf.Clear(cd, mask, fr)
}

// Draw records drawing the given batch into the frame.
func (gr *Graphics) Draw(b *Batch, fr *Frame) {
	gr.buf.Draw(b, fr)
}

// Pending returns the number of commands recorded since the last [Graphics.EndFrame].
func (gr *Graphics) Pending() int {
	return gr.buf.Len()
}

// EndFrame submits the recorded commands to the device and
// starts recording the next frame.
func (gr *Graphics) EndFrame() {
	gr.Device.Submit(&gr.buf)
	gr.buf.Reset()
	gr.Frames++
}

// Release releases the device and all of its resources.
func (gr *Graphics) Release() {
	gr.buf.Reset()
	gr.Device.Release()
}
