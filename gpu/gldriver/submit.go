// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"cogentcore.org/triangle/base/errors"
	"cogentcore.org/triangle/gpu"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Submit executes the commands on the default framebuffer.
// Errors are logged, since rendering does not stop for them.
func (dv *Device) Submit(cb *gpu.CommandBuffer) {
	for i := range cb.Commands {
		cmd := &cb.Commands[i]
		switch cmd.Type {
		case gpu.ClearCommand:
			dv.clear(cmd)
		case gpu.DrawCommand:
			dv.draw(cmd)
		}
	}
	errors.Log(ErrCheck("Submit"))
}

func (dv *Device) clear(cmd *gpu.Command) {
	setViewport(cmd.Frame)
	bits := uint32(0)
	if cmd.Mask.Has(gpu.ClearColor) {
		c := cmd.Clear.Color
		gl.ClearColor(c.X, c.Y, c.Z, c.W)
		bits |= gl.COLOR_BUFFER_BIT
	}
	if cmd.Mask.Has(gpu.ClearDepth) {
		gl.DepthMask(true)
		gl.ClearDepth(float64(cmd.Clear.Depth))
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if cmd.Mask.Has(gpu.ClearStencil) {
		gl.StencilMask(0xFF)
		gl.ClearStencil(int32(cmd.Clear.Stencil))
		bits |= gl.STENCIL_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (dv *Device) draw(cmd *gpu.Command) {
	b := cmd.Batch
	setViewport(cmd.Frame)
	setState(b.State)
	gl.UseProgram(b.Program.Handle)
	if dv.useVAO {
		gl.BindVertexArray(b.Mesh.VertexArray)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.Mesh.Buffer)
	vf := &b.Mesh.Format
	for name, loc := range b.Program.Attributes {
		a, ok := vf.Attribute(name)
		if !ok || loc < 0 {
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), int32(a.Components), gl.FLOAT, false, int32(vf.Stride), uintptr(a.Offset))
	}
	gl.DrawArrays(glTopologies[b.Slice.Topology], int32(b.Slice.Start), int32(b.Slice.Count()))
}

func setViewport(fr *gpu.Frame) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fr.Size.X), int32(fr.Size.Y))
}

func setState(st gpu.DrawState) {
	enable(gl.CULL_FACE, st.CullBack)
	if st.CullBack {
		gl.CullFace(gl.BACK)
	}
	enable(gl.BLEND, st.Blend)
	if st.Blend {
		gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	}
	enable(gl.DEPTH_TEST, st.DepthTest)
}

func enable(flag uint32, on bool) {
	if on {
		gl.Enable(flag)
	} else {
		gl.Disable(flag)
	}
}

var glTopologies = map[gpu.Topologies]uint32{
	gpu.PointList:     gl.POINTS,
	gpu.LineList:      gl.LINES,
	gpu.LineStrip:     gl.LINE_STRIP,
	gpu.TriangleList:  gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
}
