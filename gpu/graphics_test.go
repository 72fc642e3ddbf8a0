// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"image"
	"testing"

	"cogentcore.org/triangle/base/errors"
	"cogentcore.org/triangle/gpu"
	"cogentcore.org/triangle/gpu/gputest"
	"cogentcore.org/triangle/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vertex struct {
	Pos   math32.Vector2 `attr:"a_Pos"`
	Color math32.Vector3 `attr:"a_Color"`
}

var verts = []vertex{
	{math32.Vec2(-0.5, -0.5), math32.Vec3(1, 0, 0)},
	{math32.Vec2(0.5, -0.5), math32.Vec3(0, 1, 0)},
	{math32.Vec2(0, 0.5), math32.Vec3(0, 0, 1)},
}

var vertexSrc = gpu.ShaderSource{
	GLSL120: "#version 120\nattribute vec2 a_Pos;\nattribute vec3 a_Color;\n",
	GLSL150: "#version 150 core\nin vec2 a_Pos;\nin vec3 a_Color;\n",
}

var fragmentSrc = gpu.ShaderSource{
	GLSL120: "#version 120\nvarying vec4 v_Color;\n",
	GLSL150: "#version 150 core\nin vec4 v_Color;\nout vec4 o_Color;\n",
}

func TestNewMesh(t *testing.T) {
	dev := gputest.NewDevice(gpu.Version{Major: 1, Minor: 50})
	gr := gpu.NewGraphics(dev)
	ms, err := gpu.NewMesh(gr, verts)
	require.NoError(t, err)
	assert.Equal(t, 3, ms.N)
	assert.Equal(t, 20, ms.Format.Stride)
	require.Len(t, dev.Data, 1)
	assert.Len(t, dev.Data[0], 15)

	sl := ms.ToSlice(gpu.TriangleList)
	assert.Equal(t, gpu.Slice{Start: 0, End: 3, Topology: gpu.TriangleList}, sl)
	assert.Equal(t, 3, sl.Count())

	_, err = gpu.NewMesh(gr, []vertex{})
	assert.Error(t, err)

	dev.MeshErr = errors.New("out of memory")
	_, err = gpu.NewMesh(gr, verts)
	assert.Error(t, err)
}

func TestLinkProgramDialect(t *testing.T) {
	for _, tt := range []struct {
		glsl gpu.Version
		want gpu.Dialect
	}{
		{gpu.Version{Major: 1, Minor: 20}, gpu.GLSL120},
		{gpu.Version{Major: 1, Minor: 50}, gpu.GLSL150},
		{gpu.Version{Major: 4, Minor: 10}, gpu.GLSL150},
	} {
		dev := gputest.NewDevice(tt.glsl)
		gr := gpu.NewGraphics(dev)
		pr, err := gr.LinkProgram(vertexSrc, fragmentSrc)
		require.NoError(t, err)
		assert.Equal(t, tt.want, pr.Dialect)
		require.Len(t, dev.Sources, 1)
		v, _ := vertexSrc.Select(tt.want)
		f, _ := fragmentSrc.Select(tt.want)
		assert.Equal(t, gputest.Compiled{Dialect: tt.want, Vertex: v, Fragment: f}, dev.Sources[0])
		assert.Equal(t, []string{"a_Color", "a_Pos"}, pr.AttributeNames())
	}
}

func TestLinkProgramErrors(t *testing.T) {
	dev := gputest.NewDevice(gpu.Version{Major: 1, Minor: 10})
	gr := gpu.NewGraphics(dev)
	_, err := gr.LinkProgram(vertexSrc, fragmentSrc)
	assert.ErrorIs(t, err, gpu.ErrNoDialect)
	assert.Empty(t, dev.Sources)

	dev = gputest.NewDevice(gpu.Version{Major: 3, Minor: 0})
	dev.Caps.ES = true
	gr = gpu.NewGraphics(dev)
	_, err = gr.LinkProgram(vertexSrc, fragmentSrc)
	assert.ErrorIs(t, err, gpu.ErrNoDialect)
	assert.Empty(t, dev.Sources)

	dev = gputest.NewDevice(gpu.Version{Major: 1, Minor: 50})
	gr = gpu.NewGraphics(dev)
	_, err = gr.LinkProgram(gpu.ShaderSource{GLSL120: vertexSrc.GLSL120}, fragmentSrc)
	assert.ErrorIs(t, err, gpu.ErrNoDialect)

	compileErr := errors.New("0:3(1): error: syntax error")
	dev.ProgramErr = compileErr
	_, err = gr.LinkProgram(vertexSrc, fragmentSrc)
	assert.ErrorIs(t, err, gpu.ErrLink)
	assert.ErrorIs(t, err, compileErr)
}

func TestMakeBatch(t *testing.T) {
	dev := gputest.NewDevice(gpu.Version{Major: 1, Minor: 50})
	gr := gpu.NewGraphics(dev)
	ms, err := gpu.NewMesh(gr, verts)
	require.NoError(t, err)
	pr, err := gr.LinkProgram(vertexSrc, fragmentSrc)
	require.NoError(t, err)

	b, err := gr.MakeBatch(pr, ms, ms.ToSlice(gpu.TriangleList), gpu.DrawState{})
	require.NoError(t, err)
	assert.Same(t, pr, b.Program)
	assert.Same(t, ms, b.Mesh)
	assert.Equal(t, gpu.DrawState{}, b.State)

	_, err = gr.MakeBatch(pr, ms, gpu.Slice{Start: 0, End: 4}, gpu.DrawState{})
	assert.Error(t, err)
	_, err = gr.MakeBatch(pr, ms, gpu.Slice{Start: 2, End: 2}, gpu.DrawState{})
	assert.Error(t, err)

	extra, err := gr.LinkProgram(gpu.ShaderSource{GLSL150: vertexSrc.GLSL150 + "in vec3 a_Normal;\n"}, fragmentSrc)
	require.NoError(t, err)
	_, err = gr.MakeBatch(extra, ms, ms.ToSlice(gpu.TriangleList), gpu.DrawState{})
	assert.ErrorContains(t, err, "a_Normal")
}

func TestGraphicsFrame(t *testing.T) {
	dev := gputest.NewDevice(gpu.Version{Major: 1, Minor: 50})
	gr := gpu.NewGraphics(dev)
	ms, err := gpu.NewMesh(gr, verts)
	require.NoError(t, err)
	pr, err := gr.LinkProgram(vertexSrc, fragmentSrc)
	require.NoError(t, err)
	b, err := gr.MakeBatch(pr, ms, ms.ToSlice(gpu.TriangleList), gpu.DrawState{})
	require.NoError(t, err)

	fr := gpu.NewFrame(image.Pt(800, 600))
	cd := gpu.ClearData{Color: math32.Vec4(0.3, 0.3, 0.3, 1), Depth: 1}
	gr.Clear(cd, gpu.ClearAll, fr)
	gr.Draw(b, fr)
	assert.Equal(t, 2, gr.Pending())
	assert.Empty(t, dev.Submitted)

	gr.EndFrame()
	assert.Equal(t, 0, gr.Pending())
	assert.Equal(t, 1, gr.Frames)
	require.Len(t, dev.Submitted, 1)
	cmds := dev.Submitted[0]
	require.Len(t, cmds, 2)
	assert.Equal(t, gpu.ClearCommand, cmds[0].Type)
	assert.Equal(t, cd, cmds[0].Clear)
	assert.True(t, cmds[0].Mask.Has(gpu.ClearColor|gpu.ClearDepth|gpu.ClearStencil))
	assert.Same(t, fr, cmds[0].Frame)
	assert.Equal(t, gpu.DrawCommand, cmds[1].Type)
	assert.Same(t, b, cmds[1].Batch)

	gr.EndFrame()
	assert.Empty(t, dev.Submitted[1])

	gr.Release()
	assert.True(t, dev.Released)
}

func TestClearMask(t *testing.T) {
	assert.True(t, gpu.ClearAll.Has(gpu.ClearDepth))
	assert.False(t, gpu.ClearColor.Has(gpu.ClearDepth))
	assert.Equal(t, "TriangleList", gpu.TriangleList.String())
	assert.Equal(t, "Draw", gpu.DrawCommand.String())
}
