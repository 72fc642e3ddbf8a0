// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Mesh is vertex data in GPU memory, with the format needed
// to interpret it. It is created by [Device.CreateMesh] and
// is not modified after that.
type Mesh struct {

	// Format is the layout of each vertex.
	Format VertexFormat

	// N is the number of vertices.
	N int

	// Buffer is the device handle of the vertex buffer.
	Buffer uint32

	// VertexArray is the device handle of the vertex array
	// object, if the device uses one.
	VertexArray uint32
}

// NewMesh uploads the given vertices to a new [Mesh] on the device
// of the given graphics, using the [VertexFormat] of V.
func NewMesh[V any](gr *Graphics, verts []V) (*Mesh, error) {
	vf, err := FormatOf[V]()
	if err != nil {
		return nil, err
	}
	if len(verts) == 0 {
		return nil, fmt.Errorf("gpu.NewMesh: no vertices")
	}
	return gr.Device.CreateMesh(vf, Float32s(verts))
}

// ToSlice returns a [Slice] over all of the vertices of the mesh,
// drawn with the given topology.
func (ms *Mesh) ToSlice(topo Topologies) Slice {
	return Slice{Start: 0, End: ms.N, Topology: topo}
}

// Slice is the range of vertices of a [Mesh] to draw,
// and the topology to draw them with.
type Slice struct {
	Start    int
	End      int
	Topology Topologies
}

// Count returns the number of vertices in the slice.
func (sl Slice) Count() int {
	return sl.End - sl.Start
}

// Topologies are the different vertex topology
type Topologies int32

const (
	PointList Topologies = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

var topologiesNames = [...]string{"PointList", "LineList", "LineStrip", "TriangleList", "TriangleStrip"}

func (tp Topologies) String() string {
	if tp < 0 || int(tp) >= len(topologiesNames) {
		return "Topologies(invalid)"
	}
	return topologiesNames[tp]
}
