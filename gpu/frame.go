// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/triangle/math32"
)

// Frame is a render target: the default framebuffer of a window,
// with the size of that framebuffer in pixels.
type Frame struct {
	Size image.Point
}

// NewFrame returns a new [Frame] of the given size.
func NewFrame(size image.Point) *Frame {
	return &Frame{Size: size}
}

// ClearMask are the buffers of a [Frame] to clear.
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
	ClearStencil

	ClearAll = ClearColor | ClearDepth | ClearStencil
)

// Has returns whether the mask includes all of the given buffers.
func (cm ClearMask) Has(b ClearMask) bool {
	return cm&b == b
}

// ClearData are the values to clear a [Frame] to.
type ClearData struct {

	// Color is the RGBA color.
	Color math32.Vector4

	// Depth is the depth value, typically 1.
	Depth float32

	// Stencil is the stencil value.
	Stencil uint8
}
