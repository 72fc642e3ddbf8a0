// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// DrawState is the fixed function state used for a draw.
// The zero value has no culling, no blending, and no depth test.
type DrawState struct {
	CullBack  bool
	Blend     bool
	DepthTest bool
}

// Batch binds a [Program], a [Mesh], a [Slice] of it, and a
// [DrawState] together, ready to be drawn with [Graphics.Draw].
// It is made by [Graphics.MakeBatch].
type Batch struct {
	Program *Program
	Mesh    *Mesh
	Slice   Slice
	State   DrawState
}
