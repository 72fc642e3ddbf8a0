// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector package
// for the vertex and color data of the triangle demo.
package math32

import (
	"github.com/chewxy/math32"
)

// Clamp returns x clamped to the range [a, b].
func Clamp(x, a, b float32) float32 {
	return math32.Max(a, math32.Min(x, b))
}
