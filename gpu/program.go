// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"maps"
	"slices"
)

// Program is a linked shader program. It is created by
// [Device.CompileProgram] and is not modified after that.
type Program struct {

	// Handle is the device handle of the program.
	Handle uint32

	// Dialect is the dialect the program was compiled from.
	Dialect Dialect

	// Attributes are the locations of the active vertex
	// attribute inputs of the program, by name.
	Attributes map[string]int32
}

// AttributeNames returns the sorted names of the active attributes.
func (pr *Program) AttributeNames() []string {
	return slices.Sorted(maps.Keys(pr.Attributes))
}
