// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"

	"cogentcore.org/triangle/gpu"
)

// Options are the options for a new window.
type Options struct {

	// Size is the size of the window in screen coordinates.
	Size image.Point

	// Title is the title of the window.
	Title string

	// ContextVersion is the requested graphics API version.
	ContextVersion gpu.Version

	// ForwardCompatible requests a forward-compatible context,
	// without deprecated functionality.
	ForwardCompatible bool

	// CoreProfile requests a core profile context.
	CoreProfile bool
}

// DefaultTitle is the window title used when none is given.
const DefaultTitle = "no title"

// Validate returns an error if the options cannot make a window.
func (o *Options) Validate() error {
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		return fmt.Errorf("invalid window size %v", o.Size)
	}
	if o.ContextVersion.Major <= 0 {
		return fmt.Errorf("invalid context version %v", o.ContextVersion)
	}
	return nil
}

// GetTitle returns the title, or [DefaultTitle] if it is empty.
func (o *Options) GetTitle() string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}
