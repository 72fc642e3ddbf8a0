// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
)

// Open initializes the given driver and creates a new window with it.
// Any failure is returned as an [*InitError], with no window; the
// driver is terminated if it was initialized. The caller decides
// whether a failure is fatal.
func Open(drv Driver, opts *Options) (Window, error) {
	if err := opts.Validate(); err != nil {
		return nil, &InitError{Op: OpValidate, Err: err}
	}
	if err := drv.Init(); err != nil {
		return nil, &InitError{Op: OpInit, Err: err}
	}
	w, err := drv.NewWindow(opts)
	if err != nil {
		drv.Terminate()
		return nil, &InitError{Op: OpCreateWindow, Err: err}
	}
	slog.Info("system: opened window", "title", opts.GetTitle(), "size", opts.Size, "framebuffer", w.FramebufferSize(), "context", opts.ContextVersion)
	return w, nil
}
