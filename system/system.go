// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the window and context bootstrap: the
// [Window] and [Driver] contracts that a platform driver implements,
// and [Open], which creates the window with a graphics context.
package system

import (
	"image"

	"cogentcore.org/triangle/events"
	"cogentcore.org/triangle/gpu"
)

// Window is a platform window with its graphics context.
// All of its methods must be called on the main thread.
type Window interface {
	gpu.Context

	// Size returns the logical size of the window in screen coordinates.
	Size() image.Point

	// FramebufferSize returns the size of the framebuffer in pixels,
	// which differs from Size on high DPI displays.
	FramebufferSize() image.Point

	// PollEvents processes pending platform events without blocking,
	// and returns the window events received since the last call.
	PollEvents() []events.Event

	// ShouldClose returns whether the window has been flagged for closing.
	ShouldClose() bool

	// SetShouldClose sets the close flag of the window.
	SetShouldClose(value bool)

	// SwapBuffers presents the back buffer of the window.
	SwapBuffers()

	// Release destroys the window and terminates the driver.
	Release()
}

// Driver is a platform window system.
type Driver interface {

	// Init initializes the window system.
	Init() error

	// NewWindow creates a new window with a graphics context
	// according to the given options.
	NewWindow(opts *Options) (Window, error)

	// Terminate shuts down the window system.
	Terminate()
}
