// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package systemtest provides a scripted [system.Driver] and
// [system.Window] for testing without a window system.
package systemtest

import (
	"image"
	"unsafe"

	"cogentcore.org/triangle/events"
	"cogentcore.org/triangle/system"
)

// Driver is a [system.Driver] that returns a [Window],
// or the configured errors.
type Driver struct {

	// InitErr and WindowErr, if set, are returned by Init and NewWindow.
	InitErr   error
	WindowErr error

	// Scale is the framebuffer pixels per window unit, 1 if zero.
	Scale int

	// Inited and Terminated are whether Init and Terminate were called.
	Inited     bool
	Terminated bool

	// Window is the last window made.
	Window *Window
}

func (d *Driver) Init() error {
	d.Inited = true
	return d.InitErr
}

func (d *Driver) Terminate() {
	d.Terminated = true
}

func (d *Driver) NewWindow(opts *system.Options) (system.Window, error) {
	if d.WindowErr != nil {
		return nil, d.WindowErr
	}
	d.Window = NewWindow(opts.Size, max(d.Scale, 1))
	d.Window.Options = *opts
	return d.Window, nil
}

// Window is a [system.Window] whose events come from a script:
// each call to PollEvents returns the next batch in Script.
type Window struct {

	// Options are the options the window was made with.
	Options system.Options

	// Script are the batches of events returned by successive polls.
	Script [][]events.Event

	// Polls, Swaps and Currents count calls to PollEvents,
	// SwapBuffers and MakeContextCurrent.
	Polls    int
	Swaps    int
	Currents int

	// Released is whether Release was called.
	Released bool

	size        image.Point
	framebuffer image.Point
	closeFlag   bool
}

// NewWindow returns a new [Window] of the given size, with a
// framebuffer that is scale times larger.
func NewWindow(size image.Point, scale int) *Window {
	return &Window{size: size, framebuffer: size.Mul(scale)}
}

func (w *Window) MakeContextCurrent() {
	w.Currents++
}

func (w *Window) GetProcAddress(name string) unsafe.Pointer {
	return nil
}

func (w *Window) Size() image.Point {
	return w.size
}

func (w *Window) FramebufferSize() image.Point {
	return w.framebuffer
}

func (w *Window) PollEvents() []events.Event {
	w.Polls++
	if len(w.Script) == 0 {
		return nil
	}
	evs := w.Script[0]
	w.Script = w.Script[1:]
	return evs
}

func (w *Window) ShouldClose() bool {
	return w.closeFlag
}

func (w *Window) SetShouldClose(value bool) {
	w.closeFlag = value
}

func (w *Window) SwapBuffers() {
	w.Swaps++
}

func (w *Window) Release() {
	w.Released = true
}
