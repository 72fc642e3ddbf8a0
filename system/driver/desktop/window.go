// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"unsafe"

	"cogentcore.org/triangle/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the GLFW [system.Window].
type Window struct {
	glw   *glfw.Window
	queue events.Queue
}

func (w *Window) MakeContextCurrent() {
	w.glw.MakeContextCurrent()
}

func (w *Window) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *Window) Size() image.Point {
	return image.Pt(w.glw.GetSize())
}

func (w *Window) FramebufferSize() image.Point {
	return image.Pt(w.glw.GetFramebufferSize())
}

// PollEvents runs the GLFW callbacks for all pending events,
// which fill the event queue, and then drains the queue.
func (w *Window) PollEvents() []events.Event {
	glfw.PollEvents()
	return w.queue.Drain()
}

func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.glw.SetShouldClose(value)
}

func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// Release destroys the window and terminates GLFW.
func (w *Window) Release() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	glfw.Terminate()
}
