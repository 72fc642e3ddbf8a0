// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	"fmt"
	"log/slog"

	"cogentcore.org/triangle/events"
	"cogentcore.org/triangle/gpu"
	"cogentcore.org/triangle/system"
)

// Window is the demo: a platform window and the graphics of its
// context, with the triangle mesh, program and batch, and the frame
// they are drawn into. Everything is created once by [Initialize]
// and is released together by [Window.Release].
type Window struct {

	// System is the platform window.
	System system.Window

	// Graphics records and submits the commands of each frame.
	Graphics *gpu.Graphics

	// Mesh holds the three vertices of the triangle.
	Mesh *gpu.Mesh

	// Slice is all of Mesh, as a triangle list.
	Slice gpu.Slice

	// Program is the linked shader program.
	Program *gpu.Program

	// Batch binds Program, Mesh and Slice for drawing.
	Batch *gpu.Batch

	// Frame is the render target, sized to the framebuffer
	// of the window when it was initialized.
	Frame *gpu.Frame

	// Clear are the values each frame is cleared to.
	Clear gpu.ClearData
}

// Initialize creates the triangle resources on the given device,
// which must be bound to the context of the given window, and
// returns the demo ready to run. The window and device are not
// released on error; that is up to the caller.
func Initialize(sw system.Window, dev gpu.Device, cfg *Config) (*Window, error) {
	gr := gpu.NewGraphics(dev)
	verts := Vertices()
	ms, err := gpu.NewMesh(gr, verts[:])
	if err != nil {
		return nil, fmt.Errorf("triangle.Initialize: uploading mesh: %w", err)
	}
	sl := ms.ToSlice(gpu.TriangleList)
	pr, err := gr.LinkProgram(VertexSource, FragmentSource)
	if err != nil {
		return nil, fmt.Errorf("triangle.Initialize: %w", err)
	}
	b, err := gr.MakeBatch(pr, ms, sl, gpu.DrawState{})
	if err != nil {
		return nil, fmt.Errorf("triangle.Initialize: %w", err)
	}
	w := &Window{
		System:   sw,
		Graphics: gr,
		Mesh:     ms,
		Slice:    sl,
		Program:  pr,
		Batch:    b,
		Frame:    gpu.NewFrame(sw.FramebufferSize()),
		Clear:    cfg.ClearData(),
	}
	slog.Debug("triangle: initialized", "frame", w.Frame.Size, "dialect", pr.Dialect)
	return w, nil
}

// Open opens a window with the given driver and configuration, binds
// a device to its context with newDevice, and initializes the demo
// in it. On any error, everything made so far is released.
func Open(drv system.Driver, newDevice func(ctx gpu.Context) (gpu.Device, error), cfg *Config) (*Window, error) {
	sw, err := system.Open(drv, cfg.WindowOptions())
	if err != nil {
		return nil, err
	}
	dev, err := newDevice(sw)
	if err != nil {
		sw.Release()
		return nil, fmt.Errorf("triangle.Open: binding device: %w", err)
	}
	w, err := Initialize(sw, dev, cfg)
	if err != nil {
		dev.Release()
		sw.Release()
		return nil, err
	}
	return w, nil
}

// HandleEvent handles one window event: a press of the Escape key,
// or a close request, flags the window for closing. It returns
// whether the window was flagged. All other events are ignored.
func (w *Window) HandleEvent(ev events.Event) bool {
	escape := ev.Type == events.KeyDown && ev.Key == events.KeyEscape
	if !escape && ev.Type != events.WindowClose {
		return false
	}
	w.System.SetShouldClose(true)
	return true
}

// RenderFrame clears the frame, draws the triangle, submits
// the frame, and presents it.
func (w *Window) RenderFrame() {
	w.Graphics.Clear(w.Clear, gpu.ClearAll, w.Frame)
	w.Graphics.Draw(w.Batch, w.Frame)
	w.Graphics.EndFrame()
	w.System.SwapBuffers()
}

// Step runs one iteration of the render loop: if the window is
// flagged for closing it returns false; otherwise it polls and
// handles events, renders one frame, and returns true.
func (w *Window) Step() bool {
	if w.System.ShouldClose() {
		return false
	}
	for _, ev := range w.System.PollEvents() {
		w.HandleEvent(ev)
	}
	w.RenderFrame()
	return true
}

// Run renders frames until the window is flagged for closing.
func (w *Window) Run() {
	for w.Step() {
	}
	slog.Debug("triangle: window closed", "frames", w.Graphics.Frames)
}

// Release releases the GPU resources and then the window.
func (w *Window) Release() {
	w.Graphics.Release()
	w.System.Release()
}
