// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the [system.Driver] for
// desktop platforms with GLFW and OpenGL contexts.
package desktop

import (
	"runtime"

	"cogentcore.org/triangle/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// must lock main thread for glfw and the OpenGL context
	runtime.LockOSThread()
}

// TheDriver is the single instance of the GLFW driver.
var TheDriver = &Driver{}

// Driver is the GLFW [system.Driver].
type Driver struct{}

var (
	_ system.Driver = (*Driver)(nil)
	_ system.Window = (*Window)(nil)
)

// Init initializes GLFW.
// IMPORTANT: must be called on the main initial thread!
func (d *Driver) Init() error {
	return glfw.Init()
}

// Terminate shuts down GLFW.
// IMPORTANT: must be called on the main initial thread!
func (d *Driver) Terminate() {
	glfw.Terminate()
}

// NewWindow creates a new window with an OpenGL context of the
// requested version and profile, makes the context current, and
// enables key and close event delivery.
func (d *Driver) NewWindow(opts *system.Options) (system.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.ContextVersion.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.ContextVersion.Minor)
	if opts.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if opts.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.GetTitle(), nil, nil)
	if err != nil {
		return nil, err
	}
	w := &Window{glw: glw}
	glw.MakeContextCurrent()
	glw.SetKeyCallback(w.KeyEvent)
	glw.SetCloseCallback(w.CloseEvent)
	return w, nil
}
