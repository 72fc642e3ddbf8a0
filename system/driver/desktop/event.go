// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"cogentcore.org/triangle/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyEvent is the GLFW key callback.
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	w.queue.Send(events.NewKey(GlfwAction(action), GlfwKey(ky), scancode))
}

// CloseEvent is the GLFW window close callback.
func (w *Window) CloseEvent(gw *glfw.Window) {
	w.queue.Send(events.NewWindowClose())
}

// GlfwAction returns the event type for the given key action.
func GlfwAction(action glfw.Action) events.Types {
	switch action {
	case glfw.Press:
		return events.KeyDown
	case glfw.Release:
		return events.KeyUp
	case glfw.Repeat:
		return events.KeyRepeat
	}
	return events.UnknownType
}

// GlfwKey returns the key for the given GLFW key.
func GlfwKey(ky glfw.Key) events.Keys {
	if ky == glfw.KeyEscape {
		return events.KeyEscape
	}
	return events.KeyUnknown
}
