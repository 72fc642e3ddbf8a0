// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window and keyboard events
// delivered by a [cogentcore.org/triangle/system.Window].
package events

// Types is the type of a window event.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// KeyDown is sent when a key is pressed down.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	// KeyRepeat is sent while a key is held down.
	KeyRepeat

	// WindowClose is sent when the user requests
	// that the window be closed.
	WindowClose

	TypesN
)

var typesNames = [...]string{"UnknownType", "KeyDown", "KeyUp", "KeyRepeat", "WindowClose"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(invalid)"
	}
	return typesNames[tp]
}

// Keys are the key codes that are recognized.
// Every other key is reported as [KeyUnknown].
type Keys int32

const (
	KeyUnknown Keys = iota
	KeyEscape
)

func (k Keys) String() string {
	if k == KeyEscape {
		return "Escape"
	}
	return "Unknown"
}

// Event is one window event. Key events carry the key
// and the platform scancode; other events leave them zero.
type Event struct {
	Type     Types
	Key      Keys
	Scancode int
}

// NewKey returns a new key event of the given type.
func NewKey(typ Types, key Keys, scancode int) Event {
	return Event{Type: typ, Key: key, Scancode: scancode}
}

// NewWindowClose returns a new [WindowClose] event.
func NewWindowClose() Event {
	return Event{Type: WindowClose}
}

// IsKey returns whether this is a key event.
func (ev Event) IsKey() bool {
	return ev.Type == KeyDown || ev.Type == KeyUp || ev.Type == KeyRepeat
}

func (ev Event) String() string {
	if ev.IsKey() {
		return ev.Type.String() + " " + ev.Key.String()
	}
	return ev.Type.String()
}
