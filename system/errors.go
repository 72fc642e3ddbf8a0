// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

// InitOps are the steps of opening a window that can fail.
type InitOps int32

const (
	// OpValidate is validating the window options.
	OpValidate InitOps = iota

	// OpInit is initializing the window system.
	OpInit

	// OpCreateWindow is creating the window and its context.
	OpCreateWindow
)

func (op InitOps) String() string {
	switch op {
	case OpInit:
		return "initialize window system"
	case OpCreateWindow:
		return "create window"
	}
	return "validate options"
}

// InitError is the error returned by [Open].
type InitError struct {
	Op  InitOps
	Err error
}

func (e *InitError) Error() string {
	return "system: failed to " + e.Op.String() + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
