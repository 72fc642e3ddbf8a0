// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// CommandTypes are the types of [Command].
type CommandTypes int32

const (
	// ClearCommand clears buffers of a frame.
	ClearCommand CommandTypes = iota

	// DrawCommand draws a batch into a frame.
	DrawCommand
)

func (ct CommandTypes) String() string {
	if ct == DrawCommand {
		return "Draw"
	}
	return "Clear"
}

// Command is one recorded GPU command.
type Command struct {
	Type CommandTypes

	// Frame is the target of the command.
	Frame *Frame

	// Clear and Mask are used for a [ClearCommand].
	Clear ClearData
	Mask  ClearMask

	// Batch is used for a [DrawCommand].
	Batch *Batch
}

// CommandBuffer is an ordered list of commands
// recorded for submission to a [Device].
type CommandBuffer struct {
	Commands []Command
}

// Clear records a [ClearCommand].
func (cb *CommandBuffer) Clear(cd ClearData, mask ClearMask, fr *Frame) {
	cb.Commands = append(cb.Commands, Command{Type: ClearCommand, Frame: fr, Clear: cd, Mask: mask})
}

// Draw records a [DrawCommand].
func (cb *CommandBuffer) Draw(b *Batch, fr *Frame) {
	cb.Commands = append(cb.Commands, Command{Type: DrawCommand, Frame: fr, Batch: b})
}

// Len returns the number of recorded commands.
func (cb *CommandBuffer) Len() int {
	return len(cb.Commands)
}

// Reset removes all of the commands, keeping the memory.
func (cb *CommandBuffer) Reset() {
	clear(cb.Commands)
	cb.Commands = cb.Commands[:0]
}
