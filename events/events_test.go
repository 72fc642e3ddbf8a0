// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	var q Queue
	assert.Nil(t, q.Drain())

	q.Send(NewKey(KeyDown, KeyEscape, 9))
	q.Send(NewKey(KeyUp, KeyEscape, 9))
	q.Send(NewWindowClose())

	evs := q.Drain()
	assert.Equal(t, []Event{NewKey(KeyDown, KeyEscape, 9), NewKey(KeyUp, KeyEscape, 9), NewWindowClose()}, evs)
	assert.Nil(t, q.Drain())

	q.Send(NewWindowClose())
	assert.Equal(t, []Event{NewWindowClose()}, q.Drain())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "KeyDown Escape", NewKey(KeyDown, KeyEscape, 0).String())
	assert.Equal(t, "KeyUp Unknown", NewKey(KeyUp, KeyUnknown, 0).String())
	assert.Equal(t, "WindowClose", NewWindowClose().String())
	assert.Equal(t, "Types(invalid)", Types(42).String())
	assert.True(t, NewKey(KeyRepeat, KeyEscape, 0).IsKey())
	assert.False(t, NewWindowClose().IsKey())
}
