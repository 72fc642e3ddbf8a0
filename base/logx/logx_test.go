// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHandlerLevel(t *testing.T) {
	prev := UserLevel
	t.Cleanup(func() { UserLevel = prev })

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))

	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	assert.Empty(t, buf.String())

	lg.Warn("shown", "op", "create window")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `op="create window"`)

	buf.Reset()
	UserLevel = slog.LevelDebug
	lg.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestLevelStringAscii(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "ERROR", LevelString(out, slog.LevelError))
	assert.Equal(t, "WARN", LevelString(out, slog.LevelWarn))
	assert.Equal(t, "INFO", LevelString(out, slog.LevelInfo))
	assert.Equal(t, "DEBUG", LevelString(out, slog.LevelDebug))
}

func TestLevelStringColor(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI))
	s := LevelString(out, slog.LevelError)
	assert.Contains(t, s, "ERROR")
	assert.NotEqual(t, "ERROR", s)
}
