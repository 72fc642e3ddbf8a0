// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user log level and a colored
// terminal handler for [log/slog].
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It is Info by default,
// Debug with the debug build tag, and Warn with the release build tag.
var UserLevel = defaultUserLevel

// UseColor is whether to use color in log messages.
// It is on by default.
var UseColor = true

// InitLogger sets up the default logger to write to [os.Stderr]
// at [UserLevel], with the level colored when [UseColor] is on.
// It is called by the triangle binary before anything else.
func InitLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new text handler writing to the given writer,
// filtering at [UserLevel] and coloring the level with termenv
// according to the color profile of the writer.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 || !UseColor {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lvl))
			return a
		},
	})
}

// levelVar reads [UserLevel] at each record, so that
// changes after [InitLogger] take effect.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }

// LevelString returns the name of the given level styled
// for the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	if out.Profile == termenv.Ascii {
		return lvl.String()
	}
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Faint()
	}
	return s.String()
}
