// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/triangle/base/errors"
)

var (
	// ErrNoDialect is returned when there is no shader source
	// for the shading language version of a context.
	ErrNoDialect = errors.New("no shader source for the shading language version")

	// ErrLink is returned when a program fails to compile or link.
	ErrLink = errors.New("failed to link program")
)

// Dialect is a version of the shading language that
// shader sources can be written in.
type Dialect int32

const (
	// NoDialect is the zero value: no dialect is supported.
	NoDialect Dialect = iota

	// GLSL120 is GLSL version 1.20 (OpenGL 2.1), with
	// attribute and varying qualifiers and gl_FragColor.
	GLSL120

	// GLSL150 is GLSL version 1.50 core (OpenGL 3.2),
	// with in and out qualifiers.
	GLSL150
)

// dialects are the supported dialects, newest first.
var dialects = []Dialect{GLSL150, GLSL120}

// Version returns the shading language version of the dialect.
func (d Dialect) Version() Version {
	switch d {
	case GLSL120:
		return Version{1, 20}
	case GLSL150:
		return Version{1, 50}
	}
	return Version{}
}

func (d Dialect) String() string {
	switch d {
	case GLSL120:
		return "GLSL120"
	case GLSL150:
		return "GLSL150"
	}
	return "NoDialect"
}

// DialectFor returns the newest dialect that a context with the given
// shading language version can compile.
func DialectFor(glsl Version) (Dialect, error) {
	for _, d := range dialects {
		if glsl.AtLeast(d.Version()) {
			return d, nil
		}
	}
	return NoDialect, fmt.Errorf("gpu.DialectFor: GLSL %s: %w", glsl, ErrNoDialect)
}

// ShaderSource is the source code of one shader stage,
// in each of the supported dialects.
type ShaderSource struct {
	GLSL120 string
	GLSL150 string
}

// Select returns the source for the given dialect, or an error
// wrapping [ErrNoDialect] if there is none.
func (ss *ShaderSource) Select(d Dialect) (string, error) {
	var src string
	switch d {
	case GLSL120:
		src = ss.GLSL120
	case GLSL150:
		src = ss.GLSL150
	}
	if src == "" {
		return "", fmt.Errorf("gpu.ShaderSource: %s: %w", d, ErrNoDialect)
	}
	return src, nil
}

// ShaderTypes is a list of shader stage types
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	if st == FragmentShader {
		return "FragmentShader"
	}
	return "VertexShader"
}
