// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"1.50", Version{1, 50}},
		{"1.20 NVIDIA via Cg compiler", Version{1, 20}},
		{"4.60 NVIDIA", Version{4, 60}},
		{"3.2.0 NVIDIA 535.54.03", Version{3, 2}},
		{"4.1 Metal - 88", Version{4, 1}},
		{"OpenGL ES GLSL ES 3.00", Version{3, 0}},
		{"3.3 (Core Profile) Mesa 23.2.1", Version{3, 3}},
	}
	for _, tt := range tests {
		v, err := ParseVersion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v, tt.in)
	}

	_, err := ParseVersion("no version here")
	assert.Error(t, err)
	_, err = ParseVersion("")
	assert.Error(t, err)
}

func TestIsES(t *testing.T) {
	assert.True(t, IsES("OpenGL ES 3.2 Mesa 23.2.1"))
	assert.True(t, IsES("OpenGL ES GLSL ES 3.00"))
	assert.False(t, IsES("4.6.0 NVIDIA 535.54.03"))
	assert.False(t, IsES("3.3 (Core Profile) Mesa 23.2.1"))
	assert.False(t, IsES(""))
}

func TestVersionAtLeast(t *testing.T) {
	assert.True(t, Version{1, 50}.AtLeast(Version{1, 50}))
	assert.True(t, Version{4, 10}.AtLeast(Version{1, 50}))
	assert.True(t, Version{1, 30}.AtLeast(Version{1, 20}))
	assert.False(t, Version{1, 40}.AtLeast(Version{1, 50}))
	assert.False(t, Version{1, 10}.AtLeast(Version{1, 20}))
	assert.Equal(t, "1.50", Version{1, 50}.String())
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		glsl Version
		want Dialect
	}{
		{Version{1, 20}, GLSL120},
		{Version{1, 30}, GLSL120},
		{Version{1, 40}, GLSL120},
		{Version{1, 50}, GLSL150},
		{Version{3, 30}, GLSL150},
		{Version{4, 60}, GLSL150},
	}
	for _, tt := range tests {
		d, err := DialectFor(tt.glsl)
		require.NoError(t, err, tt.glsl.String())
		assert.Equal(t, tt.want, d, tt.glsl.String())
	}

	d, err := DialectFor(Version{1, 10})
	assert.ErrorIs(t, err, ErrNoDialect)
	assert.Equal(t, NoDialect, d)

	d, err = Capabilities{GLSL: Version{1, 50}}.Dialect()
	assert.NoError(t, err)
	assert.Equal(t, GLSL150, d)

	d, err = Capabilities{GLSL: Version{3, 0}, ES: true}.Dialect()
	assert.ErrorIs(t, err, ErrNoDialect)
	assert.Equal(t, NoDialect, d)
}

func TestShaderSourceSelect(t *testing.T) {
	ss := ShaderSource{GLSL120: "#version 120\n", GLSL150: "#version 150 core\n"}
	src, err := ss.Select(GLSL120)
	assert.NoError(t, err)
	assert.Equal(t, "#version 120\n", src)

	src, err = ss.Select(GLSL150)
	assert.NoError(t, err)
	assert.Equal(t, "#version 150 core\n", src)

	_, err = ss.Select(NoDialect)
	assert.ErrorIs(t, err, ErrNoDialect)

	only := ShaderSource{GLSL150: "#version 150 core\n"}
	_, err = only.Select(GLSL120)
	assert.ErrorIs(t, err, ErrNoDialect)

	assert.Equal(t, "GLSL150", GLSL150.String())
	assert.Equal(t, "NoDialect", Dialect(9).String())
	assert.Equal(t, Version{}, NoDialect.Version())
}
