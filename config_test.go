// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	"image"
	"testing"

	"cogentcore.org/triangle/gpu"
	"cogentcore.org/triangle/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "no title", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, ContextConfig{Major: 3, Minor: 2, ForwardCompatible: true, CoreProfile: true}, cfg.Context)

	opts := cfg.WindowOptions()
	assert.Equal(t, image.Pt(800, 600), opts.Size)
	assert.Equal(t, gpu.Version{Major: 3, Minor: 2}, opts.ContextVersion)
	assert.True(t, opts.ForwardCompatible)
	assert.True(t, opts.CoreProfile)
	assert.NoError(t, opts.Validate())

	assert.Equal(t, gpu.ClearData{Color: math32.Vec4(0.3, 0.3, 0.3, 1), Depth: 1, Stencil: 0}, cfg.ClearData())
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
Title = "Triangle"
Width = 320
Height = 240

[Context]
Major = 2
Minor = 1

[Clear]
Color = [1.5, 0.0, -1.0, 1.0]
Depth = 2.0
Stencil = 7
`))
	require.NoError(t, err)
	assert.Equal(t, "Triangle", cfg.Title)
	assert.Equal(t, image.Pt(320, 240), cfg.WindowOptions().Size)
	assert.False(t, cfg.Context.CoreProfile)
	assert.Equal(t, gpu.ClearData{Color: math32.Vec4(1, 0, 0, 1), Depth: 1, Stencil: 7}, cfg.ClearData())

	_, err = ParseConfig([]byte("Width = \"wide\""))
	assert.Error(t, err)
}
