// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	_ "embed"
	"fmt"
	"image"

	"cogentcore.org/triangle/base/errors"
	"cogentcore.org/triangle/gpu"
	"cogentcore.org/triangle/math32"
	"cogentcore.org/triangle/system"
	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml
var defaultConfig []byte

// Config is the configuration of the demo.
type Config struct {

	// Title is the title of the window.
	Title string

	// Width and Height are the size of the window in screen coordinates.
	Width  int
	Height int

	// Context is the requested OpenGL context.
	Context ContextConfig

	// Clear are the values that each frame is cleared to.
	Clear ClearConfig
}

// ContextConfig is the requested version and profile of the OpenGL context.
type ContextConfig struct {
	Major             int
	Minor             int
	ForwardCompatible bool
	CoreProfile       bool
}

// ClearConfig are the clear values of each frame.
type ClearConfig struct {
	Color   [4]float32
	Depth   float32
	Stencil uint8
}

// DefaultConfig returns the default configuration,
// which is compiled into the binary.
func DefaultConfig() *Config {
	return errors.Must1(ParseConfig(defaultConfig))
}

// ParseConfig returns the configuration in the given TOML data.
// Values missing from the data are zero.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("triangle.ParseConfig: %w", err)
	}
	return cfg, nil
}

// WindowOptions returns the options for opening the window.
func (c *Config) WindowOptions() *system.Options {
	return &system.Options{
		Size:              image.Pt(c.Width, c.Height),
		Title:             c.Title,
		ContextVersion:    gpu.Version{Major: c.Context.Major, Minor: c.Context.Minor},
		ForwardCompatible: c.Context.ForwardCompatible,
		CoreProfile:       c.Context.CoreProfile,
	}
}

// ClearData returns the values to clear each frame to,
// with the color clamped to the valid range.
func (c *Config) ClearData() gpu.ClearData {
	cl := c.Clear.Color
	return gpu.ClearData{
		Color:   math32.Vec4(cl[0], cl[1], cl[2], cl[3]).Clamp(),
		Depth:   math32.Clamp(c.Clear.Depth, 0, 1),
		Stencil: c.Clear.Stencil,
	}
}
