// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"fmt"
	"strings"

	"cogentcore.org/triangle/gpu"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// FragDataVar is the name of the fragment shader output
// variable in the GLSL 1.50 dialect.
const FragDataVar = "o_Color"

// CompileProgram compiles the two stages, links them, and records
// the locations of the active vertex attributes of the program.
func (dv *Device) CompileProgram(dialect gpu.Dialect, vertex, fragment string) (*gpu.Program, error) {
	vs, err := compileShader(gpu.VertexShader, vertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gpu.FragmentShader, fragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	if dialect == gpu.GLSL150 {
		gl.BindFragDataLocation(handle, 0, gl.Str(FragDataVar+"\x00"))
	}
	gl.LinkProgram(handle)
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		lg := infoLog(handle, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("gldriver.CompileProgram: %s: %v", dialect, lg)
	}
	dv.programs = append(dv.programs, handle)
	return &gpu.Program{Handle: handle, Dialect: dialect, Attributes: attributes(handle)}, nil
}

// compileShader compiles the given source as a shader of the given type.
// The source does not need to be null terminated.
func compileShader(typ gpu.ShaderTypes, src string) (uint32, error) {
	handle := gl.CreateShader(glShaders[typ])
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		lg := infoLog(handle, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("gldriver: failed to compile %s:\n%v\nerror: %v", typ, src, lg)
	}
	return handle, nil
}

func infoLog(handle uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(handle, gl.INFO_LOG_LENGTH, &n)
	lg := strings.Repeat("\x00", int(n+1))
	getLog(handle, n, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00\n")
}

// attributes returns the locations of the active attributes of the program.
func attributes(handle uint32) map[string]int32 {
	var n, maxLen int32
	gl.GetProgramiv(handle, gl.ACTIVE_ATTRIBUTES, &n)
	gl.GetProgramiv(handle, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	attrs := make(map[string]int32, n)
	buf := make([]uint8, maxLen+1)
	for i := range uint32(n) {
		var length, size int32
		var typ uint32
		gl.GetActiveAttrib(handle, i, int32(len(buf)), &length, &size, &typ, &buf[0])
		name := string(buf[:length])
		if strings.HasPrefix(name, "gl_") {
			continue
		}
		attrs[name] = gl.GetAttribLocation(handle, gl.Str(name+"\x00"))
	}
	return attrs
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}
