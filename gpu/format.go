// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"reflect"
	"slices"
	"unsafe"
)

// Attribute is one named vertex attribute in a [VertexFormat].
type Attribute struct {

	// Name is the name of the attribute input in the vertex shader.
	Name string

	// Components is the number of float32 components (1-4).
	Components int

	// Offset is the byte offset of the attribute within a vertex.
	Offset int
}

// VertexFormat describes the layout of interleaved float32 vertex data.
type VertexFormat struct {
	Attributes []Attribute

	// Stride is the number of bytes per vertex.
	Stride int
}

// Attribute returns the attribute with the given name, if any.
func (vf *VertexFormat) Attribute(name string) (Attribute, bool) {
	for _, a := range vf.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Floats returns the number of float32 values per vertex.
func (vf *VertexFormat) Floats() int {
	return vf.Stride / 4
}

// FormatOf returns the [VertexFormat] of the vertex struct type V.
// Each field must be a float32, an array of float32, or a struct of
// float32 fields (such as math32.Vector2), and the struct must not
// have any padding. The attribute name is given by the `attr` field
// tag, defaulting to the field name.
func FormatOf[V any]() (VertexFormat, error) {
	typ := reflect.TypeFor[V]()
	if typ.Kind() != reflect.Struct {
		return VertexFormat{}, fmt.Errorf("gpu.FormatOf: %v is not a struct", typ)
	}
	vf := VertexFormat{Stride: int(typ.Size())}
	floats := 0
	for i := range typ.NumField() {
		f := typ.Field(i)
		n, ok := float32Components(f.Type)
		if !ok || n > 4 {
			return VertexFormat{}, fmt.Errorf("gpu.FormatOf: field %s.%s of type %v is not 1 to 4 float32 values", typ.Name(), f.Name, f.Type)
		}
		name := f.Tag.Get("attr")
		if name == "" {
			name = f.Name
		}
		vf.Attributes = append(vf.Attributes, Attribute{Name: name, Components: n, Offset: int(f.Offset)})
		floats += n
	}
	if floats == 0 || floats*4 != vf.Stride {
		return VertexFormat{}, fmt.Errorf("gpu.FormatOf: %v is not packed float32 data", typ)
	}
	return vf, nil
}

func float32Components(t reflect.Type) (int, bool) {
	switch t.Kind() {
	case reflect.Float32:
		return 1, true
	case reflect.Array:
		return t.Len(), t.Elem().Kind() == reflect.Float32
	case reflect.Struct:
		for i := range t.NumField() {
			if t.Field(i).Type.Kind() != reflect.Float32 {
				return 0, false
			}
		}
		return t.NumField(), t.NumField() > 0
	}
	return 0, false
}

// Float32s returns a copy of the given vertices as interleaved float32 data.
// V must be a type accepted by [FormatOf].
func Float32s[V any](verts []V) []float32 {
	if len(verts) == 0 {
		return nil
	}
	n := len(verts) * int(unsafe.Sizeof(verts[0])) / 4
	return slices.Clone(unsafe.Slice((*float32)(unsafe.Pointer(&verts[0])), n))
}
