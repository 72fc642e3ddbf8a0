// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Version is a major.minor version number, as reported by a driver.
// Shading language versions keep their two-digit minor number,
// so GLSL 1.50 is {1, 50}.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses the first major.minor number found in the given
// driver version string, such as "4.6.0 NVIDIA 535.54" or
// "OpenGL ES GLSL ES 3.00". Anything after the minor number is ignored.
// Use [IsES] to tell whether the string is for OpenGL ES.
func ParseVersion(s string) (Version, error) {
	for _, f := range strings.Fields(s) {
		maj, rest, ok := strings.Cut(f, ".")
		if !ok {
			continue
		}
		mj, err := strconv.Atoi(maj)
		if err != nil {
			continue
		}
		end := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
		if end < 0 {
			end = len(rest)
		}
		if end == 0 {
			continue
		}
		mn, err := strconv.Atoi(rest[:end])
		if err != nil {
			continue
		}
		return Version{Major: mj, Minor: mn}, nil
	}
	return Version{}, fmt.Errorf("gpu.ParseVersion: no version number in %q", s)
}

// IsES returns whether the given driver version string
// is for OpenGL ES, such as "OpenGL ES 3.2 Mesa 23.2.1".
func IsES(s string) bool {
	return slices.Contains(strings.Fields(s), "ES")
}

// AtLeast returns whether this version is the same as or newer than o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor >= o.Minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
