// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command triangle opens a window and draws a colored triangle
// in it until the window is closed or Escape is pressed.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/triangle"
	"cogentcore.org/triangle/base/logx"
	"cogentcore.org/triangle/gpu"
	"cogentcore.org/triangle/gpu/gldriver"
	"cogentcore.org/triangle/system/driver/desktop"
)

func main() {
	logx.InitLogger()
	w, err := triangle.Open(desktop.TheDriver, newDevice, triangle.DefaultConfig())
	if err != nil {
		slog.Error("triangle: " + err.Error())
		os.Exit(1)
	}
	w.Run()
	w.Release()
}

func newDevice(ctx gpu.Context) (gpu.Device, error) {
	return gldriver.NewDevice(ctx)
}
