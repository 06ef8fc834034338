// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oledsim emulates a SSD1306 or SH1106 display controller sitting on
// an I²C bus, and renders its content to the terminal (stdout) using ANSI
// color codes.
//
// Useful to develop against the ssd1x06 driver while the panel is still in
// the mail, and to check what the driver actually lit in tests.
package oledsim
