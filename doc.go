// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oled is a container for the SSD1306/SSD1106 character driver and
// its support packages.
//
// ssd1x06 drives the controller over I²C, font5x7 holds the glyph table it
// renders from, and oledsim emulates the controller for development on a
// host without the panel attached.
package oled
