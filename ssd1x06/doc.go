// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1x06 writes text to a monochrome OLED display driven by a
// SSD1306 or SSD1106 (SH1106) controller over I²C.
//
// The driver renders characters straight into the controller RAM from a 5x7
// font, one 6x8 pixel cell at a time. It keeps no frame buffer: each write
// positions the controller cursor then sends the cell columns, which keeps
// the memory footprint of the driver to a few bytes. A 128x64 panel holds 8
// rows of 21 characters.
//
// Reverse video is done by inverting the cell columns, so highlighted text
// needs no second font.
//
// The controller variant cannot be detected reliably on every board, it is
// selected with Opts.Variant.
//
// # Datasheets
//
// SSD1306
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// SH1106
//
// https://cdn.velleman.eu/downloads/29/infosheets/sh1106_datasheet.pdf
package ssd1x06
