// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font5x7 contains the 5x7 column bitmap font rendered by the
// ssd1x06 driver.
//
// Glyphs are stored the way the SSD1306 and SSD1106 controllers consume them:
// one byte per column, bit 0 being the top row of a page. The table covers
// printable ASCII, 0x20 to 0x7E.
package font5x7
