// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font5x7

import (
	"image"

	"golang.org/x/image/font/basicfont"
)

const (
	// First is the first code point present in the table.
	First = 0x20
	// Last is the last code point present in the table.
	Last = 0x7E
	// Width is the number of columns in a glyph.
	Width = 5
	// Advance is the horizontal pitch of a glyph once the spacer column is
	// added.
	Advance = Width + 1
	// Height is the height of a glyph cell; one controller page.
	Height = 8
)

// Font is a column bitmap font covering printable ASCII.
//
// Each glyph is Width bytes, one per column, the least significant bit being
// the top pixel. The glyph for code c starts at (c-First)*Width.
type Font []byte

// Len returns the number of glyphs in the table.
func (f Font) Len() int {
	return len(f) / Width
}

// Glyph returns the columns for code. The high bit of code is ignored.
//
// It returns nil when the code is not printable or is beyond the end of the
// table.
func (f Font) Glyph(code byte) []byte {
	c := int(code & 0x7F)
	if c < First || c > Last {
		return nil
	}
	off := (c - First) * Width
	if off+Width > len(f) {
		return nil
	}
	return f[off : off+Width : off+Width]
}

// Face returns the font as a golang.org/x/image/font.Face so text can be
// rendered into an image with font.Drawer.
//
// The face has the same metrics as the controller rendering: 6 pixels
// advance, 7 pixels above the baseline and 1 below.
func (f Font) Face() *basicfont.Face {
	n := f.Len()
	mask := image.NewAlpha(image.Rect(0, 0, Width, n*Height))
	for g := 0; g < n; g++ {
		for x, col := range f[g*Width : (g+1)*Width] {
			for y := 0; y < Height; y++ {
				if col&(1<<uint(y)) != 0 {
					mask.Pix[mask.PixOffset(x, g*Height+y)] = 0xFF
				}
			}
		}
	}
	return &basicfont.Face{
		Advance: Advance,
		Width:   Width,
		Height:  Height,
		Ascent:  Height - 1,
		Descent: 1,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: First, High: rune(First + n), Offset: 0},
		},
	}
}
