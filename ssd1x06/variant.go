// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1x06

const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_DC_DC_SETTING       = 0xAD
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_PAGESTARTADDRESS    = 0xB0
	_PUMPVOLTAGE         = 0x30
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETHIGHCOLUMN       = 0x10
	_SETLOWCOLUMN        = 0x00
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

// Command is a controller command byte followed by its arguments.
//
// A Command is sent in a single I²C write.
type Command struct {
	Op   byte
	Args []byte
}

// Variant is a controller command set.
//
// SSD1306 and SSD1106 are the two implementations. They differ in the power
// on sequence and in how the write cursor is positioned.
type Variant interface {
	String() string
	// InitSequence returns the ordered commands that bring up a panel of w
	// by h pixels.
	InitSequence(w, h int) []Command
	// Address returns the commands that position the write cursor on page
	// row at pixel column x, for a glyph cell on a panel w pixels wide.
	Address(row, x byte, w int) []Command
}

// SSD1306 is the Solomon Systech SSD1306 command set.
var SSD1306 Variant = ssd1306{}

// SSD1106 is the command set of the 132 columns controllers sold as SSD1106
// or SH1106.
var SSD1106 Variant = ssd1106{}

type ssd1306 struct{}

func (ssd1306) String() string {
	return "SSD1306"
}

func (ssd1306) InitSequence(w, h int) []Command {
	return []Command{
		{_SETMULTIPLEX, []byte{byte(h - 1)}}, // Number of lines to display
		{_SETDISPLAYOFFSET, []byte{0x00}},    // No vertical shift
		{_SETSTARTLINE, nil},                 // Start line 0
		{_SETSEGMENTREMAP, nil},              // Column 127 is SEG0
		{_COMSCANDEC, nil},                   // Scan from COM[N-1]
		{_SETCOMPINS, []byte{comPins(h)}},    // See page 40
		{_SETCONTRAST, []byte{0xFF}},         // Max contrast
		{_DISPLAYALLON_RESUME, nil},          // Display GDDRAM content
		{_NORMALDISPLAY, nil},                // Lit pixels for set bits
		{_SETDISPLAYCLOCKDIV, []byte{0x80}},  // Power on reset value
		{_CHARGEPUMP, []byte{0x14}},          // Enable charge pump; page 62
		{_SETPRECHARGE, []byte{0x22}},        // 2 DCLK each phase
		{_MEMORYMODE, []byte{0x01}},          // Vertical addressing
		{_SETVCOMDETECT, []byte{0x20}},       // 0.77 x Vcc
		{_DISPLAYON, nil},                    // Display on
	}
}

func (ssd1306) Address(row, x byte, w int) []Command {
	end := w - 1
	if int(x) < w-Advance {
		end = int(x) + Advance - 1
	}
	return []Command{
		{_PAGEADDR, []byte{row, row}},
		{_COLUMNADDR, []byte{x, byte(end)}},
	}
}

type ssd1106 struct{}

func (ssd1106) String() string {
	return "SSD1106"
}

func (ssd1106) InitSequence(w, h int) []Command {
	return []Command{
		{_DISPLAYOFF, nil},
		{_SETLOWCOLUMN | ssd1106ColumnOffset, nil}, // Skip the unused RAM columns
		{_SETHIGHCOLUMN, nil},
		{_SETSTARTLINE, nil},
		{_PAGESTARTADDRESS, nil},
		{_SETCONTRAST, []byte{0x80}},
		{_SETSEGMENTREMAP, nil},
		{_NORMALDISPLAY, nil},
		{_SETMULTIPLEX, []byte{byte(h - 1)}},
		{_DC_DC_SETTING, []byte{0x8B}}, // Built-in DC-DC on
		{_PUMPVOLTAGE, nil},            // 6.4V
		{_COMSCANDEC, nil},
		{_SETDISPLAYOFFSET, []byte{0x00}},
		{_SETDISPLAYCLOCKDIV, []byte{0x80}},
		{_SETPRECHARGE, []byte{0x1F}},
		{_SETCOMPINS, []byte{comPins(h)}},
		{_SETVCOMDETECT, []byte{0x40}},
		{_DISPLAYON, nil},
	}
}

// The SH1106 has 132 columns of RAM for 128 segments; the panel starts at
// column 2.
const ssd1106ColumnOffset = 2

func (ssd1106) Address(row, x byte, w int) []Command {
	x += ssd1106ColumnOffset
	return []Command{
		{_PAGESTARTADDRESS + row, nil},
		{_SETLOWCOLUMN | (x & 0x0F), nil},
		{_SETHIGHCOLUMN | ((x >> 4) & 0x0F), nil},
	}
}

// comPins returns the COM pins hardware configuration. Short panels are
// wired sequentially.
func comPins(h int) byte {
	if h <= 32 {
		return 0x02
	}
	return 0x12
}
