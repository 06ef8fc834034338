// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1x06

import (
	"fmt"
	"image"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/oled/font5x7"
)

// Advance is the horizontal pitch of a character cell in pixels: 5 glyph
// columns and a spacer column.
const Advance = font5x7.Advance

// DefaultOpts is the recommended default options, a 128x64 SSD1306 panel at
// the usual address.
var DefaultOpts = Opts{
	W:       128,
	H:       64,
	Addr:    0x3c,
	Variant: SSD1306,
	Speed:   400 * physic.KiloHertz,
	Font:    font5x7.Default,
}

// Opts defines the options for the device.
//
// Zero fields take the value of DefaultOpts.
type Opts struct {
	W int
	H int
	// The I2C address of the display.
	Addr uint16
	// Variant is the controller command set, SSD1306 or SSD1106.
	Variant Variant
	// Speed is the bus clock set by Start. Maximum clock speed is
	// 1/2.5µs = 400KHz.
	Speed physic.Frequency
	// KeepSpeed leaves the bus clock untouched, for buses that cannot change
	// it or that are shared with slower devices.
	KeepSpeed bool
	// Font is the glyph table. Glyphs are 5 bytes, starting at 0x20.
	Font font5x7.Font
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 or
// SSD1106 display controller.
//
// The controller is initialized before returning.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = opts.withDefaults()
	}
	if o.W < 8 || o.W > 128 || o.W&7 != 0 {
		return nil, fmt.Errorf("ssd1x06: %s invalid width %d: %w", o.Variant, o.W, ErrBounds)
	}
	if o.H < 8 || o.H > 64 || o.H&7 != 0 {
		return nil, fmt.Errorf("ssd1x06: %s invalid height %d: %w", o.Variant, o.H, ErrBounds)
	}
	d := &Dev{
		bus:       b,
		c:         &i2c.Dev{Bus: b, Addr: o.Addr},
		variant:   o.Variant,
		rect:      image.Rect(0, 0, o.W, o.H),
		speed:     o.Speed,
		keepSpeed: o.KeepSpeed,
		font:      o.Font,
	}
	if err := d.Start(); err != nil {
		return nil, err
	}
	return d, nil
}

func (o *Opts) withDefaults() Opts {
	r := *o
	if r.W == 0 {
		r.W = DefaultOpts.W
	}
	if r.H == 0 {
		r.H = DefaultOpts.H
	}
	if r.Addr == 0 {
		r.Addr = DefaultOpts.Addr
	}
	if r.Variant == nil {
		r.Variant = DefaultOpts.Variant
	}
	if r.Speed == 0 {
		r.Speed = DefaultOpts.Speed
	}
	if r.Font == nil {
		r.Font = DefaultOpts.Font
	}
	return r
}

// Dev is an open handle to the display controller.
//
// The driver keeps no copy of the display content nor any cursor: every write
// positions the controller before sending data.
type Dev struct {
	// mu is held for the whole command and data sequence of an operation so
	// concurrent callers cannot interleave their transactions.
	mu        sync.Mutex
	bus       i2c.Bus
	c         conn.Conn
	variant   Variant
	rect      image.Rectangle
	speed     physic.Frequency
	keepSpeed bool
	font      font5x7.Font
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s.Dev{%s, %s}", d.variant, d.c, d.rect.Max)
}

// Bounds returns the panel size in pixels. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Rows returns the number of character rows, one per controller page.
func (d *Dev) Rows() int {
	return d.rect.Dy() / font5x7.Height
}

// Cols returns the number of whole character cells in a row.
func (d *Dev) Cols() int {
	return d.rect.Dx() / Advance
}

// Variant returns the controller command set in use.
func (d *Dev) Variant() Variant {
	return d.variant
}

// Start sets the bus clock and sends the power on sequence of the
// controller variant.
//
// NewI2C calls it; call it again after the panel lost power.
func (d *Dev) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.keepSpeed {
		if err := d.bus.SetSpeed(d.speed); err != nil {
			return &BusError{Op: "speed", Err: err}
		}
	}
	for _, c := range d.variant.InitSequence(d.rect.Dx(), d.rect.Dy()) {
		if err := d.sendCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// DisplayChar draws the glyph for code in the character cell at page row and
// pixel column x.
//
// The low 7 bits of code select the glyph and the high bit selects reverse
// video. The cell is 6 columns wide: a spacer column followed by the 5
// glyph columns, all inverted in reverse video.
//
// row is sent as is; it is not clamped to the panel.
func (d *Dev) DisplayChar(row, x int, code byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.displayChar(row, x, code)
}

// DisplayByte writes b verbatim as one column of 8 pixels at page row and
// pixel column x.
//
// row is sent as is; it is not clamped to the panel.
func (d *Dev) DisplayByte(row, x int, b byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.position(row, x); err != nil {
		return err
	}
	return d.sendData([]byte{b})
}

// DisplayString draws s starting at page row and pixel column x, advancing 6
// pixels per character. Drawing stops at the end of s or at the first NUL
// byte.
//
// A row past the bottom of the panel is clamped to the last row. Text is not
// wrapped at the right edge.
//
// reverse draws every character in reverse video. Bytes of s with the high
// bit set are drawn in reverse video either way.
func (d *Dev) DisplayString(row, x int, s string, reverse bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if last := d.Rows() - 1; row > last {
		row = last
	}
	var rvs byte
	if reverse {
		rvs = 0x80
	}
	for i := 0; i < len(s) && s[i] != 0; i++ {
		if err := d.displayChar(row, x, s[i]|rvs); err != nil {
			return err
		}
		x += Advance
	}
	return nil
}

// FillDisplay draws the glyph for code in every character cell of the
// panel.
//
// Use ' ' to blank the display and ' '|0x80 to light every pixel.
func (d *Dev) FillDisplay(code byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.font.Glyph(code) == nil {
		return &GlyphRangeError{Code: code}
	}
	for row := 0; row < d.Rows(); row++ {
		for x := 0; x < d.rect.Dx(); x += Advance {
			if err := d.displayChar(row, x, code); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clear blanks the display.
func (d *Dev) Clear() error {
	return d.FillDisplay(' ')
}

// Show turns the panel on or off. The display content is retained while
// off.
func (d *Dev) Show(on bool) error {
	c := Command{Op: _DISPLAYOFF}
	if on {
		c.Op = _DISPLAYON
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sendCommand(c)
}

// Halt turns off the display.
//
// Show(true) turns it back on with its content intact.
func (d *Dev) Halt() error {
	return d.Show(false)
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	c := Command{Op: _NORMALDISPLAY}
	if blackOnWhite {
		c.Op = _INVERTDISPLAY
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sendCommand(c)
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sendCommand(Command{Op: _SETCONTRAST, Args: []byte{level}})
}

func (d *Dev) displayChar(row, x int, code byte) error {
	g := d.font.Glyph(code)
	if g == nil {
		return &GlyphRangeError{Code: code}
	}
	if err := d.position(row, x); err != nil {
		return err
	}
	var mask byte
	if code&0x80 != 0 {
		mask = 0xFF
	}
	var cell [Advance]byte
	cell[0] = mask
	for i, col := range g {
		cell[i+1] = col ^ mask
	}
	return d.sendData(cell[:])
}

// position sends the addressing commands for the cell at (row, x).
func (d *Dev) position(row, x int) error {
	if row < 0 || row > 0xFF || x < 0 || x > 0xFF {
		return fmt.Errorf("ssd1x06: position (%d, %d): %w", row, x, ErrBounds)
	}
	for _, c := range d.variant.Address(byte(row), byte(x), d.rect.Dx()) {
		if err := d.sendCommand(c); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) sendCommand(c Command) error {
	b := make([]byte, 0, 2+len(c.Args))
	b = append(b, i2cCmd, c.Op)
	b = append(b, c.Args...)
	if err := d.c.Tx(b, nil); err != nil {
		return &BusError{Op: "cmd", Err: err}
	}
	return nil
}

func (d *Dev) sendData(p []byte) error {
	if err := d.c.Tx(append([]byte{i2cData}, p...), nil); err != nil {
		return &BusError{Op: "data", Err: err}
	}
	return nil
}

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
