// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1x06

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Text presents a Dev as a character display with a cursor, so it can be used
// wherever a display.TextDisplay is expected.
//
// Rows and columns are 1 based. Writing past the last column continues on
// the next row, and past the last row on the first one.
type Text struct {
	d *Dev

	mu      sync.Mutex
	row     int
	col     int
	reverse bool
}

// NewText returns a Text with the cursor at home.
func NewText(d *Dev) *Text {
	return &Text{d: d, row: 1, col: 1}
}

// AutoScroll is not supported: the driver keeps no copy of the display to
// scroll. Returns display.ErrNotImplemented.
func (t *Text) AutoScroll(enabled bool) error {
	return wrap(display.ErrNotImplemented)
}

// Cols returns the number of columns the display supports.
func (t *Text) Cols() int {
	return t.d.Cols()
}

// Rows returns the number of rows the display supports.
func (t *Text) Rows() int {
	return t.d.Rows()
}

// MinCol returns the min column position.
func (t *Text) MinCol() int {
	return 1
}

// MinRow returns the min row position.
func (t *Text) MinRow() int {
	return 1
}

// Clear blanks the display and moves the cursor home.
func (t *Text) Clear() error {
	if err := t.d.Clear(); err != nil {
		return err
	}
	return t.Home()
}

// Cursor sets the cursor mode. The controller has no hardware cursor, so only
// display.CursorOff is supported.
func (t *Text) Cursor(modes ...display.CursorMode) error {
	var err error
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
		case display.CursorUnderline, display.CursorBlock, display.CursorBlink:
			err = wrap(display.ErrNotImplemented)
		default:
			return fmt.Errorf("ssd1x06: cursor mode %d: %w", mode, display.ErrInvalidCommand)
		}
	}
	return err
}

// Home moves the cursor to (MinRow(), MinCol()).
func (t *Text) Home() error {
	t.mu.Lock()
	t.row, t.col = t.MinRow(), t.MinCol()
	t.mu.Unlock()
	return nil
}

// Move moves the cursor one cell. The cursor stops at the edges of the
// display, except Forward which wraps like a write does.
func (t *Text) Move(dir display.CursorDirection) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch dir {
	case display.Backward:
		if t.col > t.MinCol() {
			t.col--
		}
	case display.Forward:
		t.advance()
	case display.Up:
		if t.row > t.MinRow() {
			t.row--
		}
	case display.Down:
		if t.row < t.Rows() {
			t.row++
		}
	default:
		return fmt.Errorf("ssd1x06: cursor direction %d: %w", dir, display.ErrInvalidCommand)
	}
	return nil
}

// MoveTo moves the cursor to an arbitrary position.
func (t *Text) MoveTo(row, col int) error {
	if row < t.MinRow() || row > t.Rows() || col < t.MinCol() || col > t.Cols() {
		return fmt.Errorf("ssd1x06: MoveTo(%d, %d): %w", row, col, ErrBounds)
	}
	t.mu.Lock()
	t.row, t.col = row, col
	t.mu.Unlock()
	return nil
}

// Position returns the cursor position.
func (t *Text) Position() (row, col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.row, t.col
}

// Display turns the display on or off.
func (t *Text) Display(on bool) error {
	return t.d.Show(on)
}

// Contrast implements display.DisplayContrast. Values are clamped to
// [0, 255].
func (t *Text) Contrast(contrast display.Contrast) error {
	switch {
	case contrast < 0:
		contrast = 0
	case contrast > 0xFF:
		contrast = 0xFF
	}
	return t.d.SetContrast(byte(contrast))
}

// SetReverse selects reverse video for the following writes.
func (t *Text) SetReverse(reverse bool) {
	t.mu.Lock()
	t.reverse = reverse
	t.mu.Unlock()
}

func (t *Text) String() string {
	return fmt.Sprintf("ssd1x06.Text{%s}", t.d)
}

// Write draws p at the cursor.
//
// '\n' moves to the start of the next row and '\r' to the start of the
// current row. Any other byte must have a glyph; the write stops at the first
// one that does not.
func (t *Text) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var rvs byte
	if t.reverse {
		rvs = 0x80
	}
	for _, c := range p {
		switch c {
		case '\n':
			t.col = t.Cols()
			t.advance()
		case '\r':
			t.col = t.MinCol()
		default:
			if err = t.d.DisplayChar(t.row-1, (t.col-1)*Advance, c|rvs); err != nil {
				return
			}
			t.advance()
		}
		n++
	}
	return
}

// WriteString draws text at the cursor.
func (t *Text) WriteString(text string) (int, error) {
	return t.Write([]byte(text))
}

// Halt turns the display off.
func (t *Text) Halt() error {
	return t.d.Halt()
}

func (t *Text) advance() {
	t.col++
	if t.col > t.Cols() {
		t.col = t.MinCol()
		t.row++
		if t.row > t.Rows() {
			t.row = t.MinRow()
		}
	}
}

var _ display.TextDisplay = &Text{}
var _ display.DisplayContrast = &Text{}
var _ conn.Resource = &Text{}
