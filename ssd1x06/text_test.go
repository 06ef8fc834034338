// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1x06

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/display/displaytest"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func newText(t *testing.T) (*Text, *i2ctest.Record) {
	t.Helper()
	d, r := newRecorded(t, SSD1306)
	return NewText(d), r
}

func TestTextInterface(t *testing.T) {
	txt, _ := newText(t)
	defer func() { _ = txt.Halt() }()
	for _, err := range displaytest.TestTextDisplay(txt, false) {
		if !errors.Is(err, display.ErrNotImplemented) {
			t.Error(err)
		}
	}
}

func TestTextWrite(t *testing.T) {
	txt, r := newText(t)
	if err := txt.MoveTo(2, 3); err != nil {
		t.Fatal(err)
	}
	n, err := txt.WriteString("OK")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("WriteString() = %d, want 2", n)
	}
	if diff := diffOps(r.Ops, charOps(t, SSD1306, 1, 12, []byte("OK"))); diff != "" {
		t.Errorf("WriteString() difference (-got +want):\n%s", diff)
	}
	if row, col := txt.Position(); row != 2 || col != 5 {
		t.Fatalf("Position() = %d, %d, want 2, 5", row, col)
	}
}

func TestTextWrap(t *testing.T) {
	txt, _ := newText(t)
	if err := txt.MoveTo(txt.Rows(), txt.Cols()); err != nil {
		t.Fatal(err)
	}
	if _, err := txt.WriteString("z"); err != nil {
		t.Fatal(err)
	}
	if row, col := txt.Position(); row != 1 || col != 1 {
		t.Fatalf("Position() after the last cell = %d, %d, want 1, 1", row, col)
	}
}

func TestTextControlCharacters(t *testing.T) {
	txt, r := newText(t)
	if _, err := txt.WriteString("ab\ncd\re"); err != nil {
		t.Fatal(err)
	}
	if row, col := txt.Position(); row != 2 || col != 2 {
		t.Fatalf("Position() = %d, %d, want 2, 2", row, col)
	}
	// a, b, c, d, e are drawn; the control characters are not.
	if got := len(r.Ops); got != 5*3 {
		t.Fatalf("sent %d ops, want %d", got, 5*3)
	}
	if page := r.Ops[4*3].W[2]; page != 1 {
		t.Fatalf("'e' drawn on page %d, want 1", page)
	}
	if col := r.Ops[4*3+1].W[2]; col != 0 {
		t.Fatalf("'e' drawn at column %d, want 0", col)
	}
}

func TestTextReverse(t *testing.T) {
	txt, r := newText(t)
	txt.SetReverse(true)
	if _, err := txt.WriteString("Hi"); err != nil {
		t.Fatal(err)
	}
	if diff := diffOps(r.Ops, charOps(t, SSD1306, 0, 0, []byte{'H' | 0x80, 'i' | 0x80})); diff != "" {
		t.Errorf("WriteString() difference (-got +want):\n%s", diff)
	}
}

func TestTextWriteInvalidGlyph(t *testing.T) {
	txt, _ := newText(t)
	n, err := txt.Write([]byte{'a', 0x01, 'b'})
	var ge *GlyphRangeError
	if !errors.As(err, &ge) {
		t.Fatalf("Write() error = %v, want GlyphRangeError", err)
	}
	if n != 1 {
		t.Fatalf("Write() = %d, want 1", n)
	}
}

func TestTextMove(t *testing.T) {
	txt, _ := newText(t)
	for _, tc := range []struct {
		dir      display.CursorDirection
		row, col int
	}{
		{display.Backward, 1, 1},
		{display.Up, 1, 1},
		{display.Forward, 1, 2},
		{display.Down, 2, 2},
		{display.Backward, 2, 1},
		{display.Up, 1, 1},
	} {
		if err := txt.Move(tc.dir); err != nil {
			t.Fatal(err)
		}
		if row, col := txt.Position(); row != tc.row || col != tc.col {
			t.Fatalf("Move(%d): Position() = %d, %d, want %d, %d", tc.dir, row, col, tc.row, tc.col)
		}
	}
	if err := txt.Move(display.Down + 1); !errors.Is(err, display.ErrInvalidCommand) {
		t.Fatalf("Move(invalid) error = %v", err)
	}
}

func TestTextMoveTo(t *testing.T) {
	txt, _ := newText(t)
	for _, pos := range [][2]int{{0, 1}, {1, 0}, {9, 1}, {1, 22}} {
		if err := txt.MoveTo(pos[0], pos[1]); !errors.Is(err, ErrBounds) {
			t.Fatalf("MoveTo(%d, %d) error = %v, want ErrBounds", pos[0], pos[1], err)
		}
	}
	if err := txt.MoveTo(8, 21); err != nil {
		t.Fatal(err)
	}
}

func TestTextCursor(t *testing.T) {
	txt, _ := newText(t)
	if err := txt.Cursor(display.CursorOff); err != nil {
		t.Fatal(err)
	}
	if err := txt.Cursor(display.CursorBlink); !errors.Is(err, display.ErrNotImplemented) {
		t.Fatalf("Cursor(CursorBlink) error = %v", err)
	}
	if err := txt.Cursor(display.CursorBlink + 1); !errors.Is(err, display.ErrInvalidCommand) {
		t.Fatalf("Cursor(invalid) error = %v", err)
	}
}

func TestTextContrast(t *testing.T) {
	txt, r := newText(t)
	for _, c := range []display.Contrast{-5, 0x40, 0x1000} {
		if err := txt.Contrast(c); err != nil {
			t.Fatal(err)
		}
	}
	want := []i2ctest.IO{cmd(0x81, 0x00), cmd(0x81, 0x40), cmd(0x81, 0xFF)}
	if diff := diffOps(r.Ops, want); diff != "" {
		t.Errorf("Contrast() difference (-got +want):\n%s", diff)
	}
}

func TestTextClear(t *testing.T) {
	txt, r := newText(t)
	if err := txt.MoveTo(3, 3); err != nil {
		t.Fatal(err)
	}
	if err := txt.Clear(); err != nil {
		t.Fatal(err)
	}
	if row, col := txt.Position(); row != 1 || col != 1 {
		t.Fatalf("Position() after Clear() = %d, %d", row, col)
	}
	if got, want := len(r.Ops), 8*22*3; got != want {
		t.Fatalf("Clear() sent %d ops, want %d", got, want)
	}
}
