// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1x06

import (
	"errors"
	"fmt"
)

// ErrBounds is returned for a position or a panel size the controller cannot
// address.
var ErrBounds = errors.New("out of display bounds")

// BusError is returned when an I²C transaction fails.
//
// The driver does not retry; the bus driver owns the retry policy.
type BusError struct {
	// Op is the operation that was being sent, "cmd", "data" or "speed".
	Op  string
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("ssd1x06: %s: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// GlyphRangeError is returned when a character code has no glyph in the
// font. Nothing is written to the display.
type GlyphRangeError struct {
	Code byte
}

func (e *GlyphRangeError) Error() string {
	return fmt.Sprintf("ssd1x06: no glyph for code %#02x", e.Code)
}

func wrap(err error) error {
	return fmt.Errorf("ssd1x06: %w", err)
}
