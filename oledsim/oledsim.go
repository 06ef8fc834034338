// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oledsim

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// ErrNACK is returned by Tx for an address no emulated controller answers.
var ErrNACK = errors.New("oledsim: address not acknowledged")

// Pages is the number of 8 pixel high pages of the controller RAM.
const Pages = 8

// Opts represents the options available for the emulated controller.
type Opts struct {
	// W and H are the visible panel size in pixels.
	W int
	H int
	// Addr is the I²C address the controller answers to.
	Addr uint16
	// RAMWidth is the number of RAM columns, 128 on a SSD1306 and 132 on a
	// SH1106.
	RAMWidth int
	// ColumnOffset is the first RAM column shown on the panel.
	ColumnOffset int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Out receives Refresh output. It defaults to a colorable stdout.
	Out io.Writer

	_ struct{}
}

// SSD1306Opts emulates a 128x64 SSD1306 panel.
var SSD1306Opts = Opts{W: 128, H: 64, Addr: 0x3c, RAMWidth: 128}

// SH1106Opts emulates a 128x64 SH1106 panel; its 132 column RAM is centered
// on the glass.
var SH1106Opts = Opts{W: 128, H: 64, Addr: 0x3c, RAMWidth: 132, ColumnOffset: 2}

// Addressing modes, as set by the 0x20 command.
const (
	horizontal = 0
	vertical   = 1
	page       = 2
)

// Bus is an i2c.Bus with a single display controller on it.
//
// It interprets the command and data streams the controller would receive
// and keeps the content of its RAM.
type Bus struct {
	mu       sync.Mutex
	w        io.Writer
	addr     uint16
	width    int
	height   int
	ramWidth int
	offset   int
	palette  ansi256.Palette

	ram     []byte
	pending []byte
	mode    int
	col     int
	page    int
	// Addressing window for horizontal and vertical modes.
	colStart, colEnd   int
	pageStart, pageEnd int

	on       bool
	allOn    bool
	inverse  bool
	contrast byte

	buf bytes.Buffer
}

// New returns a Bus emulating a controller in its power on reset state: off,
// page addressing and an undefined RAM content, here blank.
func New(opts *Opts) *Bus {
	if opts.RAMWidth < opts.W+opts.ColumnOffset {
		panic(fmt.Sprintf("oledsim: RAM width %d too small for %d columns at offset %d", opts.RAMWidth, opts.W, opts.ColumnOffset))
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Out
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Bus{
		w:        w,
		addr:     opts.Addr,
		width:    opts.W,
		height:   opts.H,
		ramWidth: opts.RAMWidth,
		offset:   opts.ColumnOffset,
		palette:  *p,
		ram:      make([]byte, opts.RAMWidth*Pages),
		mode:     page,
		colEnd:   opts.RAMWidth - 1,
		pageEnd:  Pages - 1,
		contrast: 0x7F,
	}
}

func (b *Bus) String() string {
	return fmt.Sprintf("oledsim(%#x)", b.addr)
}

// Tx implements i2c.Bus.
//
// Each write starts with a control byte. Bit 6 selects data over commands;
// when bit 7 is set only the following byte belongs to this control byte and
// another control byte follows it.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr != b.addr {
		return fmt.Errorf("%w: %#x", ErrNACK, addr)
	}
	if len(r) != 0 {
		return errors.New("oledsim: reads are not supported on the I²C interface")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < len(w); {
		ctrl := w[i]
		i++
		p := w[i:]
		if ctrl&0x80 != 0 && len(p) > 1 {
			p = p[:1]
		}
		if ctrl&0x40 != 0 {
			b.writeData(p)
		} else {
			b.writeCommands(p)
		}
		i += len(p)
	}
	return nil
}

// SetSpeed implements i2c.Bus. Any speed is accepted.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return nil
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so it is not corrupted.
func (b *Bus) Halt() error {
	_, err := b.w.Write([]byte("\n\033[0m"))
	return err
}

// On reports whether the panel is turned on.
func (b *Bus) On() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.on
}

// Inverted reports whether the panel shows lit pixels for cleared bits.
func (b *Bus) Inverted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inverse
}

// Contrast returns the last contrast level set.
func (b *Bus) Contrast() byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.contrast
}

// RAM returns the 8 pixel column stored at page p and RAM column x.
func (b *Bus) RAM(p, x int) byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ram[p*b.ramWidth+x]
}

// Frame returns what the panel shows. Lit pixels are 0xFF.
//
// A panel that is off shows nothing.
func (b *Bus) Frame() *image.Gray {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame()
}

// Refresh draws the panel to the output, one pixel per character cell.
func (b *Bus) Refresh() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	img := b.frame()
	// This code is designed to minimize the amount of memory allocated per call.
	b.buf.Reset()
	_, _ = b.buf.WriteString("\033[0m")
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			v := img.Pix[y*img.Stride+x]
			_, _ = io.WriteString(&b.buf, b.palette.Block(color.NRGBA{v, v, v, 255}))
		}
		_, _ = b.buf.WriteString("\033[0m\n")
	}
	_, err := b.buf.WriteTo(b.w)
	return err
}

func (b *Bus) frame() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	if !b.on {
		return img
	}
	for y := 0; y < b.height; y++ {
		row := b.ram[(y/8)*b.ramWidth:]
		for x := 0; x < b.width; x++ {
			lit := row[x+b.offset]&(1<<uint(y&7)) != 0
			if lit != b.inverse || b.allOn {
				img.Pix[y*img.Stride+x] = 0xFF
			}
		}
	}
	return img
}

// argLen returns the number of argument bytes following command op.
func argLen(op byte) int {
	switch op {
	case 0x20, 0x81, 0x8D, 0xA8, 0xAD, 0xD3, 0xD5, 0xD9, 0xDA, 0xDB:
		return 1
	case 0x21, 0x22, 0xA3:
		return 2
	case 0x29, 0x2A:
		return 5
	case 0x26, 0x27:
		return 6
	}
	return 0
}

// writeCommands consumes a command stream. A command may be split over
// multiple transactions.
func (b *Bus) writeCommands(p []byte) {
	for _, c := range p {
		b.pending = append(b.pending, c)
		if len(b.pending) < 1+argLen(b.pending[0]) {
			continue
		}
		b.execute(b.pending[0], b.pending[1:])
		b.pending = b.pending[:0]
	}
}

func (b *Bus) execute(op byte, args []byte) {
	switch {
	case op <= 0x0F:
		b.col = b.col&0xF0 | int(op&0x0F)
	case op <= 0x1F:
		b.col = b.col&0x0F | int(op&0x0F)<<4
	case op == 0x20:
		if m := int(args[0] & 3); m <= page {
			b.mode = m
		}
	case op == 0x21:
		b.colStart, b.colEnd = b.clampCol(int(args[0])), b.clampCol(int(args[1]))
		b.col = b.colStart
	case op == 0x22:
		b.pageStart, b.pageEnd = int(args[0]&7), int(args[1]&7)
		b.page = b.pageStart
	case op == 0x81:
		b.contrast = args[0]
	case op == 0xA4, op == 0xA5:
		b.allOn = op == 0xA5
	case op == 0xA6, op == 0xA7:
		b.inverse = op == 0xA7
	case op == 0xAE, op == 0xAF:
		b.on = op == 0xAF
	case op >= 0xB0 && op <= 0xB7:
		b.page = int(op & 7)
	}
}

func (b *Bus) clampCol(x int) int {
	if x >= b.ramWidth {
		return b.ramWidth - 1
	}
	return x
}

func (b *Bus) writeData(p []byte) {
	for _, v := range p {
		if b.col < b.ramWidth {
			b.ram[b.page*b.ramWidth+b.col] = v
		}
		switch b.mode {
		case horizontal:
			if b.col++; b.col > b.colEnd {
				b.col = b.colStart
				if b.page++; b.page > b.pageEnd {
					b.page = b.pageStart
				}
			}
		case vertical:
			if b.page++; b.page > b.pageEnd {
				b.page = b.pageStart
				if b.col++; b.col > b.colEnd {
					b.col = b.colStart
				}
			}
		default:
			if b.col++; b.col >= b.ramWidth {
				b.col = 0
			}
		}
	}
}

var _ i2c.Bus = &Bus{}
var _ conn.Resource = &Bus{}
var _ fmt.Stringer = &Bus{}
