// Package vga implements the text-mode frame buffer driver: an 80x25 grid of
// (character, colour) cells with line scrolling and full-screen replace.
package vga

import (
	"strings"
	"sync/atomic"
)

// Grid geometry and the fixed location the cell layout mirrors.
const (
	Width    = 80
	Height   = 25
	BaseAddr = 0xB8000
)

// Device is the memory-mapped display region. Implementations must make
// every Load and Store observable as issued: no access may be elided,
// merged or reordered, because something outside the program reads it.
type Device interface {
	Load(row, col int) Cell
	Store(row, col int, c Cell)
}

// Buffer is an in-process display region. Each cell is one packed word
// accessed only through sync/atomic, which is the narrow boundary standing
// in for volatile access.
type Buffer struct {
	words [Height * Width]atomic.Uint32
}

// NewBuffer returns a zeroed display region.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Load reads one cell.
func (b *Buffer) Load(row, col int) Cell {
	return cellFromWord(uint16(b.words[row*Width+col].Load()))
}

// Store writes one cell.
func (b *Buffer) Store(row, col int, c Cell) {
	b.words[row*Width+col].Store(uint32(c.word()))
}

// Snapshot copies the whole grid out of the device.
func (b *Buffer) Snapshot() Frame {
	return Capture(b)
}

// Image is a full-screen input for WriteFullScreen, one byte per cell.
type Image [Height][Width]byte

// Frame is a copy of the display grid.
type Frame [Height][Width]Cell

// Capture reads every cell of dev in row-major order.
func Capture(dev Device) Frame {
	var f Frame
	for row := range Height {
		for col := range Width {
			f[row][col] = dev.Load(row, col)
		}
	}
	return f
}

// Row returns the characters of one row. Zero bytes read as spaces.
func (f *Frame) Row(row int) string {
	if row < 0 || row >= Height {
		return strings.Repeat(" ", Width)
	}
	b := make([]byte, Width)
	for col, c := range f[row] {
		if c.Char == 0 {
			b[col] = ' '
		} else {
			b[col] = c.Char
		}
	}
	return string(b)
}

// String joins all rows with newlines.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for row := range Height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.Row(row))
	}
	return sb.String()
}
