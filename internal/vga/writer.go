package vga

// Sentinel replaces any byte outside the printable ASCII range.
const Sentinel byte = 0xFE

// Writer streams text onto the bottom row of a Device and scrolls the grid
// upward on each new line. A Writer is not safe for concurrent use; shared
// writers go through a Console.
type Writer struct {
	column int
	color  ColorCode
	dev    Device
}

// NewWriter returns a writer positioned at column 0 of the bottom row.
func NewWriter(dev Device, color ColorCode) *Writer {
	return &Writer{color: color, dev: dev}
}

// Column returns the cursor column on the bottom row.
func (w *Writer) Column() int {
	return w.column
}

// ColorCode returns the attribute used for new cells.
func (w *Writer) ColorCode() ColorCode {
	return w.color
}

// SetColorCode changes the attribute used for new cells.
func (w *Writer) SetColorCode(c ColorCode) {
	w.color = c
}

// WriteByte places one byte at the cursor. The byte must already be
// printable; '\n' starts a new line. It never fails.
func (w *Writer) WriteByte(b byte) error {
	if b == '\n' {
		w.newLine()
		return nil
	}
	if w.column >= Width {
		w.newLine()
	}
	w.dev.Store(Height-1, w.column, Cell{Char: b, Color: w.color})
	w.column++
	return nil
}

// newLine scrolls every row up by one, blanks the bottom row and resets
// the cursor. The device is not a contiguous block, so cells move one at
// a time.
func (w *Writer) newLine() {
	for row := 1; row < Height; row++ {
		for col := range Width {
			w.dev.Store(row-1, col, w.dev.Load(row, col))
		}
	}
	w.clearRow(Height - 1)
	w.column = 0
}

func (w *Writer) clearRow(row int) {
	blank := Blank(w.color)
	for col := range Width {
		w.dev.Store(row, col, blank)
	}
}

// WriteString writes s, replacing non-printable bytes with Sentinel.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		w.WriteByte(sanitize(s[i])) //nolint:errcheck // never fails
	}
	return len(s), nil
}

// Write implements io.Writer with the same rules as WriteString.
func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		w.WriteByte(sanitize(b)) //nolint:errcheck // never fails
	}
	return len(p), nil
}

func sanitize(b byte) byte {
	switch {
	case b == '\n':
		return b
	case b >= 0x20 && b <= 0x7e:
		return b
	default:
		return Sentinel
	}
}

// WriteFullScreen overwrites every cell in row-major order with the image
// byte and the current colour. The cursor is left untouched and the bytes
// are not validated.
func (w *Writer) WriteFullScreen(img *Image) {
	for row := range Height {
		for col := range Width {
			w.dev.Store(row, col, Cell{Char: img[row][col], Color: w.color})
		}
	}
}

// Clear blanks every row.
func (w *Writer) Clear() {
	for row := range Height {
		w.clearRow(row)
	}
}
