package vga

// Cell is one character position of the display grid.
type Cell struct {
	Char  byte
	Color ColorCode
}

// Blank returns a space cell in the given colour.
func Blank(color ColorCode) Cell {
	return Cell{Char: ' ', Color: color}
}

// word packs the cell the way the hardware stores it: attribute in the
// high byte, character in the low byte.
func (c Cell) word() uint16 {
	return uint16(c.Color)<<8 | uint16(c.Char)
}

func cellFromWord(w uint16) Cell {
	return Cell{Char: byte(w), Color: ColorCode(w >> 8)}
}

// Rune returns the glyph a terminal should show for the cell. The
// sentinel maps to its code page 437 shape; unwritten cells read as space.
func (c Cell) Rune() rune {
	switch {
	case c.Char == Sentinel:
		return '■'
	case c.Char >= 0x20 && c.Char <= 0x7e:
		return rune(c.Char)
	case c.Char == 0:
		return ' '
	default:
		return '?'
	}
}
