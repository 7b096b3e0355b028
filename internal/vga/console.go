package vga

import (
	"fmt"

	"github.com/vovakirdan/vgasnake/internal/irq"
)

// Console is the shared, synchronized writer. Every method is one critical
// section, so output from two callers never interleaves on the grid.
type Console struct {
	lock irq.Lock
	w    *Writer
}

// NewConsole wraps a fresh Writer over dev.
func NewConsole(dev Device, color ColorCode) *Console {
	return &Console{w: NewWriter(dev, color)}
}

// Init clears the screen. Calling it again leaves the same blank grid.
func (c *Console) Init() {
	c.lock.Do(c.w.Clear)
}

// Print writes s through the scrolling text path.
func (c *Console) Print(s string) {
	c.lock.Do(func() {
		c.w.WriteString(s) //nolint:errcheck // never fails
	})
}

// Printf formats directly onto the screen.
func (c *Console) Printf(format string, args ...any) {
	c.lock.Do(func() {
		fmt.Fprintf(c.w, format, args...)
	})
}

// WriteFullScreen replaces the whole grid with img.
func (c *Console) WriteFullScreen(img *Image) {
	c.lock.Do(func() {
		c.w.WriteFullScreen(img)
	})
}

// Column returns the writer's cursor column.
func (c *Console) Column() int {
	var col int
	c.lock.Do(func() { col = c.w.Column() })
	return col
}

// Snapshot copies the grid while holding the lock, so the copy never
// observes a half-applied write.
func (c *Console) Snapshot() Frame {
	var f Frame
	c.lock.Do(func() { f = Capture(c.w.dev) })
	return f
}
