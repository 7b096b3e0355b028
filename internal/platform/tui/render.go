package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vgasnake/internal/vga"
)

// ansiColors maps the text-mode palette onto ANSI colour indexes.
var ansiColors = [16]lipgloss.Color{
	vga.Black:      "0",
	vga.Blue:       "4",
	vga.Green:      "2",
	vga.Cyan:       "6",
	vga.Red:        "1",
	vga.Magenta:    "5",
	vga.Brown:      "3",
	vga.LightGray:  "7",
	vga.DarkGray:   "8",
	vga.LightBlue:  "12",
	vga.LightGreen: "10",
	vga.LightCyan:  "14",
	vga.LightRed:   "9",
	vga.Pink:       "13",
	vga.Yellow:     "11",
	vga.White:      "15",
}

// styleFor returns the lipgloss style of a packed attribute.
func styleFor(c vga.ColorCode) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ansiColors[c.Foreground()]).
		Background(ansiColors[c.Background()])
}

// RenderFrame converts the display grid to a styled string.
// Groups adjacent cells with the same attribute to minimize ANSI escape sequences.
func RenderFrame(f *vga.Frame) string {
	styles := make(map[vga.ColorCode]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(vga.Width*vga.Height*2 + vga.Height)

	for row := range vga.Height {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < vga.Width {
			attr := f[row][col].Color

			var run strings.Builder
			for col < vga.Width && f[row][col].Color == attr {
				run.WriteRune(f[row][col].Rune())
				col++
			}

			style, ok := styles[attr]
			if !ok {
				style = styleFor(attr)
				styles[attr] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
