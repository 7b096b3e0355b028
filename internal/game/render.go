package game

import (
	"strings"

	"github.com/vovakirdan/vgasnake/internal/vga"
)

// Lines written around the terminal message so it lands mid-screen.
const (
	messageLeadLines  = vga.Height
	messageTrailLines = 13
)

// frame builds the full-screen image for the current state: a '#' border,
// the head glyph, 'x' for the treat, '+' for the rest of the body.
func (g *Game) frame() *vga.Image {
	img := new(vga.Image)

	for row := range vga.Height {
		for col := range vga.Width {
			img[row][col] = ' '
		}
	}
	for col := range vga.Width {
		img[0][col] = '#'
		img[vga.Height-1][col] = '#'
	}
	for row := range vga.Height {
		img[row][0] = '#'
		img[row][vga.Width-1] = '#'
	}

	head := g.snake.Head()
	for _, p := range g.snake.Body() {
		img[p.Row+1][p.Col+1] = '+'
	}
	if t, ok := g.snake.Treat(); ok {
		img[t.Row+1][t.Col+1] = 'x'
	}
	img[head.Row+1][head.Col+1] = g.snake.Direction().Glyph()

	return img
}

func (g *Game) render() {
	g.display.WriteFullScreen(g.frame())
}

// printMessage scrolls the play-field away and leaves msg centred.
func (g *Game) printMessage(msg string) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", messageLeadLines))
	sb.WriteString(center(msg, vga.Width))
	sb.WriteString(strings.Repeat("\n", messageTrailLines))
	g.display.Print(sb.String())
}

// center pads s on both sides to width, with the odd space on the right.
// Strings at least width long are returned unchanged.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
