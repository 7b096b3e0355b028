// Package term provides a tcell backend: it paints the display grid cell by
// cell and serializes timer ticks and key events through one select loop.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/vgasnake/internal/game"
	"github.com/vovakirdan/vgasnake/internal/machine"
	"github.com/vovakirdan/vgasnake/internal/registry"
	"github.com/vovakirdan/vgasnake/internal/vga"
)

// ID is the registry identifier of this backend.
const ID = "tcell"

func init() {
	registry.Register(ID, func() registry.Backend {
		return &Backend{}
	})
}

// vgaToTcell maps the text-mode palette onto tcell's ANSI palette.
var vgaToTcell = [16]tcell.Color{
	vga.Black:      tcell.ColorBlack,
	vga.Blue:       tcell.ColorNavy,
	vga.Green:      tcell.ColorGreen,
	vga.Cyan:       tcell.ColorTeal,
	vga.Red:        tcell.ColorMaroon,
	vga.Magenta:    tcell.ColorPurple,
	vga.Brown:      tcell.ColorOlive,
	vga.LightGray:  tcell.ColorSilver,
	vga.DarkGray:   tcell.ColorGray,
	vga.LightBlue:  tcell.ColorBlue,
	vga.LightGreen: tcell.ColorLime,
	vga.LightCyan:  tcell.ColorAqua,
	vga.LightRed:   tcell.ColorRed,
	vga.Pink:       tcell.ColorFuchsia,
	vga.Yellow:     tcell.ColorYellow,
	vga.White:      tcell.ColorWhite,
}

// Style converts a packed attribute to a tcell style.
func Style(c vga.ColorCode) tcell.Style {
	return tcell.StyleDefault.
		Foreground(vgaToTcell[c.Foreground()]).
		Background(vgaToTcell[c.Background()])
}

// Backend drives a Machine on a tcell screen. NewScreen may be replaced
// before Run; it defaults to tcell.NewScreen.
type Backend struct {
	NewScreen func() (tcell.Screen, error)
}

// ID returns the backend identifier.
func (b *Backend) ID() string { return ID }

// Title returns the display name.
func (b *Backend) Title() string { return "tcell (direct cell painting)" }

// Run initializes the screen and loops until quit or ctx is cancelled.
func (b *Backend) Run(ctx context.Context, m *machine.Machine) error {
	newScreen := b.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return Loop(ctx, screen, m)
}

// Loop runs the event loop on an initialized screen.
func Loop(ctx context.Context, screen tcell.Screen, m *machine.Machine) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticks, stop := machine.NewTimer(m.Hz()).C()
	defer stop()

	Draw(screen, m.Frame())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			m.Tick()
			Draw(screen, m.Frame())
		case ev := <-events:
			if !handleEvent(screen, m, ev) {
				return nil
			}
		}
	}
}

// handleEvent processes one terminal event. It returns false on quit.
func handleEvent(screen tcell.Screen, m *machine.Machine, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		m.Key(KeyEvent(ev))
	case *tcell.EventResize:
		screen.Sync()
		Draw(screen, m.Frame())
	}
	return true
}

// KeyEvent decodes a tcell key into an engine key event.
func KeyEvent(ev *tcell.EventKey) game.KeyEvent {
	code := game.KeyOther
	switch ev.Key() {
	case tcell.KeyUp:
		code = game.KeyArrowUp
	case tcell.KeyDown:
		code = game.KeyArrowDown
	case tcell.KeyLeft:
		code = game.KeyArrowLeft
	case tcell.KeyRight:
		code = game.KeyArrowRight
	}
	return game.KeyEvent{Code: code, State: game.KeyPressed}
}

// Draw paints every cell of f and shows the result.
func Draw(screen tcell.Screen, f vga.Frame) {
	for row := range vga.Height {
		for col := range vga.Width {
			c := f[row][col]
			screen.SetContent(col, row, c.Rune(), nil, Style(c.Color))
		}
	}
	screen.Show()
}
