package term

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/vgasnake/internal/config"
	"github.com/vovakirdan/vgasnake/internal/game"
	"github.com/vovakirdan/vgasnake/internal/machine"
	"github.com/vovakirdan/vgasnake/internal/vga"
)

// mockScreen is a minimal mock for tcell.Screen that records painted cells
// and feeds queued events to PollEvent.
type mockScreen struct {
	tcell.Screen
	cells  [vga.Height][vga.Width]rune
	styles [vga.Height][vga.Width]tcell.Style
	shows  int
	events chan tcell.Event
}

func newMockScreen() *mockScreen {
	return &mockScreen{events: make(chan tcell.Event, 10)}
}

func (s *mockScreen) SetContent(x, y int, mainc rune, _ []rune, style tcell.Style) {
	s.cells[y][x] = mainc
	s.styles[y][x] = style
}

func (s *mockScreen) Show() { s.shows++ }
func (s *mockScreen) Sync() {}

func (s *mockScreen) PollEvent() tcell.Event {
	return <-s.events
}

func newBootedMachine(t *testing.T) *machine.Machine {
	t.Helper()
	cfg := config.Default()
	cfg.Game.Seed = 3
	cfg.Timer.Hz = 500
	m, err := machine.New(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("machine.New() error: %v", err)
	}
	m.Boot()
	return m
}

func TestDrawPaintsEveryCell(t *testing.T) {
	var f vga.Frame
	attr := vga.NewColorCode(vga.Yellow, vga.Black)
	for row := range vga.Height {
		for col := range vga.Width {
			f[row][col] = vga.Cell{Char: 'o', Color: attr}
		}
	}
	f[24][79].Char = '#'

	s := newMockScreen()
	Draw(s, f)

	if s.shows != 1 {
		t.Errorf("Show() called %d times, expected 1", s.shows)
	}
	if s.cells[0][0] != 'o' || s.cells[24][79] != '#' {
		t.Errorf("corner cells = %q, %q", s.cells[0][0], s.cells[24][79])
	}
	if s.styles[10][10] != Style(attr) {
		t.Error("cell style should come from the attribute")
	}
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		want game.KeyCode
	}{
		{tcell.KeyUp, game.KeyArrowUp},
		{tcell.KeyDown, game.KeyArrowDown},
		{tcell.KeyLeft, game.KeyArrowLeft},
		{tcell.KeyRight, game.KeyArrowRight},
		{tcell.KeyEnter, game.KeyOther},
	}
	for _, tc := range tests {
		ev := KeyEvent(tcell.NewEventKey(tc.key, 0, tcell.ModNone))
		if ev.Code != tc.want || ev.State != game.KeyPressed {
			t.Errorf("KeyEvent(%v) = %+v, expected pressed %v", tc.key, ev, tc.want)
		}
	}
}

func TestLoopTicksAndQuits(t *testing.T) {
	m := newBootedMachine(t)
	s := newMockScreen()

	s.events <- tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() {
		done <- Loop(context.Background(), s, m)
	}()

	deadline := time.After(2 * time.Second)
	for m.Snapshot().Tick < 6 {
		select {
		case <-deadline:
			t.Fatal("loop did not tick")
		case <-time.After(5 * time.Millisecond):
		}
	}

	s.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Loop() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not quit on q")
	}

	if m.Snapshot().Dir != game.DirDown {
		t.Errorf("Dir = %v, expected down", m.Snapshot().Dir)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	m := newBootedMachine(t)
	s := newMockScreen()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Loop(ctx, s, m)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Loop() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}
