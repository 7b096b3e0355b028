package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vgasnake/internal/game"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns the arrow-key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Event decodes a key message into an engine key event. Terminals only
// report presses, so every decoded event is a press.
func (k KeyMap) Event(msg tea.KeyMsg) game.KeyEvent {
	code := game.KeyOther
	switch {
	case key.Matches(msg, k.Up):
		code = game.KeyArrowUp
	case key.Matches(msg, k.Down):
		code = game.KeyArrowDown
	case key.Matches(msg, k.Left):
		code = game.KeyArrowLeft
	case key.Matches(msg, k.Right):
		code = game.KeyArrowRight
	}
	return game.KeyEvent{Code: code, State: game.KeyPressed}
}
