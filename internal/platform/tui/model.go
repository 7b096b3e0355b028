package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vgasnake/internal/machine"
	"github.com/vovakirdan/vgasnake/internal/registry"
)

// ID is the registry identifier of this backend.
const ID = "tui"

func init() {
	registry.Register(ID, func() registry.Backend {
		return Backend{}
	})
}

// Model is the Bubble Tea model driving a Machine.
type Model struct {
	machine  *machine.Machine
	keys     KeyMap
	help     help.Model
	interval time.Duration
	quitting bool
}

// NewModel creates a model for a booted machine.
func NewModel(m *machine.Machine) Model {
	return Model{
		machine:  m,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: m.Interval(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and forwards ticks and keys to the machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		m.machine.Key(m.keys.Event(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.machine.Tick()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// View renders the display grid with a help line beneath it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := m.machine.Frame()
	return RenderFrame(&f) + "\n" + m.help.View(m.keys)
}

// Backend runs a Machine inside a Bubble Tea program.
type Backend struct{}

// ID returns the backend identifier.
func (Backend) ID() string { return ID }

// Title returns the display name.
func (Backend) Title() string { return "Bubble Tea (lipgloss colours)" }

// Run starts the program on the alternate screen and blocks until quit.
func (Backend) Run(ctx context.Context, m *machine.Machine) error {
	p := tea.NewProgram(
		NewModel(m),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
