// Package machine wires the frame buffer and the engine into one board and
// exposes the two upstream capabilities a platform drives: the periodic
// tick and decoded key events.
package machine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vgasnake/internal/config"
	"github.com/vovakirdan/vgasnake/internal/game"
	"github.com/vovakirdan/vgasnake/internal/vga"
)

// Machine owns the display region, the console over it and the game.
type Machine struct {
	buffer  *vga.Buffer
	console *vga.Console
	game    *game.Game
	hz      int
	logger  *log.Logger

	booted   atomic.Bool
	overOnce sync.Once
}

// New builds a machine from cfg. The configuration must be valid.
func New(cfg config.Config, logger *log.Logger) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := cfg.Game.Level()
	color, _ := cfg.Display.ColorCode()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	buf := vga.NewBuffer()
	console := vga.NewConsole(buf, color)

	m := &Machine{
		buffer:  buf,
		console: console,
		game:    game.New(console, rand.New(rand.NewSource(seed)), game.Options{Difficulty: level}),
		hz:      cfg.Timer.Hz,
		logger:  logger,
	}
	logger.Debug("machine created", "difficulty", level, "hz", cfg.Timer.Hz, "seed", seed)
	return m, nil
}

// Boot clears the display. Events are dropped until it has run.
func (m *Machine) Boot() {
	m.console.Init()
	m.booted.Store(true)
	m.logger.Info("booted", "difficulty", m.game.Difficulty())
}

// Booted reports whether Boot has run.
func (m *Machine) Booted() bool {
	return m.booted.Load()
}

// Tick delivers one timer tick.
func (m *Machine) Tick() {
	if !m.booted.Load() {
		m.logger.Debug("tick before boot dropped")
		return
	}
	m.game.Tick()
	m.checkGameOver()
}

// Key delivers one decoded key event.
func (m *Machine) Key(ev game.KeyEvent) {
	if !m.booted.Load() {
		m.logger.Debug("key before boot dropped", "code", ev.Code)
		return
	}
	m.game.HandleKey(ev)
}

func (m *Machine) checkGameOver() {
	st := m.game.State()
	if !st.GameOver {
		return
	}
	m.overOnce.Do(func() {
		m.logger.Info("game over", "reason", game.Message(st.Err), "score", st.Score)
	})
}

// Frame returns a consistent copy of the display grid.
func (m *Machine) Frame() vga.Frame {
	return m.console.Snapshot()
}

// State returns the game summary.
func (m *Machine) State() game.State {
	return m.game.State()
}

// Snapshot returns the full game snapshot.
func (m *Machine) Snapshot() game.Snapshot {
	return m.game.Snapshot()
}

// Console returns the shared text console.
func (m *Machine) Console() *vga.Console {
	return m.console
}

// Hz returns the configured tick frequency.
func (m *Machine) Hz() int {
	return m.hz
}

// Interval returns the time between ticks.
func (m *Machine) Interval() time.Duration {
	return time.Second / time.Duration(m.hz)
}
