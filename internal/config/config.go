// Package config provides YAML-based configuration loading for vgasnake:
// timer frequency, difficulty, RNG seed and the display colour attribute.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/vgasnake/internal/game"
	"github.com/vovakirdan/vgasnake/internal/vga"
)

// Config is the complete runtime configuration.
type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
}

// TimerConfig defines the periodic tick source.
type TimerConfig struct {
	Hz int `yaml:"hz"` // ticks per second
}

// GameConfig defines engine parameters.
type GameConfig struct {
	Difficulty string `yaml:"difficulty"` // easy, medium or hard
	Seed       int64  `yaml:"seed"`       // 0 = time based
}

// DisplayConfig defines the writer's colour attribute.
type DisplayConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// Level resolves the configured difficulty name.
func (c GameConfig) Level() (game.Difficulty, error) {
	return game.ParseDifficulty(c.Difficulty)
}

// ColorCode resolves the configured colours into a packed attribute.
func (c DisplayConfig) ColorCode() (vga.ColorCode, error) {
	fg, err := vga.ParseColor(c.Foreground)
	if err != nil {
		return 0, fmt.Errorf("display.foreground: %w", err)
	}
	bg, err := vga.ParseColor(c.Background)
	if err != nil {
		return 0, fmt.Errorf("display.background: %w", err)
	}
	return vga.NewColorCode(fg, bg), nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if c.Timer.Hz <= 0 {
		errs = append(errs, fmt.Errorf("timer.hz must be positive, got %d", c.Timer.Hz))
	}
	if _, err := c.Game.Level(); err != nil {
		errs = append(errs, fmt.Errorf("game.difficulty: %w", err))
	}
	if _, err := c.Display.ColorCode(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
