package config

import (
	_ "embed"
)

//go:embed defaults/vgasnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timer: TimerConfig{
			Hz: 18,
		},
		Game: GameConfig{
			Difficulty: "hard",
			Seed:       0,
		},
		Display: DisplayConfig{
			Foreground: "yellow",
			Background: "black",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
