// vgasnake runs a text-mode snake game on an emulated 80x25 frame buffer.
//
// Usage:
//
//	vgasnake play            - Play in the terminal
//	vgasnake echo <text>     - Write text through the scrolling console and dump the grid
//	vgasnake backends        - List display backends
//	vgasnake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.vgasnake, ./configs, embedded)
//	--hz <rate>         - Override the timer frequency
//	--seed <value>      - Set RNG seed for reproducible treat placement
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file while a backend owns the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vgasnake/internal/config"

	// Import backends to register them
	_ "github.com/vovakirdan/vgasnake/internal/platform/term"
	_ "github.com/vovakirdan/vgasnake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagHz       int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vgasnake",
	Short: "Snake on an emulated 80x25 text-mode frame buffer",
	Long: `vgasnake renders an 80x25 grid of coloured character cells and runs a
tick-driven snake game on top of it. The timer and keyboard come from
the terminal; everything else happens on the emulated display.

Available commands:
  play      - Play the game
  echo      - Write text through the scrolling console
  backends  - Show available display backends
  config    - Print the effective configuration

Examples:
  vgasnake play
  vgasnake play --backend tcell --difficulty easy
  vgasnake echo "Hello world!"
  vgasnake config --hz 30`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagHz, "hz", 0, "Timer frequency in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the game owns the terminal")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(echoCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagHz != 0 {
		cfg.Timer.Hz = flagHz
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	return cfg, cfg.Validate()
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
