package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vgasnake/internal/machine"
	"github.com/vovakirdan/vgasnake/internal/platform/tui"
	"github.com/vovakirdan/vgasnake/internal/registry"
	"github.com/vovakirdan/vgasnake/internal/vga"
)

var (
	flagBackend    string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Boot the emulated display and play.

Controls:
  Arrow keys - Steer (a reversal is ignored)
  Q/Ctrl+C   - Quit

The game ends when the snake leaves the play-field or bites itself.
There is no restart; quit and play again.

Difficulty options:
  easy   - Move every 10 ticks
  medium - Move every 5 ticks
  hard   - Move every 3 ticks (default)

Examples:
  vgasnake play
  vgasnake play --difficulty easy
  vgasnake play --backend tcell --hz 30
  vgasnake play --log-file ./vgasnake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", tui.ID, "Display backend (see 'vgasnake backends')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	stderrLog, err := newLogger(os.Stderr, "vgasnake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'vgasnake backends' to see available backends.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err == nil && flagDifficulty != "" {
		cfg.Game.Difficulty = flagDifficulty
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The grid plus one help line must fit
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < vga.Width || h < vga.Height+1 {
			stderrLog.Warn("terminal smaller than the display", "have", fmt.Sprintf("%dx%d", w, h),
				"need", fmt.Sprintf("%dx%d", vga.Width, vga.Height+1))
		}
	}

	// The backend owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger, _ := newLogger(logOut, "vgasnake")

	m, err := machine.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating machine: %v\n", err)
		os.Exit(1)
	}
	// Interrupt sources start only after the display is initialized
	m.Boot()

	backend, err := registry.Create(flagBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := backend.Run(ctx, m)
	stop()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if st := m.State(); st.GameOver {
		stderrLog.Info("game over", "score", st.Score)
	}
}
