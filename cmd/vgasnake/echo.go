package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vgasnake/internal/vga"
)

var flagKeepBlank bool

var echoCmd = &cobra.Command{
	Use:   "echo [text...]",
	Short: "Write text through the scrolling console and print the grid",
	Long: `Initialize an emulated display, write the text through the scrolling
text path and print the resulting 80x25 grid.

Bytes outside printable ASCII are shown as ■. Without arguments the
text is read from stdin.

Examples:
  vgasnake echo "Hello world!"
  printf 'Hello world!\nGood morning!' | vgasnake echo`,
	Run: runEcho,
}

func init() {
	echoCmd.Flags().BoolVar(&flagKeepBlank, "all-rows", false, "Print leading blank rows too")
}

func runEcho(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	color, _ := cfg.Display.ColorCode()

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", readErr)
			os.Exit(1)
		}
		text = string(data)
	}

	console := vga.NewConsole(vga.NewBuffer(), color)
	console.Init()
	console.Print(text)

	f := console.Snapshot()
	fmt.Print(renderPlain(&f, flagKeepBlank))
}

// renderPlain prints the grid rows with trailing blanks trimmed. Leading
// blank rows are dropped unless keepBlank is set.
func renderPlain(f *vga.Frame, keepBlank bool) string {
	var sb strings.Builder
	started := keepBlank
	for row := range vga.Height {
		var line strings.Builder
		for col := range vga.Width {
			line.WriteRune(f[row][col].Rune())
		}
		s := strings.TrimRight(line.String(), " ")
		if !started && s == "" {
			continue
		}
		started = true
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}
