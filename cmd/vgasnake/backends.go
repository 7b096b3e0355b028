package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vgasnake/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all display backends",
	Long:  `Shows a list of all display backends registered in vgasnake.`,
	Run:   runBackends,
}

func runBackends(_ *cobra.Command, _ []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'vgasnake play --backend <id>' to use one.")
}
