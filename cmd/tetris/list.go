package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List piece randomizers and difficulties",
	Long:  `Shows the registered piece randomizers and the difficulty presets.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	randomizers := registry.List()

	if len(randomizers) == 0 {
		fmt.Println("No randomizers available.")
	} else {
		fmt.Println("Randomizers:")
		fmt.Println()

		// Calculate column widths
		maxNameLen := 4 // "Name" header
		for _, r := range randomizers {
			if len(r.Name) > maxNameLen {
				maxNameLen = len(r.Name)
			}
		}

		// Print header
		fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
		fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

		for _, r := range randomizers {
			fmt.Printf("  %-*s  %s\n", maxNameLen, r.Name, r.Title)
		}
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	fmt.Println()
	for _, p := range config.Presets() {
		fmt.Printf("  %s\n", p)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play --randomizer <name> --difficulty <preset>' to play.")
}
