package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a menu",
	Long: `Start in interactive menu mode.

Pick a difficulty and a piece randomizer, then start a game.
Esc during a game returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change option
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  tetris menu
  tetris menu --difficulty hard
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	game := loadGameConfig()
	cfg := runtimeConfig()

	logger, closeLog := newLogger("tetris", true)
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	difficulty := config.DifficultyPreset(flagDifficulty)
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}

	runErr := tui.RunSession(store, game, difficulty, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
