package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/replay"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game directly, skipping the menu.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  P                - Pause
  R                - New game
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start, slow speed-up
  normal - Configured speed
  hard   - Fast start, quick level-ups
  fixed  - Speed never changes

Examples:
  tetris play
  tetris play --difficulty hard --randomizer bag
  tetris play --seed 42 --record game.yaml
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Save every command of the game to a replay file")
}

func runPlay(_ *cobra.Command, _ []string) {
	game := loadGameConfig()
	if err := config.ApplyPreset(&game, config.DifficultyPreset(flagDifficulty)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	engine, err := tui.NewEngine(game, "", &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger("tetris", true)
	defer closeLog()

	var rec *replay.Recorder
	if flagRecord != "" {
		rec = replay.NewRecorder(cfg.Seed, cfg.Randomizer)
		rec.SetConfig(game)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	final, runErr := tui.Run(engine, store, cfg, logger, rec)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if rec != nil {
		if err := rec.Save(flagRecord); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving replay: %v\n", err)
		} else {
			fmt.Printf("Replay saved to %s\n", flagRecord)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Score: %d  Level: %d  Lines: %d\n", final.Score, final.Level, final.Lines)
}
