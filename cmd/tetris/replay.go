package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/replay"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagReplayQuiet bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded command script",
	Long: `Run a command script through a new engine and print the final board.

A script is YAML with a seed, an optional randomizer and game config, and
a list of commands (left, right, down, drop, rotate, pause, reset).
'tetris play --record' writes such files.

Examples:
  tetris replay game.yaml
  tetris replay game.yaml --quiet`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayQuiet, "quiet", false, "Only print the score line")
}

func runReplay(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger("replay", false)
	defer closeLog()

	script, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := loadGameConfig()
	engineCfg, err := game.EngineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("replaying", "file", args[0], "seed", script.Seed, "commands", len(script.Commands))
	state, err := replay.Run(script, engineCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !flagReplayQuiet {
		fmt.Print(formatBoard(state))
	}
	fmt.Printf("Score: %d  Level: %d  Lines: %d  Phase: %s\n", state.Score, state.Level, state.Lines, state.Phase)
	if len(state.HighScores) > 0 {
		fmt.Printf("High scores: %v\n", state.HighScores)
	}
}

// formatBoard draws the grid with the active piece as plain text,
// '#' for occupied cells and '.' for empty ones.
func formatBoard(s tetris.State) string {
	var b strings.Builder
	for y := range s.Grid {
		b.WriteByte('|')
		for x := range s.Grid[y] {
			if s.CellAt(x, y) != tetris.Empty {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	if len(s.Grid) > 0 {
		b.WriteString("+" + strings.Repeat("-", len(s.Grid[0])) + "+\n")
	}
	return b.String()
}
