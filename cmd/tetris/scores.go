package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show archived games",
	Long: `Display the best archived games.

Examples:
  tetris scores
  tetris scores --limit 20
  tetris scores --player alice
  tetris scores --tui
  tetris scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show games of this player")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all archived games")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores deleted.")
		return
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		player := flagScoresPlayer
		if player == "" {
			player = cfg.Player
		}
		if err := tui.RunScoreboard(store, player, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %-7s  %s\n", "Rank", "Score", "Level", "Lines", "Player", "End", "Played")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %-7s  %s\n", "----", "-----", "-----", "-----", "------", "---", "------")

	// Print scores
	for i, entry := range scores {
		dateStr := humanize.Time(entry.CreatedAt)
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-12s  %-7s  %s\n",
			i+1, entry.Score, entry.Level, entry.Lines, entry.Player, entry.EndReason, dateStr)
	}

	// Show high score and totals
	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %s\n", humanize.Comma(int64(highScore)))
	}
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Games: %d  Average: %.0f  Lines: %s\n",
			stats.GamesCount, stats.AvgScore, humanize.Comma(stats.TotalLines))
	}
}
