// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Start the menu (same as 'tetris menu')
//	tetris play              - Start a game directly
//	tetris menu              - Pick difficulty and pieces, then play
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show archived games
//	tetris replay <file>     - Replay a recorded command script
//	tetris config            - Print the effective game configuration
//	tetris list              - List piece randomizers and difficulties
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--randomizer <name>   - Piece randomizer (see 'tetris list')
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file while the game owns the terminal
//
// Defaults can also be set with TETRIS_* environment variables or a .env file.
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"

	// Register the built-in randomizers
	_ "github.com/vovakirdan/tui-tetris/internal/randomizer"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagRandomizer string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Available commands:
  play     - Start a game directly
  menu     - Pick difficulty and pieces, then play
  serve    - Start SSH server for remote play
  scores   - View archived games
  replay   - Replay a recorded command script
  config   - Print the effective game configuration
  list     - List piece randomizers and difficulties

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --seed 42 --record game.yaml
  tetris replay game.yaml
  tetris serve --ssh :2222`,
	PersistentPreRun: applyEnvDefaults,
	Run:              runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagRandomizer, "randomizer", "", "Piece randomizer (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults(cmd *cobra.Command, _ []string) {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("seed") {
		flagSeed = config.EnvInt64Or(config.EnvSeed, flagSeed)
	}
	if !flags.Changed("db") {
		flagDBPath = config.EnvOr(config.EnvDB, flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvOr(config.EnvConfig, flagConfig)
	}
	if !flags.Changed("difficulty") {
		flagDifficulty = config.EnvOr(config.EnvDifficulty, flagDifficulty)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.EnvOr(config.EnvLogLevel, flagLogLevel)
	}
}

// newLogger builds the command logger. Interactive commands pass
// interactive=true: they log only to --log-file, since the game owns the
// terminal.
func newLogger(prefix string, interactive bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			w = io.Discard
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closeFn
}

// loadGameConfig loads the game configuration and checks the difficulty flag.
func loadGameConfig() config.TetrisConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" && !config.IsValidPreset(config.DifficultyPreset(flagDifficulty)) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see difficulties.")
		os.Exit(1)
	}
	if flagRandomizer != "" && !registry.Exists(flagRandomizer) {
		fmt.Fprintf(os.Stderr, "Error: unknown randomizer %q\n", flagRandomizer)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see randomizers.")
		os.Exit(1)
	}
	return cfg
}

// runtimeConfig returns host settings for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.Randomizer = flagRandomizer
	if u, err := user.Current(); err == nil && u.Username != "" {
		cfg.Player = u.Username
	}
	return cfg
}
