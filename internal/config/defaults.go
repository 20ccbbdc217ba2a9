package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default returns the hardcoded classic configuration.
// It matches defaults/tetris.yaml and is used if the embedded file is unreadable.
func Default() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			LineScore:      100,
			LevelThreshold: 1000,
		},
		HighScores: HighScoreConfig{
			Capacity: 5,
		},
		Gravity: GravityConfig{
			BaseMS: 1000,
			StepMS: 100,
			MinMS:  100,
		},
		Randomizer: "uniform",
		Pieces: []PieceConfig{
			{Name: "I", Color: "cyan", Rows: []string{"####", "....", "....", "...."}},
			{Name: "O", Color: "yellow", Rows: []string{"##", "##"}},
			{Name: "T", Color: "magenta", Rows: []string{".#.", "###", "..."}},
			{Name: "S", Color: "green", Rows: []string{".##", "##.", "..."}},
			{Name: "Z", Color: "red", Rows: []string{"##.", ".##", "..."}},
			{Name: "J", Color: "blue", Rows: []string{"#..", "###", "..."}},
			{Name: "L", Color: "orange", Rows: []string{"..#", "###", "..."}},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
