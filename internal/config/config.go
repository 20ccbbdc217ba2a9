// Package config provides YAML-based configuration loading, difficulty
// presets and environment defaults for the tetris engine and its hosts.
package config

// TetrisConfig contains all user-tunable game settings.
type TetrisConfig struct {
	Board      BoardConfig     `yaml:"board"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	HighScores HighScoreConfig `yaml:"high_scores"`
	Gravity    GravityConfig   `yaml:"gravity"`
	Randomizer string          `yaml:"randomizer"` // Registered randomizer name
	Pieces     []PieceConfig   `yaml:"pieces"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LineScore      int `yaml:"line_score"`      // Multiplied by rows cleared squared
	LevelThreshold int `yaml:"level_threshold"` // Points per level
}

// HighScoreConfig bounds the in-memory ranked list.
type HighScoreConfig struct {
	Capacity int `yaml:"capacity"`
}

// GravityConfig defines the tick interval in milliseconds.
// interval = max(min_ms, base_ms - level * step_ms)
type GravityConfig struct {
	BaseMS int `yaml:"base_ms"`
	StepMS int `yaml:"step_ms"`
	MinMS  int `yaml:"min_ms"`
}

// PieceConfig is one template. Rows form a square matrix where '#' marks an
// occupied cell and '.' an empty one.
type PieceConfig struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Gravity never speeds up
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// IsValidPreset reports whether p names a known preset.
func IsValidPreset(p DifficultyPreset) bool {
	for _, known := range Presets() {
		if p == known {
			return true
		}
	}
	return false
}
