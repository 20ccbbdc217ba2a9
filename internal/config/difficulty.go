package config

import "fmt"

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) error {
	switch preset {
	case DifficultyNormal, "":
	case DifficultyEasy:
		cfg.Gravity.BaseMS = 1200
		cfg.Gravity.StepMS = 80
		cfg.Gravity.MinMS = 200
		cfg.Scoring.LevelThreshold = 1500
	case DifficultyHard:
		cfg.Gravity.BaseMS = 700
		cfg.Gravity.StepMS = 80
		cfg.Gravity.MinMS = 60
		cfg.Scoring.LevelThreshold = 600
	case DifficultyFixed:
		cfg.Gravity.StepMS = 0
	default:
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
	return nil
}
