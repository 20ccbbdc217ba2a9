package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"

	// Register the built-in randomizers.
	_ "github.com/vovakirdan/tui-tetris/internal/randomizer"
)

// NewEngine builds an engine from a loaded configuration and a difficulty preset.
// The randomizer is rt.Randomizer, or the configured one when empty.
// A zero rt.Seed is replaced with a clock-based seed; the seed actually used
// is written back to rt.
func NewEngine(tc config.TetrisConfig, preset config.DifficultyPreset, rt *core.RuntimeConfig) (*tetris.Engine, error) {
	if err := config.ApplyPreset(&tc, preset); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	ec, err := tc.EngineConfig()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	if rt.Randomizer == "" {
		rt.Randomizer = tc.Randomizer
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rnd, err := registry.Create(rt.Randomizer, rt.Seed)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	e, err := tetris.New(ec, rnd)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return e, nil
}
