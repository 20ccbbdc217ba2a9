package tetris

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from New for a bad Config.
var ErrInvalidConfig = errors.New("tetris: invalid configuration")

// MaxLineScore is the largest accepted Config.LineScore.
const MaxLineScore = 1_000_000

// Gravity defines how the tick interval shrinks as the level rises.
type Gravity struct {
	Base time.Duration // Interval before any level reduction
	Step time.Duration // Reduction per level
	Min  time.Duration // Lower clamp
}

// Config holds construction-time engine options.
type Config struct {
	Width             int
	Height            int
	LevelThreshold    int // Points per level
	LineScore         int // Multiplied by cleared rows squared
	HighScoreCapacity int
	Gravity           Gravity
	Templates         []Template
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Width:             10,
		Height:            20,
		LevelThreshold:    1000,
		LineScore:         100,
		HighScoreCapacity: 5,
		Gravity: Gravity{
			Base: 1000 * time.Millisecond,
			Step: 100 * time.Millisecond,
			Min:  100 * time.Millisecond,
		},
		Templates: ClassicTemplates(),
	}
}

// Validate checks the config and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.LevelThreshold <= 0:
		return fmt.Errorf("%w: level threshold must be positive, got %d", ErrInvalidConfig, c.LevelThreshold)
	case c.LineScore < 0:
		return fmt.Errorf("%w: line score must not be negative, got %d", ErrInvalidConfig, c.LineScore)
	case c.LineScore > MaxLineScore:
		return fmt.Errorf("%w: line score must be at most %d, got %d", ErrInvalidConfig, MaxLineScore, c.LineScore)
	case c.HighScoreCapacity <= 0:
		return fmt.Errorf("%w: high score capacity must be positive, got %d", ErrInvalidConfig, c.HighScoreCapacity)
	case c.Gravity.Min <= 0:
		return fmt.Errorf("%w: minimum gravity interval must be positive, got %s", ErrInvalidConfig, c.Gravity.Min)
	case c.Gravity.Base < c.Gravity.Min:
		return fmt.Errorf("%w: base gravity interval %s is below minimum %s", ErrInvalidConfig, c.Gravity.Base, c.Gravity.Min)
	case c.Gravity.Step < 0:
		return fmt.Errorf("%w: gravity step must not be negative, got %s", ErrInvalidConfig, c.Gravity.Step)
	case len(c.Templates) == 0:
		return fmt.Errorf("%w: no piece templates", ErrInvalidConfig)
	case len(c.Templates) > 255:
		return fmt.Errorf("%w: at most 255 piece templates, got %d", ErrInvalidConfig, len(c.Templates))
	}

	for i, t := range c.Templates {
		if t.ID != ShapeID(i+1) {
			return fmt.Errorf("%w: template %d (%s) has id %d, want %d", ErrInvalidConfig, i, t.Name, t.ID, i+1)
		}
		if !t.Shape.IsSquare() || t.Shape.Size() == 0 {
			return fmt.Errorf("%w: template %s is not a square matrix", ErrInvalidConfig, t.Name)
		}
		if t.Shape.Size() > c.Width {
			return fmt.Errorf("%w: template %s is wider than the board", ErrInvalidConfig, t.Name)
		}
		if t.Shape.Occupied() == 0 {
			return fmt.Errorf("%w: template %s has no cells", ErrInvalidConfig, t.Name)
		}
		for _, row := range t.Shape {
			for _, cell := range row {
				if cell != Empty && cell != t.ID {
					return fmt.Errorf("%w: template %s holds foreign id %d", ErrInvalidConfig, t.Name, cell)
				}
			}
		}
	}

	return nil
}

// LevelForScore returns 1 + score/threshold.
func LevelForScore(score, threshold int) int {
	if threshold <= 0 || score < 0 {
		return 1
	}
	return 1 + score/threshold
}

// GravityInterval returns Base - level*Step, clamped to Min.
func GravityInterval(level int, g Gravity) time.Duration {
	if g.Step > 0 && time.Duration(level) > (g.Base-g.Min)/g.Step {
		return g.Min
	}
	d := g.Base - time.Duration(level)*g.Step
	if d < g.Min {
		return g.Min
	}
	return d
}

// ClearScore returns the points for clearing rows in a single landing.
func ClearScore(rows, lineScore int) int {
	return rows * rows * lineScore
}
