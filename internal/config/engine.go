package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// EngineConfig converts the YAML form into engine options and validates them.
// Errors wrap tetris.ErrInvalidConfig.
func (c TetrisConfig) EngineConfig() (tetris.Config, error) {
	templates := make([]tetris.Template, 0, len(c.Pieces))
	for i, p := range c.Pieces {
		t, err := p.template(tetris.ShapeID(i + 1))
		if err != nil {
			return tetris.Config{}, fmt.Errorf("%w: piece %d (%s): %v", tetris.ErrInvalidConfig, i, p.Name, err)
		}
		templates = append(templates, t)
	}

	cfg := tetris.Config{
		Width:             c.Board.Width,
		Height:            c.Board.Height,
		LevelThreshold:    c.Scoring.LevelThreshold,
		LineScore:         c.Scoring.LineScore,
		HighScoreCapacity: c.HighScores.Capacity,
		Gravity: tetris.Gravity{
			Base: time.Duration(c.Gravity.BaseMS) * time.Millisecond,
			Step: time.Duration(c.Gravity.StepMS) * time.Millisecond,
			Min:  time.Duration(c.Gravity.MinMS) * time.Millisecond,
		},
		Templates: templates,
	}
	if err := cfg.Validate(); err != nil {
		return tetris.Config{}, err
	}
	return cfg, nil
}

func (p PieceConfig) template(id tetris.ShapeID) (tetris.Template, error) {
	color := core.ColorDefault
	if p.Color != "" {
		c, ok := core.ParseColor(p.Color)
		if !ok {
			return tetris.Template{}, fmt.Errorf("unknown color %q", p.Color)
		}
		color = c
	}

	size := len(p.Rows)
	if size == 0 {
		return tetris.Template{}, fmt.Errorf("no rows")
	}

	shape := make(tetris.Shape, size)
	for y, row := range p.Rows {
		cells := []rune(row)
		if len(cells) != size {
			return tetris.Template{}, fmt.Errorf("row %d has %d cells, want %d", y, len(cells), size)
		}
		shape[y] = make([]tetris.Cell, size)
		for x, r := range cells {
			switch r {
			case '#':
				shape[y][x] = id
			case '.':
			default:
				return tetris.Template{}, fmt.Errorf("row %d: unexpected %q", y, r)
			}
		}
	}
	if shape.Occupied() == 0 {
		return tetris.Template{}, fmt.Errorf("no occupied cells")
	}

	name := p.Name
	if name == "" {
		name = fmt.Sprintf("#%d", id)
	}
	return tetris.Template{ID: id, Name: name, Color: color, Shape: shape}, nil
}
