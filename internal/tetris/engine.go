// Package tetris implements the falling-block puzzle engine: a fixed board,
// the active piece, collision checks, rotation, line clears, scoring and
// level progression.
//
// The engine is a synchronous state machine with no timers, goroutines or I/O.
// Hosts feed it commands one at a time (gravity ticks from a timer, player
// commands from an input mapper) and render the State each command returns.
// It is not safe for concurrent use.
package tetris

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Randomizer picks the next template index in [0, n).
type Randomizer interface {
	Next(n int) int
}

// Engine owns the board, the active piece and the score.
type Engine struct {
	cfg Config
	rnd Randomizer

	board       *Board
	active      *Piece
	score       int
	level       int
	lines       int
	lastCleared int
	running     bool
	ended       bool
	highScores  []int
}

// New validates cfg and returns an engine ready to play, as after Reset.
func New(cfg Config, rnd Randomizer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, fmt.Errorf("%w: nil randomizer", ErrInvalidConfig)
	}

	e := &Engine{
		cfg:        cfg,
		rnd:        rnd,
		board:      NewBoard(cfg.Width, cfg.Height),
		highScores: make([]int, 0, cfg.HighScoreCapacity),
	}
	e.reset()
	return e, nil
}

// Config returns the engine's construction options.
func (e *Engine) Config() Config {
	return e.cfg
}

// Template returns the template for id, or false if id is unknown.
func (e *Engine) Template(id ShapeID) (Template, bool) {
	i := int(id) - 1
	if i < 0 || i >= len(e.cfg.Templates) {
		return Template{}, false
	}
	return e.cfg.Templates[i], true
}

// State returns a snapshot without changing anything.
func (e *Engine) State() State {
	return State{
		Grid:        e.board.Cells(),
		Active:      e.active.Clone(),
		Score:       e.score,
		Level:       e.level,
		Lines:       e.lines,
		LastCleared: e.lastCleared,
		Running:     e.running,
		Phase:       e.phase(),
		HighScores:  e.HighScores(),
		Interval:    e.Interval(),
	}
}

// HighScores returns a copy of the ranked list.
func (e *Engine) HighScores() []int {
	return slices.Clone(e.highScores)
}

// Interval returns the gravity tick period for the current level.
func (e *Engine) Interval() time.Duration {
	return GravityInterval(e.level, e.cfg.Gravity)
}

func (e *Engine) phase() Phase {
	switch {
	case e.ended:
		return PhaseEnded
	case !e.running:
		return PhasePaused
	case e.active == nil:
		return PhaseNoActivePiece
	default:
		return PhaseFalling
	}
}

// Apply dispatches a command value.
func (e *Engine) Apply(cmd Command) State {
	switch cmd {
	case CmdLeft:
		return e.MoveLeft()
	case CmdRight:
		return e.MoveRight()
	case CmdSoftDrop:
		return e.SoftDrop()
	case CmdHardDrop:
		return e.HardDrop()
	case CmdRotate:
		return e.Rotate()
	case CmdPause:
		return e.TogglePause()
	case CmdReset:
		return e.Reset()
	default:
		return e.State()
	}
}

// MoveLeft shifts the active piece one column left if it fits.
func (e *Engine) MoveLeft() State {
	e.shift(-1)
	return e.State()
}

// MoveRight shifts the active piece one column right if it fits.
func (e *Engine) MoveRight() State {
	e.shift(1)
	return e.State()
}

func (e *Engine) shift(dx int) {
	if !e.running || e.active == nil {
		return
	}
	next := e.active.Position
	next.X += dx
	if e.board.IsValidPlacement(e.active.Shape, next) {
		e.active.Position = next
	}
}

// Tick is the gravity step driven by the host's timer. Same as SoftDrop.
func (e *Engine) Tick() State {
	return e.SoftDrop()
}

// SoftDrop advances the state machine by one gravity step.
// With no active piece a new one spawns. Otherwise the piece moves down one
// row, or, if it cannot, lands: it merges into the board, full rows clear,
// the score and level update and the piece retires.
func (e *Engine) SoftDrop() State {
	if !e.running {
		return e.State()
	}
	if e.active == nil {
		e.spawn()
		return e.State()
	}

	next := e.active.Position
	next.Y++
	if e.board.IsValidPlacement(e.active.Shape, next) {
		e.active.Position = next
		return e.State()
	}

	e.land()
	return e.State()
}

// HardDrop slides the active piece to the lowest row it fits in.
// The piece lands on the following gravity step, not here.
func (e *Engine) HardDrop() State {
	if !e.running || e.active == nil {
		return e.State()
	}
	next := e.active.Position
	for {
		next.Y++
		if !e.board.IsValidPlacement(e.active.Shape, next) {
			break
		}
	}
	next.Y--
	e.active.Position = next
	return e.State()
}

// Rotate turns the active piece clockwise if the result fits in place.
// No wall kicks: a blocked rotation leaves the piece untouched.
func (e *Engine) Rotate() State {
	if !e.running || e.active == nil {
		return e.State()
	}
	rotated := Rotate(e.active.Shape)
	if e.board.IsValidPlacement(rotated, e.active.Position) {
		e.active.Shape = rotated
	}
	return e.State()
}

// TogglePause flips the running flag. Pausing records the current score in the
// high-score list. An ended game stays ended; use Reset.
func (e *Engine) TogglePause() State {
	if e.ended {
		return e.State()
	}
	e.running = !e.running
	if !e.running {
		e.recordScore()
	}
	return e.State()
}

// Reset starts a new game. The high-score list survives.
func (e *Engine) Reset() State {
	e.reset()
	return e.State()
}

func (e *Engine) reset() {
	e.board.Reset()
	e.active = nil
	e.score = 0
	e.level = 1
	e.lines = 0
	e.lastCleared = 0
	e.running = true
	e.ended = false
}

// spawn draws a template and places it at the spawn position.
// An invalid spawn tops out the game.
func (e *Engine) spawn() {
	t := e.cfg.Templates[e.rnd.Next(len(e.cfg.Templates))]
	pos := e.SpawnPosition(t.Shape)

	if !e.board.IsValidPlacement(t.Shape, pos) {
		e.topOut()
		return
	}

	e.active = &Piece{
		ID:       t.ID,
		Shape:    t.Shape.Clone(),
		Position: pos,
	}
}

// SpawnPosition returns where a shape enters the board: horizontally centered,
// on the top row.
func (e *Engine) SpawnPosition(shape Shape) Position {
	return Position{X: (e.cfg.Width - shape.Size()) / 2, Y: 0}
}

// land merges the active piece, clears rows, then updates score and level in
// that order.
func (e *Engine) land() {
	e.board.Merge(e.active.Shape, e.active.Position)
	e.active = nil

	cleared := e.board.ClearFullRows()
	e.lastCleared = cleared
	if cleared == 0 {
		return
	}
	e.lines += cleared
	e.score = addScore(e.score, ClearScore(cleared, e.cfg.LineScore))
	e.level = max(e.level, LevelForScore(e.score, e.cfg.LevelThreshold))
}

// addScore adds gain to score, saturating at math.MaxInt.
func addScore(score, gain int) int {
	if gain > math.MaxInt-score {
		return math.MaxInt
	}
	return score + gain
}

func (e *Engine) topOut() {
	e.active = nil
	e.ended = true
	if e.running {
		e.running = false
		e.recordScore()
	}
}

// recordScore inserts the current score into the bounded, descending list.
func (e *Engine) recordScore() {
	e.highScores = append(e.highScores, e.score)
	slices.SortStableFunc(e.highScores, func(a, b int) int { return b - a })
	if len(e.highScores) > e.cfg.HighScoreCapacity {
		e.highScores = e.highScores[:e.cfg.HighScoreCapacity]
	}
}
