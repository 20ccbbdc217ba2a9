package tetris

import "time"

// Phase is the engine's position in the tick state machine.
type Phase string

const (
	PhaseNoActivePiece Phase = "no_active_piece"
	PhaseFalling       Phase = "falling"
	PhasePaused        Phase = "paused"
	PhaseEnded         Phase = "ended"
)

// State is a read-only snapshot of the game, safe to hand to a renderer.
// It shares no memory with the engine.
type State struct {
	Grid        [][]Cell
	Active      *Piece // nil between a landing and the next spawn
	Score       int
	Level       int
	Lines       int // Total rows cleared this game
	LastCleared int // Rows cleared by the most recent landing
	Running     bool
	Phase       Phase
	HighScores  []int // Descending, at most HighScoreCapacity entries
	Interval    time.Duration
}

// CellAt returns the grid cell at (x, y), with the active piece overlaid.
func (s State) CellAt(x, y int) Cell {
	if p := s.Active; p != nil {
		col, row := x-p.Position.X, y-p.Position.Y
		if row >= 0 && row < len(p.Shape) && col >= 0 && col < len(p.Shape[row]) {
			if c := p.Shape[row][col]; c != Empty {
				return c
			}
		}
	}
	if y < 0 || y >= len(s.Grid) || x < 0 || x >= len(s.Grid[y]) {
		return Empty
	}
	return s.Grid[y][x]
}

// Ended reports whether the game topped out.
func (s State) Ended() bool {
	return s.Phase == PhaseEnded
}
