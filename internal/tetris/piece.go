package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Cell is a single board or shape cell. Zero is empty; any other value is the
// ShapeID of the piece that occupies it.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// ShapeID identifies a piece template. IDs start at 1 and follow template order.
type ShapeID = Cell

// Canonical tetromino IDs, in ClassicTemplates order.
const (
	ShapeI ShapeID = iota + 1
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// Shape is a square rotation matrix. Non-empty cells hold the owning ShapeID.
type Shape [][]Cell

// Position is the board coordinate of a shape's top-left corner.
// X grows to the right, Y grows downward; row 0 is the top of the board.
type Position struct {
	X, Y int
}

// Template is one canonical piece layout.
type Template struct {
	ID    ShapeID
	Name  string
	Color core.Color
	Shape Shape
}

// Piece is the active falling shape.
type Piece struct {
	ID       ShapeID
	Shape    Shape
	Position Position
}

// Size returns the side length of the shape's matrix.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]Cell, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// IsSquare reports whether every row has as many cells as there are rows.
func (s Shape) IsSquare() bool {
	for _, row := range s {
		if len(row) != len(s) {
			return false
		}
	}
	return true
}

// Occupied returns the number of non-empty cells.
func (s Shape) Occupied() int {
	n := 0
	for _, row := range s {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Rotate returns the shape turned 90 degrees clockwise.
// The input is left untouched.
//
//	0 1 2      2 1 0
//	X . .      . X X
//	X X X  ->  . X .
//	. . .      . X .
func Rotate(shape Shape) Shape {
	size := len(shape)
	out := make(Shape, size)
	for i := range out {
		out[i] = make([]Cell, size)
	}
	for row := range shape {
		for col, c := range shape[row] {
			out[col][size-1-row] = c
		}
	}
	return out
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	return &Piece{
		ID:       p.ID,
		Shape:    p.Shape.Clone(),
		Position: p.Position,
	}
}

// shapeOf builds a Shape from a mask of 0/1 rows, stamping id into filled cells.
func shapeOf(id ShapeID, mask ...[]int) Shape {
	out := make(Shape, len(mask))
	for r, row := range mask {
		out[r] = make([]Cell, len(row))
		for c, v := range row {
			if v != 0 {
				out[r][c] = id
			}
		}
	}
	return out
}

// ClassicTemplates returns the seven standard tetrominoes.
// Every layout keeps a filled cell in its top row so a fresh spawn at y=0 is visible.
func ClassicTemplates() []Template {
	return []Template{
		{ID: ShapeI, Name: "I", Color: core.ColorCyan, Shape: shapeOf(ShapeI,
			[]int{1, 1, 1, 1},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0},
		)},
		{ID: ShapeO, Name: "O", Color: core.ColorYellow, Shape: shapeOf(ShapeO,
			[]int{1, 1},
			[]int{1, 1},
		)},
		{ID: ShapeT, Name: "T", Color: core.ColorMagenta, Shape: shapeOf(ShapeT,
			[]int{0, 1, 0},
			[]int{1, 1, 1},
			[]int{0, 0, 0},
		)},
		{ID: ShapeS, Name: "S", Color: core.ColorGreen, Shape: shapeOf(ShapeS,
			[]int{0, 1, 1},
			[]int{1, 1, 0},
			[]int{0, 0, 0},
		)},
		{ID: ShapeZ, Name: "Z", Color: core.ColorRed, Shape: shapeOf(ShapeZ,
			[]int{1, 1, 0},
			[]int{0, 1, 1},
			[]int{0, 0, 0},
		)},
		{ID: ShapeJ, Name: "J", Color: core.ColorBlue, Shape: shapeOf(ShapeJ,
			[]int{1, 0, 0},
			[]int{1, 1, 1},
			[]int{0, 0, 0},
		)},
		{ID: ShapeL, Name: "L", Color: core.ColorOrange, Shape: shapeOf(ShapeL,
			[]int{0, 0, 1},
			[]int{1, 1, 1},
			[]int{0, 0, 0},
		)},
	}
}
