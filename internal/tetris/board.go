package tetris

// Board is the fixed-size playfield.
// Rows are indexed top to bottom, columns left to right.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty board. Dimensions are assumed positive;
// Engine construction validates them.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.Reset()
	return b
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as Empty.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a cell. Out-of-bounds coordinates are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = c
}

// Cells returns a deep copy of the grid.
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.height)
	for y := range b.cells {
		out[y] = make([]Cell, b.width)
		copy(out[y], b.cells[y])
	}
	return out
}

// IsValidPlacement reports whether shape fits at pos.
// Cells above the top row are allowed; cells past the side walls, below the
// floor or on an occupied cell are not.
func (b *Board) IsValidPlacement(shape Shape, pos Position) bool {
	for row := range shape {
		for col, c := range shape[row] {
			if c == Empty {
				continue
			}
			x := pos.X + col
			y := pos.Y + row
			if x < 0 || x >= b.width || y >= b.height {
				return false
			}
			if y < 0 {
				continue
			}
			if b.cells[y][x] != Empty {
				return false
			}
		}
	}
	return true
}

// Merge stamps the shape's non-empty cells into the board.
// Callers check IsValidPlacement first; cells outside the grid are skipped.
func (b *Board) Merge(shape Shape, pos Position) {
	for row := range shape {
		for col, c := range shape[row] {
			if c == Empty {
				continue
			}
			b.Set(pos.X+col, pos.Y+row, c)
		}
	}
}

// ClearFullRows removes every full row and prepends as many empty rows,
// keeping the height fixed. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]Cell, 0, b.height)
	for _, row := range b.cells {
		if !isFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Cell, 0, b.height)
	for range cleared {
		rows = append(rows, make([]Cell, b.width))
	}
	b.cells = append(rows, kept...)
	return cleared
}

// isEmpty reports whether no cell is occupied.
func (b *Board) isEmpty() bool {
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				return false
			}
		}
	}
	return true
}

func isFull(row []Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}
