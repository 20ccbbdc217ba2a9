package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicTemplates(t *testing.T) {
	templates := ClassicTemplates()
	require.Len(t, templates, 7)

	names := ""
	for i, tmpl := range templates {
		names += tmpl.Name
		assert.Equal(t, ShapeID(i+1), tmpl.ID)
		assert.True(t, tmpl.Shape.IsSquare(), tmpl.Name)
		assert.Equal(t, 4, tmpl.Shape.Occupied(), "%s is a tetromino", tmpl.Name)

		topFilled := false
		for _, c := range tmpl.Shape[0] {
			if c != Empty {
				topFilled = true
			}
		}
		assert.True(t, topFilled, "%s should show on its spawn row", tmpl.Name)
	}
	assert.Equal(t, "IOTSZJL", names)
}

func TestRotateClockwise(t *testing.T) {
	j := ClassicTemplates()[5].Shape

	want := shapeOf(ShapeJ,
		[]int{0, 1, 1},
		[]int{0, 1, 0},
		[]int{0, 1, 0},
	)
	assert.Equal(t, want, Rotate(j))
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	tmpl := ClassicTemplates()[2]
	before := tmpl.Shape.Clone()

	_ = Rotate(tmpl.Shape)

	assert.True(t, before.Equal(tmpl.Shape))
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, tmpl := range ClassicTemplates() {
		t.Run(tmpl.Name, func(t *testing.T) {
			s := tmpl.Shape
			for range 4 {
				s = Rotate(s)
			}
			assert.True(t, s.Equal(tmpl.Shape))
		})
	}
}

func TestRotateSquareIsInvariant(t *testing.T) {
	o := ClassicTemplates()[1].Shape
	assert.True(t, Rotate(o).Equal(o))
}

func TestRotateBar(t *testing.T) {
	bar := ClassicTemplates()[0].Shape
	vertical := Rotate(bar)

	for row := range 4 {
		assert.Equal(t, ShapeI, vertical[row][3], "row %d", row)
		for col := range 3 {
			assert.Equal(t, Empty, vertical[row][col])
		}
	}
}

func TestShapeEqual(t *testing.T) {
	a := shapeOf(ShapeT, []int{1, 0}, []int{0, 1})
	b := shapeOf(ShapeT, []int{1, 0}, []int{0, 1})
	c := shapeOf(ShapeT, []int{0, 1}, []int{1, 0})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(shapeOf(ShapeT, []int{1})))
}

func TestPieceClone(t *testing.T) {
	var nilPiece *Piece
	assert.Nil(t, nilPiece.Clone())

	p := &Piece{ID: ShapeS, Shape: ClassicTemplates()[3].Shape.Clone(), Position: Position{X: 2, Y: 3}}
	c := p.Clone()
	c.Shape[0][0] = ShapeZ
	c.Position.X = 9

	assert.Equal(t, Empty, p.Shape[0][0])
	assert.Equal(t, 2, p.Position.X)
}
