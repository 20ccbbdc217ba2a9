package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 4)
	if s.Width() != 10 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 10x4", s.Width(), s.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestScreenSetColoredBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '█', ColorCyan)
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(4, 0, 'x', ColorRed)
	s.SetColored(0, 2, 'x', ColorRed)

	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != ColorCyan {
		t.Errorf("GetCell(1,1) = %+v, expected cyan block", c)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds writes should be ignored")
	}
	if c := s.GetCell(9, 9); c.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %+v, expected space", c)
	}
}

func TestScreenDrawTextColoredClips(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(2, 0, "SCORE", ColorGray)

	if got := s.String(); got != "  SCOR" {
		t.Errorf("String() = %q, expected %q", got, "  SCOR")
	}
	if c := s.GetCell(2, 0); c.Color != ColorGray {
		t.Errorf("text color = %v, expected gray", c.Color)
	}
}

func TestScreenDrawTextColoredCountsRunes(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColored(0, 0, "██ ·", ColorBlue)

	want := []rune{'█', '█', ' ', '·'}
	for x, r := range want {
		if got := s.GetCell(x, 0).Rune; got != r {
			t.Errorf("cell %d = %q, expected %q", x, got, r)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
	if c := s.GetCell(0, 0); c.Color != ColorGray {
		t.Errorf("border color = %v, expected gray", c.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawTextColored(0, 0, "abc", ColorRed)
	s.Clear()

	for x := 0; x < 3; x++ {
		if c := s.GetCell(x, 0); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("cell %d = %+v after Clear, expected blank", x, c)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawTextColored(0, 0, "abc", ColorRed)

	s.Resize(3, 1)
	if s.String() != "abc" {
		t.Error("same-size Resize should keep content")
	}

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 5x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "     \n     " {
		t.Errorf("String() after Resize = %q, expected blank", got)
	}
}
