package randomizer

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func TestUniformDeterministic(t *testing.T) {
	a := NewUniform(42)
	b := NewUniform(42)

	for i := 0; i < 100; i++ {
		x, y := a.Next(7), b.Next(7)
		if x != y {
			t.Fatalf("pick %d: %d != %d with the same seed", i, x, y)
		}
		if x < 0 || x >= 7 {
			t.Fatalf("pick %d out of range: %d", i, x)
		}
	}
}

func TestUniformCoversAllTemplates(t *testing.T) {
	u := NewUniform(1)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		seen[u.Next(7)] = true
	}
	if len(seen) != 7 {
		t.Errorf("saw %d distinct picks in 500 draws, want 7", len(seen))
	}
}

func TestBagDealsEachIndexOnce(t *testing.T) {
	b := NewBag(7)

	for round := 0; round < 5; round++ {
		seen := make(map[int]bool)
		for i := 0; i < 7; i++ {
			p := b.Next(7)
			if seen[p] {
				t.Fatalf("round %d: %d dealt twice", round, p)
			}
			seen[p] = true
		}
	}
}

func TestBagResizes(t *testing.T) {
	b := NewBag(3)
	b.Next(7)

	for i := 0; i < 12; i++ {
		if p := b.Next(3); p < 0 || p >= 3 {
			t.Fatalf("pick %d out of range for n=3", p)
		}
	}
}

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(0, 3, 9, -1)

	want := []int{0, 3, 2, 6, 0, 3}
	for i, w := range want {
		if got := s.Next(7); got != w {
			t.Errorf("pick %d = %d, want %d", i, got, w)
		}
	}
}

func TestSequenceEmpty(t *testing.T) {
	s := NewSequence()
	if got := s.Next(7); got != 0 {
		t.Errorf("Next() = %d, want 0", got)
	}
}

func TestSingleTemplateAlwaysZero(t *testing.T) {
	if NewUniform(5).Next(1) != 0 || NewBag(5).Next(1) != 0 || NewSequence(4).Next(1) != 0 {
		t.Error("n=1 must always pick 0")
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{NameUniform, NameBag} {
		if !registry.Exists(name) {
			t.Errorf("%q is not registered", name)
			continue
		}
		a, err := registry.Create(name, 99)
		if err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
		b, _ := registry.Create(name, 99)
		for i := 0; i < 20; i++ {
			if a.Next(7) != b.Next(7) {
				t.Fatalf("%s: same seed diverged at pick %d", name, i)
			}
		}
	}
}
