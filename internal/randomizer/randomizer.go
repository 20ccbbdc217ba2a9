// Package randomizer provides piece-selection strategies for the engine.
package randomizer

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const (
	NameUniform = "uniform"
	NameBag     = "bag"
)

func init() {
	registry.Register(NameUniform, "Uniform", func(seed int64) tetris.Randomizer {
		return NewUniform(seed)
	})
	registry.Register(NameBag, "7-Bag", func(seed int64) tetris.Randomizer {
		return NewBag(seed)
	})
}

// Uniform picks every template with equal probability, independently.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform creates a uniform randomizer with a deterministic seed.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Next returns an index in [0, n).
func (u *Uniform) Next(n int) int {
	if n <= 1 {
		return 0
	}
	return u.rng.Intn(n)
}

// Bag deals every index once, in shuffled order, before reshuffling.
// No template can be missing for more than 2n-2 picks in a row.
type Bag struct {
	rng  *rand.Rand
	bag  []int
	size int
}

// NewBag creates a bag randomizer with a deterministic seed.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next index from the bag, refilling it when empty.
func (b *Bag) Next(n int) int {
	if n <= 1 {
		return 0
	}
	if n != b.size {
		// Template count changed; start a fresh bag.
		b.size = n
		b.bag = b.bag[:0]
	}
	if len(b.bag) == 0 {
		b.refill()
	}
	i := b.bag[0]
	b.bag = b.bag[1:]
	return i
}

func (b *Bag) refill() {
	b.bag = b.rng.Perm(b.size)
}

// Sequence replays a fixed list of picks, cycling when exhausted.
// Picks are reduced modulo n.
type Sequence struct {
	picks []int
	pos   int
}

// NewSequence creates a sequence randomizer. An empty list always yields 0.
func NewSequence(picks ...int) *Sequence {
	return &Sequence{picks: append([]int(nil), picks...)}
}

// Next returns the next pick in [0, n).
func (s *Sequence) Next(n int) int {
	if len(s.picks) == 0 || n <= 1 {
		return 0
	}
	p := s.picks[s.pos%len(s.picks)]
	s.pos++
	p %= n
	if p < 0 {
		p += n
	}
	return p
}
