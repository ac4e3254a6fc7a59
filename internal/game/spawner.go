package game

import (
	"math/rand/v2"
	"time"
)

// fourProbability is the chance a spawned tile is a 4 (exponent 2).
const fourProbability = 0.10

// Source is the randomness the spawner consumes. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed uses the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Spawner places new tiles on free cells.
type Spawner struct {
	src          Source
	reserveFirst bool
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(src Source, reserveFirst bool) *Spawner {
	return &Spawner{src: src, reserveFirst: reserveFirst}
}

// eligible returns the free cells a tile may be placed on.
func (s *Spawner) eligible(b *Board) []int {
	cells := b.FreeCells()
	if s.reserveFirst && len(cells) > 0 && cells[0] == 0 {
		cells = cells[1:]
	}
	return cells
}

// CanPlace reports whether Spawn would find a cell.
func (s *Spawner) CanPlace(b *Board) bool {
	free := b.Mask()
	if s.reserveFirst {
		free &^= 1
	}
	return free != 0
}

// Spawn places a 2 (90%) or a 4 (10%) on a uniformly chosen eligible cell.
// It returns the chosen cell and exponent, or ErrBoardFull.
func (s *Spawner) Spawn(b *Board) (cell, exponent int, err error) {
	cells := s.eligible(b)
	if len(cells) == 0 {
		return -1, 0, ErrBoardFull
	}

	exponent = 1
	if s.src.Float64() >= 1-fourProbability {
		exponent = 2
	}
	cell = cells[s.src.IntN(len(cells))]
	b.Set(cell, exponent)
	return cell, exponent, nil
}
