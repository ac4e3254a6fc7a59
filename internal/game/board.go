// Package game implements the tile-merging puzzle core: board and occupancy
// tracking, the shift+merge move engine, tile spawning, score accumulation,
// and win/loss detection. It has no terminal or storage dependencies.
package game

import "math/bits"

// Board dimensions.
const (
	Width  = 4
	Height = 4
	Cells  = Width * Height
)

// allFree is the occupancy mask of an empty board.
const allFree uint16 = 1<<Cells - 1

// Board is a fixed grid of tile exponents (0 = empty) with an occupancy
// mask kept in step with it: bit i is set when cell i is free.
type Board struct {
	cells [Cells]int
	free  uint16
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{free: allFree}
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.cells = [Cells]int{}
	b.free = allFree
}

// Get returns the exponent stored at cell, or 0 when cell is out of range.
func (b Board) Get(cell int) int {
	if !inBounds(cell) {
		return 0
	}
	return b.cells[cell]
}

// IsFree reports whether cell is empty. Out-of-range cells are never free.
func (b Board) IsFree(cell int) bool {
	if !inBounds(cell) {
		return false
	}
	return b.free&(1<<cell) != 0
}

// Set stores exponent at cell and updates the mask in the same step.
// A zero exponent is equivalent to Clear.
func (b *Board) Set(cell, exponent int) {
	if !inBounds(cell) {
		return
	}
	if exponent == 0 {
		b.Clear(cell)
		return
	}
	b.cells[cell] = exponent
	b.free &^= 1 << cell
}

// Clear empties cell.
func (b *Board) Clear(cell int) {
	if !inBounds(cell) {
		return
	}
	b.cells[cell] = 0
	b.free |= 1 << cell
}

// Mask returns the occupancy mask (1 = free).
func (b Board) Mask() uint16 {
	return b.free
}

// FreeCount returns the number of empty cells.
func (b Board) FreeCount() int {
	return bits.OnesCount16(b.free)
}

// FreeCells returns the indices of all empty cells in row-major order.
func (b Board) FreeCells() []int {
	cells := make([]int, 0, b.FreeCount())
	for i := range Cells {
		if b.free&(1<<i) != 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// MaxExponent returns the highest exponent on the board.
func (b Board) MaxExponent() int {
	maxExp := 0
	for _, e := range b.cells {
		if e > maxExp {
			maxExp = e
		}
	}
	return maxExp
}

// Grid returns a copy of the board as rows of exponents.
func (b Board) Grid() [Height][Width]int {
	var g [Height][Width]int
	for i, e := range b.cells {
		g[i/Width][i%Width] = e
	}
	return g
}

// Consistent reports whether the mask agrees with the cells.
func (b Board) Consistent() bool {
	for i, e := range b.cells {
		if (e == 0) != (b.free&(1<<i) != 0) {
			return false
		}
	}
	return true
}

// BoardFromGrid builds a board from rows of exponents.
func BoardFromGrid(g [Height][Width]int) Board {
	b := NewBoard()
	for y := range Height {
		for x := range Width {
			b.Set(y*Width+x, g[y][x])
		}
	}
	return b
}

func inBounds(cell int) bool {
	return cell >= 0 && cell < Cells
}
