package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws. When a queue runs dry it returns 0.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// newTestSession builds a session, replaces its board with grid and only
// then hands src to the spawner, so the starting tiles do not consume it.
func newTestSession(t *testing.T, cfg Config, src Source, grid [Height][Width]int) *Session {
	t.Helper()
	s, err := NewSession(cfg, NewSource(1), nil)
	require.NoError(t, err)
	s.board = BoardFromGrid(grid)
	s.spawner.src = src
	return s
}

func tileCount(b Board) int {
	return Cells - b.FreeCount()
}
