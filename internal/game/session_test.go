package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "target too low", cfg: Config{TargetExponent: 9, SpawnPolicy: SpawnAlways}},
		{name: "target too high", cfg: Config{TargetExponent: 16, SpawnPolicy: SpawnAlways}},
		{name: "unknown policy", cfg: Config{TargetExponent: 11, SpawnPolicy: "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(tt.cfg, NewSource(1), nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, s)
		})
	}
}

func TestNewSessionTargetBounds(t *testing.T) {
	for exp := MinTargetExponent; exp <= MaxTargetExponent; exp++ {
		cfg := DefaultConfig()
		cfg.TargetExponent = exp
		s, err := NewSession(cfg, NewSource(1), nil)
		require.NoError(t, err)
		assert.Equal(t, 1<<exp, s.Config().TargetValue())
	}
}

func TestRestartPlacesTwoTiles(t *testing.T) {
	s, err := NewSession(DefaultConfig(), NewSource(99), nil)
	require.NoError(t, err)

	snap := s.Snapshot()
	b := s.Board()
	assert.Equal(t, 2, tileCount(b))
	assert.True(t, b.Consistent())
	assert.Equal(t, "00000000000", snap.Score)
	assert.Equal(t, InProgress, snap.Outcome)
	assert.Equal(t, 0, snap.Moves)
	assert.Equal(t, DefaultTargetExponent, snap.Target)
}

func TestMoveLeftMergesStartingPair(t *testing.T) {
	// Both starting tiles are 2s at cells 0 and 1; the third spawn lands on
	// the first free cell.
	src := &scriptedSource{ints: []int{0, 0, 0}, floats: []float64{0, 0, 0}}
	s, err := NewSession(DefaultConfig(), src, nil)
	require.NoError(t, err)

	b := s.Board()
	require.Equal(t, 1, b.Get(0))
	require.Equal(t, 1, b.Get(1))

	res := s.ApplyMove(DirLeft)

	b = s.Board()
	assert.Equal(t, 2, b.Get(0))
	assert.Equal(t, 1, res.Merges)
	assert.Equal(t, uint64(16), res.Gained)
	assert.Equal(t, "00000000016", s.Score())
	require.True(t, res.Spawned)
	assert.NotEqual(t, 0, res.SpawnCell)
	assert.Equal(t, 1, b.Get(res.SpawnCell))
	assert.Equal(t, 2, tileCount(b))
	assert.True(t, b.Consistent())
	assert.Equal(t, InProgress, s.Outcome())
}

func TestSingleFreeCellNoMergesLoses(t *testing.T) {
	grid := [Height][Width]int{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 3},
		{2, 1, 3, 0},
	}
	s := newTestSession(t, DefaultConfig(), &scriptedSource{}, grid)

	res := s.ApplyMove(DirLeft)

	// Nothing slid, but the tile is still spawned into the last hole.
	assert.False(t, res.Changed)
	require.True(t, res.Spawned)
	assert.Equal(t, 15, res.SpawnCell)
	assert.Equal(t, 0, s.Board().FreeCount())
	assert.Equal(t, Lost, s.Outcome())
}

func TestSingleFreeCellOnChangePolicyKeepsPlaying(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnPolicy = SpawnOnChange
	grid := [Height][Width]int{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 3},
		{2, 1, 3, 0},
	}
	s := newTestSession(t, cfg, &scriptedSource{}, grid)

	res := s.ApplyMove(DirLeft)

	assert.False(t, res.Spawned)
	assert.Equal(t, 1, s.Board().FreeCount())
	assert.Equal(t, InProgress, s.Outcome())
}

func TestFullBoardSpawnFailureIsAbsorbed(t *testing.T) {
	grid := [Height][Width]int{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	}
	s := newTestSession(t, DefaultConfig(), &scriptedSource{}, grid)

	res := s.ApplyMove(DirUp)

	assert.True(t, res.Accepted)
	assert.False(t, res.Spawned)
	assert.Equal(t, -1, res.SpawnCell)
	assert.Equal(t, Lost, s.Outcome())
}

func TestFullBoardWithMergeKeepsPlaying(t *testing.T) {
	grid := [Height][Width]int{
		{1, 1, 2, 3},
		{2, 3, 4, 5},
		{3, 4, 5, 6},
		{4, 5, 6, 7},
	}
	s := newTestSession(t, DefaultConfig(), &scriptedSource{floats: []float64{0.95}}, grid)

	// Up changes nothing and cannot spawn; a merge is still available.
	res := s.ApplyMove(DirUp)
	assert.False(t, res.Spawned)
	assert.Equal(t, InProgress, s.Outcome())

	res = s.ApplyMove(DirLeft)
	assert.Equal(t, 1, res.Merges)
	assert.True(t, res.Spawned)
	assert.Equal(t, InProgress, s.Outcome())
}

func TestReserveFirstCellQuirk(t *testing.T) {
	grid := [Height][Width]int{
		{0, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	}

	t.Run("reserved cell counts as full", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ReserveFirstCell = true
		s := newTestSession(t, cfg, &scriptedSource{}, grid)

		res := s.ApplyMove(DirRight)

		assert.False(t, res.Spawned)
		assert.True(t, s.Board().IsFree(0))
		assert.Equal(t, Lost, s.Outcome())
	})

	t.Run("corrected rule spawns into cell 0", func(t *testing.T) {
		// A 4 next to the 4 at cell 1 leaves a merge available.
		s := newTestSession(t, DefaultConfig(), &scriptedSource{floats: []float64{0.95}}, grid)

		res := s.ApplyMove(DirRight)

		require.True(t, res.Spawned)
		assert.Equal(t, 0, res.SpawnCell)
		assert.Equal(t, 2, s.Board().Get(0))
		assert.Equal(t, InProgress, s.Outcome())
	})
}

func TestWinIsFinalEvenOnFullBoard(t *testing.T) {
	grid := [Height][Width]int{
		{10, 10, 3, 4},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
	}
	s := newTestSession(t, DefaultConfig(), &scriptedSource{}, grid)

	res := s.ApplyMove(DirLeft)

	assert.True(t, res.Won)
	assert.Equal(t, 0, s.Board().FreeCount())
	b := s.Board()
	assert.False(t, HasPossibleMerge(&b))
	assert.Equal(t, Won, s.Outcome())
}

func TestEndedSessionRejectsMoves(t *testing.T) {
	grid := [Height][Width]int{
		{10, 10, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(t, DefaultConfig(), NewSource(3), grid)

	s.ApplyMove(DirLeft)
	require.Equal(t, Won, s.Outcome())

	board := s.Board()
	score := s.Score()
	moves := s.Snapshot().Moves

	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		res := s.ApplyMove(d)
		assert.False(t, res.Accepted)
	}

	assert.Equal(t, board, s.Board())
	assert.Equal(t, score, s.Score())
	assert.Equal(t, moves, s.Snapshot().Moves)
	assert.Equal(t, Won, s.Outcome())
}

func TestRestartAfterWin(t *testing.T) {
	grid := [Height][Width]int{
		{10, 10, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(t, DefaultConfig(), NewSource(5), grid)
	s.ApplyMove(DirLeft)
	require.Equal(t, Won, s.Outcome())
	require.NotEqual(t, "00000000000", s.Score())

	s.Handle(InputRestart)

	assert.Equal(t, InProgress, s.Outcome())
	assert.Equal(t, 2, tileCount(s.Board()))
	assert.Equal(t, "00000000000", s.Score())
	assert.Equal(t, 0, s.Snapshot().Moves)
}

func TestHandleIgnoresUnknownInput(t *testing.T) {
	s, err := NewSession(DefaultConfig(), NewSource(11), nil)
	require.NoError(t, err)
	before := s.Snapshot()

	s.Handle(InputNone)
	s.Handle(Input(99))
	s.ApplyMove(Direction(7))

	assert.Equal(t, before, s.Snapshot())
}

func TestHandleForwardsMoves(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), &scriptedSource{}, [Height][Width]int{
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := s.Handle(InputLeft)

	assert.Equal(t, DirLeft, res.Direction)
	assert.Equal(t, 1, s.Board().Get(0))
	assert.Equal(t, 1, s.Snapshot().Moves)
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for _, policy := range []SpawnPolicy{SpawnAlways, SpawnOnChange} {
		t.Run(string(policy), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SpawnPolicy = policy
			cfg.TargetExponent = MinTargetExponent
			s, err := NewSession(cfg, NewSource(2024), nil)
			require.NoError(t, err)

			dirs := NewSource(77)
			prev := s.ScoreValue()
			for range 2000 {
				if s.Outcome() != InProgress {
					s.Restart()
					prev = 0
				}

				res := s.ApplyMove(Direction(dirs.IntN(4)))
				b := s.Board()

				require.True(t, b.Consistent())
				require.LessOrEqual(t, res.Merges, Width)
				require.GreaterOrEqual(t, s.ScoreValue(), prev)
				require.Equal(t, prev+res.Gained, s.ScoreValue())
				if res.Won {
					require.Equal(t, Won, s.Outcome())
				}
				prev = s.ScoreValue()
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "in_progress", InProgress.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
}
