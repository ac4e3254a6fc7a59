package game

// Snapshot is an immutable view of a session for renderers and tests.
type Snapshot struct {
	Board      [Height][Width]int // exponents, 0 = empty
	Score      string             // fixed-width digits
	ScoreValue uint64
	Outcome    Outcome
	Target     int // target exponent
	Moves      int
	MaxTile    int // highest tile value on the board
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:      s.board.Grid(),
		Score:      s.score.String(),
		ScoreValue: s.score.Value(),
		Outcome:    s.outcome,
		Target:     s.cfg.TargetExponent,
		Moves:      s.moves,
		MaxTile:    TileValue(s.board.MaxExponent()),
	}
}

// TileValue converts an exponent to the number shown on the tile.
func TileValue(exponent int) int {
	if exponent <= 0 {
		return 0
	}
	return 1 << exponent
}
