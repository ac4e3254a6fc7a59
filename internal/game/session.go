package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// Outcome is the tri-state result of a session.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// startingTiles is the number of tiles placed by Restart.
const startingTiles = 2

// Session owns one game: board, score, target and outcome.
// It is not safe for concurrent use; callers serialize input.
type Session struct {
	cfg     Config
	board   Board
	score   Score
	outcome Outcome
	moves   int

	spawner *Spawner
	engine  *Engine
	logger  *log.Logger
}

// NewSession validates cfg and starts a fresh game drawing from src.
// A nil logger discards output.
func NewSession(cfg Config, src Source, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource(0)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	spawner := NewSpawner(src, cfg.ReserveFirstCell)
	s := &Session{
		cfg:     cfg,
		spawner: spawner,
		engine:  NewEngine(cfg, spawner),
		logger:  logger.WithPrefix("session"),
	}
	s.Restart()
	return s, nil
}

// Restart clears the board and score and places the starting tiles.
func (s *Session) Restart() {
	s.board.Reset()
	s.score.Reset()
	s.outcome = InProgress
	s.moves = 0

	for range startingTiles {
		if _, _, err := s.spawner.Spawn(&s.board); err != nil {
			s.logger.Warn("starting tile not placed", "err", err)
		}
	}
	s.logger.Debug("restart", "target", s.cfg.TargetExponent, "free", s.board.FreeCount())
}

// ApplyMove runs one move. Once the outcome is decided the move is rejected
// and nothing changes.
func (s *Session) ApplyMove(d Direction) MoveResult {
	if s.outcome != InProgress {
		s.logger.Debug("move rejected", "dir", d, "outcome", s.outcome)
		return MoveResult{Direction: d, SpawnCell: -1}
	}
	if !d.Valid() {
		return MoveResult{Direction: d, SpawnCell: -1}
	}

	res := s.engine.Apply(&s.board, &s.score, d)
	s.moves++

	if !res.Spawned && (s.cfg.SpawnPolicy == SpawnAlways || res.Changed) {
		s.logger.Debug("tile not spawned", "err", ErrBoardFull, "dir", d)
	}

	switch {
	case res.Won:
		s.setOutcome(Won)
	case !s.spawner.CanPlace(&s.board) && !HasPossibleMerge(&s.board):
		s.setOutcome(Lost)
	}

	s.logger.Debug("move",
		"dir", d,
		"merges", res.Merges,
		"gained", res.Gained,
		"spawn", res.SpawnCell,
		"score", s.score.String(),
	)
	return res
}

func (s *Session) setOutcome(o Outcome) {
	if s.outcome != InProgress {
		return
	}
	s.outcome = o
	s.logger.Info("game over", "outcome", o, "score", s.score.Value(), "moves", s.moves)
}

// Handle forwards a single input. Moves are ignored once the game has
// ended; restart is always honoured. Unknown inputs do nothing.
func (s *Session) Handle(in Input) MoveResult {
	if in == InputRestart {
		s.Restart()
		return MoveResult{SpawnCell: -1}
	}
	d, ok := in.Direction()
	if !ok {
		return MoveResult{SpawnCell: -1}
	}
	return s.ApplyMove(d)
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

// Score returns the score digits.
func (s *Session) Score() string {
	return s.score.String()
}

// ScoreValue returns the score as an integer.
func (s *Session) ScoreValue() uint64 {
	return s.score.Value()
}

// Board returns a copy of the board.
func (s *Session) Board() Board {
	return s.board
}
