package game

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardFull is returned by the spawner when no eligible cell is free.
	ErrBoardFull = errors.New("board full")
	// ErrInvalidConfig is wrapped by every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Target exponent bounds.
const (
	MinTargetExponent     = 10 // 1024
	MaxTargetExponent     = 15 // 32768
	DefaultTargetExponent = 11 // 2048
)

// SpawnPolicy decides whether a move that changed nothing still spawns a tile.
type SpawnPolicy string

const (
	// SpawnAlways spawns after every accepted move.
	SpawnAlways SpawnPolicy = "always"
	// SpawnOnChange spawns only after a move that changed the board.
	SpawnOnChange SpawnPolicy = "on_change"
)

// Config holds the parameters fixed at session creation.
type Config struct {
	TargetExponent int
	SpawnPolicy    SpawnPolicy
	// ReserveFirstCell keeps cell 0 out of the spawner's reach and treats a
	// board whose only free cell is 0 as full.
	ReserveFirstCell bool
}

// DefaultConfig returns the standard 2048 configuration.
func DefaultConfig() Config {
	return Config{
		TargetExponent: DefaultTargetExponent,
		SpawnPolicy:    SpawnAlways,
	}
}

// Validate checks the configuration before a session is built.
func (c Config) Validate() error {
	if c.TargetExponent < MinTargetExponent || c.TargetExponent > MaxTargetExponent {
		return fmt.Errorf("%w: target exponent %d must be between %d and %d",
			ErrInvalidConfig, c.TargetExponent, MinTargetExponent, MaxTargetExponent)
	}
	switch c.SpawnPolicy {
	case SpawnAlways, SpawnOnChange:
	default:
		return fmt.Errorf("%w: unknown spawn policy %q", ErrInvalidConfig, c.SpawnPolicy)
	}
	return nil
}

// TargetValue returns the tile value that wins the game.
func (c Config) TargetValue() int {
	return 1 << c.TargetExponent
}
