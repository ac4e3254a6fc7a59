// Package config provides YAML-based game configuration loading for the
// tile-merging game and its terminal front end.
package config

import (
	"fmt"

	"github.com/vovakirdan/tilemerge/internal/game"
)

// FileConfig is the on-disk configuration.
type FileConfig struct {
	TargetExponent   int    `yaml:"target_exponent"`
	SpawnPolicy      string `yaml:"spawn_policy"`
	ReserveFirstCell bool   `yaml:"reserve_first_cell"`
	Mono             bool   `yaml:"mono"` // Black & white tiles
}

// GameConfig converts the file values into a validated game.Config.
func (c FileConfig) GameConfig() (game.Config, error) {
	cfg := game.Config{
		TargetExponent:   c.TargetExponent,
		SpawnPolicy:      game.SpawnPolicy(c.SpawnPolicy),
		ReserveFirstCell: c.ReserveFirstCell,
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
