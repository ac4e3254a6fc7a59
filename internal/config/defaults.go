package config

import (
	_ "embed"

	"github.com/vovakirdan/tilemerge/internal/game"
)

//go:embed defaults/tilemerge.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() FileConfig {
	return FileConfig{
		TargetExponent: game.DefaultTargetExponent,
		SpawnPolicy:    string(game.SpawnAlways),
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
