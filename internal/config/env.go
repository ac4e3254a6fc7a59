package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvTargetExponent   = "TILEMERGE_TARGET_EXPONENT"
	EnvSpawnPolicy      = "TILEMERGE_SPAWN_POLICY"
	EnvReserveFirstCell = "TILEMERGE_RESERVE_FIRST_CELL"
	EnvMono             = "TILEMERGE_MONO"
)

// LoadDotEnv loads variables from .env style files without overriding ones
// already set in the process. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any TILEMERGE_* variables that are set.
func ApplyEnv(cfg *FileConfig) error {
	if v, ok := os.LookupEnv(EnvTargetExponent); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTargetExponent, err)
		}
		cfg.TargetExponent = n
	}
	if v, ok := os.LookupEnv(EnvSpawnPolicy); ok {
		cfg.SpawnPolicy = v
	}
	if err := envBool(EnvReserveFirstCell, &cfg.ReserveFirstCell); err != nil {
		return err
	}
	return envBool(EnvMono, &cfg.Mono)
}

func envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}
