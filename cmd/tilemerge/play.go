package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/game"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Arrows, hjkl, wasd - Slide tiles
  R                  - New game (after the game has ended)
  ?                  - Toggle full help
  Q/Esc/Ctrl+C       - Quit

Examples:
  tilemerge play
  tilemerge play -t 10 --seed 42
  tilemerge play --mono
  tilemerge play --config ./my-tilemerge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	fileCfg, gameCfg, err := resolveConfig(cmd)
	exitOnError("loading config", err)

	logger, err := newLogger(io.Discard)
	exitOnError("configuring logger", err)

	// The alt screen owns the terminal; debug output goes to a file instead
	if logger.GetLevel() == log.DebugLevel {
		f, openErr := openDebugLog()
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", openErr)
		} else {
			defer f.Close()
			logger.SetOutput(f)
		}
	}

	// Get terminal size for initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session, err := game.NewSession(gameCfg, game.NewSource(flagSeed), logger)
	exitOnError("starting game", err)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Debug("starting",
		"target", gameCfg.TargetExponent,
		"spawn_policy", gameCfg.SpawnPolicy,
		"reserve_first_cell", gameCfg.ReserveFirstCell,
		"seed", flagSeed,
	)

	runErr := tui.Run(session, store, tui.Options{
		Mono:   fileCfg.Mono,
		Width:  width,
		Height: height,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	exitOnError("running game", runErr)
}

// openDebugLog opens ~/.tilemerge/debug.log for appending.
func openDebugLog() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".tilemerge")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
