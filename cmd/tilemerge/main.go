// tilemerge is a terminal tile-merging puzzle: slide the board, merge equal
// tiles and reach the target tile before the board locks up.
//
// Usage:
//
//	tilemerge                  - Play a game (same as 'tilemerge play')
//	tilemerge play             - Play a game
//	tilemerge replay <moves>   - Run a move string headless and print the result
//	tilemerge scores           - Show high scores
//
// Global flags:
//
//	-t, --target <exp>     - Target tile exponent, 10..15 (default: 11, i.e. 2048)
//	--seed <value>         - RNG seed for reproducible games (0 = time based)
//	--db <path>            - Database path (default: ~/.tilemerge/scores.db)
//	--config <path>        - Custom config YAML
//	-b, --mono             - Monochrome tiles
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/game"
)

var (
	// Global flags
	flagTarget   int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagMono     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilemerge",
	Short: "Tilemerge - slide and merge tiles in your terminal",
	Long: `Tilemerge is a terminal puzzle on a 4x4 board. Every move slides all
tiles one way; two equal tiles that meet merge into one of double value.
Reach the target tile to win. The game is lost when no tile can be
placed and no merge is possible.

Available commands:
  play     - Play a game (default)
  replay   - Run a move string headless
  scores   - View high scores

Examples:
  tilemerge
  tilemerge play -t 10
  tilemerge replay --seed 7 LLUDR
  tilemerge scores -t 11`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv()
	},
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVarP(&flagTarget, "target", "t", game.DefaultTargetExponent,
		fmt.Sprintf("Target tile exponent (%d-%d)", game.MinTargetExponent, game.MaxTargetExponent))
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilemerge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagMono, "mono", "b", false, "Monochrome tiles")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilemerge",
		Level:           level,
	})
	return logger, nil
}

// resolveConfig loads the config file, then TILEMERGE_* variables, then
// explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) (config.FileConfig, game.Config, error) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FileConfig{}, game.Config{}, err
	}
	if err := config.ApplyEnv(&fileCfg); err != nil {
		return config.FileConfig{}, game.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		fileCfg.TargetExponent = flagTarget
	}
	if flags.Changed("mono") {
		fileCfg.Mono = flagMono
	}

	gameCfg, err := fileCfg.GameConfig()
	if err != nil {
		return fileCfg, game.Config{}, err
	}
	return fileCfg, gameCfg, nil
}

// exitOnError prints err in the CLI's format and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}
