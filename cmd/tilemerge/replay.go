package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/game"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
)

var flagReplaySteps bool

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Run a move string headless and print the result",
	Long: `Play a sequence of moves without a terminal UI and print the final
board, score and outcome. With the same seed the result is always the same.

Moves are letters (u, d, l, r; x restarts) or comma/space separated words
(up, down, left, right, restart). Unknown entries are skipped, and moves
after the game has ended are rejected like in interactive play.

Examples:
  tilemerge replay --seed 7 LLUDR
  tilemerge replay --seed 7 "left,left,up" --steps
  tilemerge replay -t 10 --seed 1 ULDRULDR`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplaySteps, "steps", false, "Print the board after every move")
}

func runReplay(cmd *cobra.Command, args []string) {
	_, gameCfg, err := resolveConfig(cmd)
	exitOnError("loading config", err)

	logger, err := newLogger(os.Stderr)
	exitOnError("configuring logger", err)

	seed := flagSeed
	if seed == 0 {
		logger.Warn("no --seed given, replay will not be reproducible")
	}

	session, err := game.NewSession(gameCfg, game.NewSource(seed), logger)
	exitOnError("starting game", err)

	inputs := game.ParseMoves(args[0])
	if len(inputs) == 0 {
		exitOnError("parsing moves", fmt.Errorf("no valid moves in %q", args[0]))
	}

	if flagReplaySteps {
		fmt.Println("start")
		fmt.Println(tui.PlainBoard(session.Snapshot()))
		fmt.Println()
	}

	rejected := 0
	for i, in := range inputs {
		res := session.Handle(in)
		if in != game.InputRestart && !res.Accepted {
			rejected++
		}
		if flagReplaySteps {
			fmt.Printf("%d %s merges=%d +%d\n", i+1, strings.ToLower(in.String()), res.Merges, res.Gained)
			fmt.Println(tui.PlainBoard(session.Snapshot()))
			fmt.Println()
		}
	}

	snap := session.Snapshot()
	fmt.Println(tui.PlainBoard(snap))
	fmt.Println()
	fmt.Printf("Score:   %s\n", snap.Score)
	fmt.Printf("Outcome: %s\n", snap.Outcome)
	fmt.Printf("Moves:   %d\n", snap.Moves)
	fmt.Printf("Tile:    %d\n", snap.MaxTile)
	if rejected > 0 {
		fmt.Printf("Ignored: %d (game already over)\n", rejected)
	}
}
