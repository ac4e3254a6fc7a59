package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/game"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display recorded games for a target tile.

On a terminal this opens an interactive table (tab switches the target).
When output is piped, or with --plain, the top scores are printed as text.

Examples:
  tilemerge scores
  tilemerge scores -t 10 --plain
  tilemerge scores -t 11 --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to print")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print as text even on a terminal")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the target")
}

func runScores(cmd *cobra.Command, args []string) {
	_, gameCfg, err := resolveConfig(cmd)
	exitOnError("loading config", err)
	target := gameCfg.TargetExponent

	// Open score storage
	store, err := storage.Open(flagDBPath)
	exitOnError("opening scores database", err)
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(target); err != nil {
			store.Close()
			exitOnError("clearing scores", err)
		}
		fmt.Printf("Cleared scores for %d.\n", game.TileValue(target))
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height, _ := term.GetSize(fd)
		if err := tui.RunScoreboard(store, target, width, height); err != nil {
			store.Close()
			exitOnError("running scoreboard", err)
		}
		return
	}

	printScores(store, target)
}

func printScores(store *storage.Store, target int) {
	scores, err := store.TopScores(target, flagScoresLimit)
	if err != nil {
		store.Close()
		exitOnError("retrieving scores", err)
	}

	fmt.Printf("High Scores - %d\n", game.TileValue(target))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tilemerge play -t %d' to set the first high score!\n", target)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-11s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Result", "Date")
	fmt.Printf("  %-4s  %-11s  %-6s  %-6s  %s\n", "----", "-----", "----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-11d  %-6d  %-6s  %s\n", i+1, entry.Score, entry.MaxTile, entry.Outcome, dateStr)
	}

	// Show summary
	fmt.Println()
	if stats, err := store.GetStats(target); err == nil {
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Avg: %.0f  Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore, stats.BestTile)
	}
}
