package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/helix-drop/internal/registry"
	"github.com/vovakirdan/helix-drop/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs for a mode",
	Long: `Display the best recorded runs for the specified mode (default: helix).

Examples:
  helixdrop scores
  helixdrop scores helix_endless --limit 20
  helixdrop scores helix --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "helix"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'helixdrop list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'helixdrop play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %s\n", i+1, entry.Score, entry.Level, entry.Outcome, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.1f\n",
			stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	}
	if gameID == "helix" {
		if best, err := store.BestLevel(gameID); err == nil && best > 0 {
			fmt.Printf("Highest cleared level: %d\n", best)
		}
	}
	return nil
}
