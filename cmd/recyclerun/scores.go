package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/recycle-run/internal/registry"
	"github.com/vovakirdan/recycle-run/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for the given mode (default: recycle), with the
level reached, whether the campaign was won and a summary of all runs.

Examples:
  recyclerun scores
  recyclerun scores recycle_endless --limit 20
  recyclerun scores --recent
  recyclerun scores recycle --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest runs instead of the best")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "recycle"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'recyclerun list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", title)
		return nil
	}

	list, heading := store.TopRuns, "Best Runs"
	if flagScoresRecent {
		list, heading = store.RecentRuns, "Recent Runs"
	}
	runs, err := list(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "%s - %s\n", heading, title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'recyclerun play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-8s  %-16s  %s\n", "Rank", "Score", "Level", "Result", "Time", "Date", "Seed")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-8s  %-16s  %s\n", "----", "-----", "-----", "------", "----", "----", "----")

	for i, r := range runs {
		result := "-"
		if r.Won {
			result = "Won"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-6s  %-8s  %-16s  %d\n",
			i+1, r.Score, r.Level, result, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"), r.Seed)
	}

	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Wins: %d  Best: %d  Best level: %d  Average: %.0f\n",
			stats.Runs, stats.Wins, stats.HighScore, stats.BestLevel, stats.AvgScore)
	}
	return nil
}
