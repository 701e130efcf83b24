package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the best runs for a mode",
	Long: `Display the top runs recorded for the given mode.

Examples:
  skyhop scores skyhop
  skyhop scores classic --limit 25
  skyhop scores skyhop --recent
  skyhop scores classic --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs for this mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q; run 'skyhop list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared recorded runs for %s.\n", gameID)
		return nil
	}

	var runs []storage.RunEntry
	heading := "Best runs"
	if flagScoresRecent {
		heading = "Recent runs"
		runs, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		runs, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("%s - %s\n\n", heading, gameID)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyhop play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-5s  %-8s  %-10s  %s\n", "Rank", "Score", "Level", "Jumps", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-5s  %-8s  %-10s  %s\n", "----", "-----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-7d  %-5d  %-5d  %-8s  %-10s  %s\n",
			i+1, r.Score, r.Level, r.Jumps, r.Duration.Round(time.Second), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
