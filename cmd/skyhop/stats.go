package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var flagStatsPlayer string

var (
	colorTitle  = color.New(color.FgHiCyan, color.Bold)
	colorLabel  = color.New(color.FgHiBlack)
	colorValue  = color.New(color.FgHiWhite)
	colorLocked = color.New(color.FgHiBlack)
	colorDone   = color.New(color.FgYellow)
)

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show statistics and achievements",
	Long: `Show aggregated run statistics and profile progress for one mode,
or for every mode when none is given.

Examples:
  skyhop stats
  skyhop stats classic
  skyhop stats --player alice   # profile of an SSH player`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsPlayer, "player", "", "SSH user whose profile to show")
}

func runStats(_ *cobra.Command, args []string) error {
	modes := registry.List()
	if len(args) > 0 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown mode %q; run 'skyhop list' to see available modes", args[0])
		}
		modes = []registry.GameInfo{{ID: args[0], Title: args[0]}}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	var prefs core.PrefStore = store
	if flagPrefsFile != "" {
		ini, err := storage.OpenINI(flagPrefsFile)
		if err != nil {
			return err
		}
		prefs = ini
	}
	if flagStatsPlayer != "" {
		prefs = core.PrefixPrefs{Prefix: flagStatsPlayer + "/", Store: prefs}
	}

	for i, m := range modes {
		if i > 0 {
			fmt.Println()
		}
		st, err := store.GetModeStats(m.ID)
		if err != nil {
			return fmt.Errorf("stats for %s: %w", m.ID, err)
		}
		printStats(m.ID, st, skyhop.LoadProfile(prefs, m.ID))
	}
	return nil
}

func printStats(mode string, st *storage.ModeStats, p skyhop.Profile) {
	colorTitle.Printf("== %s ==\n", mode)

	row := func(label string, value any) {
		colorLabel.Printf("  %-18s", label)
		colorValue.Println(value)
	}
	row("Runs", st.RunsCount)
	row("Best run", st.HighScore)
	row("Profile high score", p.HighScore)
	row("Average score", fmt.Sprintf("%.1f", st.AvgScore))
	row("Games played", p.GamesPlayed)
	row("Total jumps", p.TotalJumps)
	row("Obstacles cleared", p.ObstaclesCleared)
	row("Time played", st.TotalTime.Round(time.Second))
	if !st.LastPlayed.IsZero() {
		row("Last played", st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	colorLabel.Printf("  Achievements %d/%d\n", len(p.Achievements), len(skyhop.Achievements))
	for _, a := range skyhop.Achievements {
		if p.Unlocked(a.ID) {
			colorDone.Printf("    %s %-16s", a.Icon, a.Name)
			fmt.Println(a.Description)
		} else {
			colorLocked.Printf("    -  %-16s%s\n", a.Name, a.Description)
		}
	}
}
