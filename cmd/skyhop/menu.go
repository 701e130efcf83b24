package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to choose the difficulty and
Enter to play. Leaving a game (Esc when paused or over) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Difficulty
  Enter/Space  - Play
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  skyhop menu
  skyhop menu --fps 30
  skyhop menu --db ./skyhop.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkFlags(); err != nil {
		return err
	}

	s := newSession()
	defer s.close()

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(s.scores(), cfg, difficulty)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(s.board(), s.prefs, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		toasts := tui.NewToasts()
		game, err := registry.Create(menuResult.GameID, s.env(toasts, difficulty))
		if err != nil {
			s.log.Error("cannot create game", "mode", menuResult.GameID, "err", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, tui.Options{
			Runtime: cfg,
			Runs:    s.runs(),
			Toasts:  toasts,
			Log:     s.log,
		})
		s.sound.StopMusic()
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !result.BackToMenu {
			return nil
		}
		cfg = result.Runtime
	}
}
