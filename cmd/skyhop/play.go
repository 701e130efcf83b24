package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (skyhop if omitted).

Controls:
  Space/Up/W - Jump (twice in the air in skyhop mode), start
  Enter      - Start / restart
  P          - Pause and resume
  R          - Restart after game over
  M          - Toggle sound
  T          - Cycle color theme (title and game over screens)
  F          - Toggle fullscreen
  Esc/B      - Pause, or leave when paused or over
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Gentler speed ramp, wider gaps around obstacles
  normal - Default ramp
  hard   - Faster ramp, more obstacles, tighter hitboxes
  fixed  - No speed ramp

Examples:
  skyhop play
  skyhop play classic
  skyhop play --difficulty hard --theme neon
  skyhop play --config ./my-skyhop.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := config.ModeSkyhop
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q; run 'skyhop list' to see available modes", gameID)
	}
	if err := checkFlags(); err != nil {
		return err
	}

	s := newSession()
	defer s.close()

	toasts := tui.NewToasts()
	game, err := registry.Create(gameID, s.env(toasts, flagDifficulty))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	s.log.Info("starting", "mode", gameID, "difficulty", flagDifficulty)
	_, err = tui.Run(game, tui.Options{
		Runtime: runtimeConfig(),
		Runs:    s.runs(),
		Toasts:  toasts,
		Log:     s.log,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
