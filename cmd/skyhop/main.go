// skyhop is a terminal jumping game: hop over obstacles, grab power-ups and
// chase achievements.
//
// Usage:
//
//	skyhop play [mode]       - Play a mode (default: skyhop)
//	skyhop menu              - Pick modes interactively
//	skyhop list              - List available modes
//	skyhop scores <mode>     - Show the best runs for a mode
//	skyhop stats [mode]      - Show run statistics and profile progress
//	skyhop themes            - List color themes
//	skyhop serve             - Start SSH server for remote play
//	skyhop api               - Serve run statistics over HTTP
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Database path (default: ~/.skyhop/skyhop.db)
//	--prefs-file <path>   - Keep preferences in an INI file instead of the database
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--theme <name>        - Color theme for this session
//	--mute, --volume      - Sound control
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/skyhop/internal/games/skyhop"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagPrefsFile  string
	flagLogFile    string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagMute       bool
	flagVolume     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - a jumping arcade game for your terminal",
	Long: `Skyhop is a terminal arcade game. Double-jump over obstacles, collect
power-ups, level up as the speed ramps and unlock achievements.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  scores   - View the best runs
  stats    - View statistics and achievements
  themes   - List color themes
  serve    - Start SSH server for remote play
  api      - Serve statistics over HTTP

Examples:
  skyhop play
  skyhop play classic --difficulty hard
  skyhop menu --theme neon
  skyhop serve --ssh :2222
  skyhop scores skyhop`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.skyhop/skyhop.db", "Path to the database")
	pf.StringVar(&flagPrefsFile, "prefs-file", "", "Store preferences in this INI file instead of the database")
	pf.StringVar(&flagLogFile, "log-file", "~/.skyhop/skyhop.log", "Log file used while the game owns the terminal")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagTheme, "theme", "", "Color theme (see 'skyhop themes')")
	pf.BoolVar(&flagMute, "mute", false, "Disable audio output")
	pf.Float64Var(&flagVolume, "volume", 0.5, "Effects volume, 0 to 1")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}
