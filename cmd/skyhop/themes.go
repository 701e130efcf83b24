package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List color themes",
	Long: `List the available color themes with a preview.
Select one with --theme, or press T on the title screen.`,
	Run: runThemes,
}

// themeAttrs approximates game colors with basic terminal attributes.
var themeAttrs = map[core.Color]color.Attribute{
	core.ColorRed:           color.FgRed,
	core.ColorGreen:         color.FgGreen,
	core.ColorYellow:        color.FgYellow,
	core.ColorBlue:          color.FgBlue,
	core.ColorMagenta:       color.FgMagenta,
	core.ColorCyan:          color.FgCyan,
	core.ColorWhite:         color.FgWhite,
	core.ColorBrightRed:     color.FgHiRed,
	core.ColorBrightGreen:   color.FgHiGreen,
	core.ColorBrightYellow:  color.FgHiYellow,
	core.ColorBrightBlue:    color.FgHiBlue,
	core.ColorBrightMagenta: color.FgHiMagenta,
	core.ColorBrightCyan:    color.FgHiCyan,
	core.ColorBrightWhite:   color.FgHiWhite,
	core.ColorOrange:        color.FgYellow,
	core.ColorGray:          color.FgHiBlack,
	core.ColorPink:          color.FgHiMagenta,
	core.ColorGold:          color.FgHiYellow,
}

func swatch(c core.Color, s string) string {
	attr, ok := themeAttrs[c]
	if !ok {
		return s
	}
	return color.New(attr).Sprint(s)
}

func runThemes(_ *cobra.Command, _ []string) {
	for _, t := range skyhop.Themes {
		name := t.Name
		if name == skyhop.DefaultTheme {
			name += " (default)"
		}
		fmt.Printf("  %-18s %s %s %s %s  %s\n", name,
			swatch(t.Player, string(skyhop.HeadChar)),
			swatch(t.Obstacle, string(skyhop.ObstacleChar)),
			swatch(t.PowerUp, string(skyhop.PowerUpChar)),
			swatch(t.Ground, string([]rune{skyhop.GroundChar, skyhop.GroundChar, skyhop.GroundChar})),
			swatch(t.Accent, "SCORE"),
		)
	}
}
