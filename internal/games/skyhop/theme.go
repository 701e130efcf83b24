package skyhop

import "github.com/vovakirdan/skyhop/internal/core"

// Theme maps each entity kind to a terminal color.
type Theme struct {
	Name      string
	Player    core.Color
	Obstacle  core.Color
	PowerUp   core.Color
	Ground    core.Color
	Text      core.Color
	Accent    core.Color
	Particles []core.Color
}

// DefaultTheme is used when no theme, or an unknown one, is selected.
const DefaultTheme = "classic"

// Themes lists the available themes in cycling order.
var Themes = []Theme{
	{
		Name:      "classic",
		Player:    core.ColorBrightGreen,
		Obstacle:  core.ColorRed,
		PowerUp:   core.ColorGold,
		Ground:    core.ColorGray,
		Text:      core.ColorWhite,
		Accent:    core.ColorBrightYellow,
		Particles: []core.Color{core.ColorYellow, core.ColorOrange, core.ColorWhite},
	},
	{
		Name:      "neon",
		Player:    core.ColorBrightCyan,
		Obstacle:  core.ColorBrightMagenta,
		PowerUp:   core.ColorBrightYellow,
		Ground:    core.ColorMagenta,
		Text:      core.ColorBrightWhite,
		Accent:    core.ColorPink,
		Particles: []core.Color{core.ColorBrightCyan, core.ColorBrightMagenta, core.ColorPink},
	},
	{
		Name:      "forest",
		Player:    core.ColorBrightYellow,
		Obstacle:  core.ColorGreen,
		PowerUp:   core.ColorOrange,
		Ground:    core.ColorGreen,
		Text:      core.ColorBrightGreen,
		Accent:    core.ColorYellow,
		Particles: []core.Color{core.ColorGreen, core.ColorBrightGreen, core.ColorYellow},
	},
	{
		Name:      "sunset",
		Player:    core.ColorBrightWhite,
		Obstacle:  core.ColorMagenta,
		PowerUp:   core.ColorBrightYellow,
		Ground:    core.ColorOrange,
		Text:      core.ColorOrange,
		Accent:    core.ColorBrightRed,
		Particles: []core.Color{core.ColorOrange, core.ColorRed, core.ColorPink},
	},
	{
		Name:      "mono",
		Player:    core.ColorBrightWhite,
		Obstacle:  core.ColorWhite,
		PowerUp:   core.ColorBrightWhite,
		Ground:    core.ColorGray,
		Text:      core.ColorWhite,
		Accent:    core.ColorBrightWhite,
		Particles: []core.Color{core.ColorGray, core.ColorWhite},
	},
}

// ThemeByName returns the named theme and its index.
func ThemeByName(name string) (Theme, int, bool) {
	for i, t := range Themes {
		if t.Name == name {
			return t, i, true
		}
	}
	return Themes[0], 0, false
}

// ThemeNames returns the theme names in cycling order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
