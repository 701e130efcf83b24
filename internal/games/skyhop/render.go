package skyhop

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Visual characters for rendering
const (
	HeadChar     = '◆'
	BodyChar     = '█'
	Leg1Char     = '╱'
	Leg2Char     = '╲'
	ObstacleChar = '▓'
	PowerUpChar  = '$'
	GroundChar   = '═'
)

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.session
	t := g.theme

	groundY := core.Round(g.field.ground)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, t.Ground)

	for _, o := range s.Obstacles {
		dst.DrawRect(o.Box().Cell(), ObstacleChar, t.Obstacle)
	}
	for _, p := range s.PowerUps {
		dst.DrawRect(p.Box().Cell(), PowerUpChar, t.PowerUp)
	}

	g.drawCharacter(dst)

	for _, p := range s.Particles.Items() {
		shape := p.Shape.Rune()
		if p.Life*3 < p.MaxLife {
			shape = ShapeDot.Rune() // fade out
		}
		dst.SetWithColor(core.Round(p.X), core.Round(p.Y), shape, p.Color)
	}

	g.drawHUD(dst)

	switch s.Phase {
	case PhaseIdle:
		g.drawTitle(dst)
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  Best: %d", s.Score, s.Profile.HighScore)
		g.drawCenteredMessage(dst, "GAME OVER", sub, "R restart  T theme  Esc menu")
	}
}

// drawCharacter renders the 3-wide sprite scaled to the character box.
//
//	 ◆█
//	███
//	╱ ╲
func (g *Game) drawCharacter(dst *core.Screen) {
	c := g.session.Character
	r := c.Box().Cell()
	col := g.theme.Player

	dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-2), BodyChar, col)
	dst.SetWithColor(r.Right()-2, r.Y, HeadChar, col)
	dst.SetWithColor(r.Right()-1, r.Y, BodyChar, col)

	legs := r.Bottom() - 1
	running := g.session.Phase == PhaseRunning && !c.Jumping
	switch {
	case c.Jumping:
		dst.SetWithColor(r.X, legs, Leg1Char, col)
		dst.SetWithColor(r.X+1, legs, Leg2Char, col)
	case running && (g.session.Frame/5)%2 == 1:
		dst.SetWithColor(r.X+1, legs, Leg1Char, col)
		dst.SetWithColor(r.Right()-1, legs, Leg2Char, col)
	default:
		dst.SetWithColor(r.X, legs, Leg1Char, col)
		dst.SetWithColor(r.Right()-1, legs, Leg2Char, col)
	}
}

// drawHUD renders score, level and toggles along the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	t := g.theme

	left := fmt.Sprintf(" Score: %d  Best: %d ", s.Score, s.Profile.HighScore)
	dst.DrawTextColor(1, 0, left, t.Text)

	sound := "♪"
	if !s.Profile.SoundEnabled {
		sound = "×"
	}
	jumps := strings.Repeat("▲", g.cfg.Physics.MaxJumps-s.Character.JumpCount)
	right := fmt.Sprintf(" Lv %d  x%.1f  %s %s ", s.Level, s.Speed, jumps, sound)
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, t.Accent)
}

// drawTitle renders the start screen.
func (g *Game) drawTitle(dst *core.Screen) {
	t := g.theme
	p := g.session.Profile
	mid := dst.Height() / 3

	dst.DrawTextCentered(mid, strings.ToUpper(g.title), t.Accent)
	dst.DrawTextCentered(mid+2, "Press SPACE to start", t.Text)
	controls := "SPACE jump"
	if g.cfg.Physics.MaxJumps > 1 {
		controls = "SPACE jump (twice in the air)"
	}
	dst.DrawTextCentered(mid+4, controls+"  P pause  M sound  T theme", t.Text)
	dst.DrawTextCentered(mid+5, fmt.Sprintf("Theme: %s  Best: %d  Games: %d", t.Name, p.HighScore, p.GamesPlayed), t.Ground)
	if g.cfg.Achievements.Enabled {
		dst.DrawTextCentered(mid+6, fmt.Sprintf("Achievements: %d/%d", len(p.Achievements), len(Achievements)), t.Ground)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, g.theme.Text)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, g.theme.Accent)
	for i, l := range lines {
		dst.DrawTextColor(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l, g.theme.Text)
	}
}
