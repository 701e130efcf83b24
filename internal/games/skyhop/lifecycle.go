package skyhop

import "github.com/vovakirdan/skyhop/internal/core"

// updateObstacles moves obstacles, scores passes and exits, and reports
// whether the character hit one. A hit ends the run and stops processing
// for this tick.
//
// Two independent events can happen to an obstacle: being passed (counted
// once via Passed, feeds the cleared statistic) and leaving the screen
// (removal, adds the clear bonus). Iteration runs from the last index so
// removal does not disturb the walk.
func (g *Game) updateObstacles() bool {
	s := g.session
	player := s.Character.Box()

	for i := len(s.Obstacles) - 1; i >= 0; i-- {
		o := s.Obstacles[i]
		o.X -= o.Speed * s.Speed

		if !o.Passed && s.Character.X > o.X+o.W {
			o.Passed = true
			s.RunCleared++
			s.Score += g.cfg.Obstacles.PassPoints
			s.Profile.ObstaclesCleared++
			g.store.saveInt(KeyObstaclesCleared, s.Profile.ObstaclesCleared)
		}

		if o.X+o.W < 0 {
			s.Obstacles = append(s.Obstacles[:i], s.Obstacles[i+1:]...)
			s.Score += g.cfg.Obstacles.ClearBonus
			continue
		}

		if player.Overlaps(o.Box(), g.cfg.Collision.HazardMargin) {
			g.play(core.SoundCollision)
			g.endRun()
			return true
		}
	}
	return false
}

// updatePowerUps moves power-ups, drops those off-screen and collects
// those the character touches.
func (g *Game) updatePowerUps() {
	s := g.session
	player := s.Character.Box()

	for i := len(s.PowerUps) - 1; i >= 0; i-- {
		p := s.PowerUps[i]
		p.X -= p.Speed

		if p.X+p.W < 0 {
			s.PowerUps = append(s.PowerUps[:i], s.PowerUps[i+1:]...)
			continue
		}

		if player.Overlaps(p.Box(), -g.cfg.Collision.PickupReach) {
			s.PowerUps = append(s.PowerUps[:i], s.PowerUps[i+1:]...)
			s.RunPowerUps++
			s.Score += g.cfg.PowerUps.Bonus
			g.play(core.SoundCollect)
			g.burst(g.cfg.Particles.CollectBurst, p.X+p.W/2, p.Y+p.H/2, []core.Color{g.theme.PowerUp, g.theme.Accent}, ShapeStar)
		}
	}
}

// updateParticles advances cosmetic particles; batching is handled by the system.
func (g *Game) updateParticles() {
	if g.session.Particles != nil {
		g.session.Particles.Tick()
	}
}

// burst emits particles when effects are enabled.
func (g *Game) burst(n int, x, y float64, palette []core.Color, shape ParticleShape) {
	if !g.cfg.Particles.Enabled || g.session.Particles == nil || n <= 0 {
		return
	}
	g.session.Particles.Emit(n, x, y, palette, shape)
}
