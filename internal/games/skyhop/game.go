// Package skyhop implements the jumping arcade game: a character that
// double-jumps over ground obstacles, grabs floating power-ups, speeds up
// with score and unlocks achievements. The same engine also runs the
// single-jump classic mode.
package skyhop

import (
	"fmt"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// field is the play area in world units.
type field struct {
	width  float64
	ground float64 // Y of the ground line; entities stand on it
}

// Game implements registry.Game for one mode.
type Game struct {
	mode  string
	title string
	env   core.Env
	store profileStore

	cfg     config.GameConfig
	runtime core.RuntimeConfig
	field   field

	session  *Session
	spawner  *Spawner
	theme    Theme
	themeIdx int

	justEnded bool // a run ended during the current Step
	lastRun   core.RunSummary
}

// New creates a game for mode ("skyhop" or "classic") wired to env.
func New(mode string, env core.Env) *Game {
	env = env.WithDefaults()
	title := "Skyhop"
	if mode == config.ModeClassic {
		title = "Skyhop Classic"
	}
	g := &Game{
		mode:    mode,
		title:   title,
		env:     env,
		store:   profileStore{prefs: env.Prefs, mode: mode, log: env.Log},
		session: &Session{},
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Session exposes the session context, mainly for tests and the host.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the active configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Reset loads configuration and the persisted profile and returns to the
// title screen with an empty field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadWithPreset(g.mode, g.env.ConfigPath, g.env.Difficulty)
	if err != nil {
		g.env.Log.Warn("using built-in config", "mode", g.mode, "err", err)
		cfg = config.DefaultConfig(g.mode)
	}
	g.cfg = cfg

	g.field = field{
		width:  float64(runtime.ScreenW),
		ground: float64(runtime.ScreenH - cfg.Player.GroundOffset),
	}

	s := g.session
	s.Profile = g.store.load()
	s.Particles = NewParticleSystem(cfg.Particles.Max, cfg.Particles.UpdateEvery,
		cfg.Particles.MinLife, cfg.Particles.MaxLife, cfg.Particles.Gravity, runtime.Seed+1)
	g.spawner = NewSpawner(runtime.Seed, cfg.Obstacles, cfg.PowerUps)

	themeName := s.Profile.Theme
	if g.env.Theme != "" {
		themeName = g.env.Theme
	}
	g.selectTheme(themeName)

	s.resetRun()
	s.Character = g.newCharacter()
	s.Phase = PhaseIdle
	g.justEnded = false
}

// Resize adapts the field to new screen dimensions without ending the run.
// Entities keep their horizontal position and are re-seated on the new ground.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	newGround := float64(h - g.cfg.Player.GroundOffset)
	dy := newGround - g.field.ground
	g.field = field{width: float64(w), ground: newGround}

	s := g.session
	s.Character.Y += dy
	for _, o := range s.Obstacles {
		o.Y += dy
	}
	for _, p := range s.PowerUps {
		p.Y += dy
	}
}

func (g *Game) newCharacter() Character {
	p := g.cfg.Player
	return Character{
		X: float64(p.X),
		Y: g.groundTop(),
		W: float64(p.Width),
		H: float64(p.Height),
	}
}

// groundTop is the character's Y when standing.
func (g *Game) groundTop() float64 {
	return g.field.ground - float64(g.cfg.Player.Height)
}

// selectTheme applies a theme by name, falling back to the default with a warning.
func (g *Game) selectTheme(name string) {
	if name == "" {
		name = DefaultTheme
	}
	t, idx, ok := ThemeByName(name)
	if !ok {
		g.env.Log.Warn("unknown theme, using default", "theme", name, "default", DefaultTheme)
	}
	g.theme, g.themeIdx = t, idx
}

// cycleTheme switches to the next theme and persists the choice.
func (g *Game) cycleTheme() {
	g.themeIdx = (g.themeIdx + 1) % len(Themes)
	g.theme = Themes[g.themeIdx]
	g.session.Profile.Theme = g.theme.Name
	g.store.save(KeyTheme, g.theme.Name)
}

// Theme returns the active theme.
func (g *Game) Theme() Theme {
	return g.theme
}

// Step handles this frame's input and, while running, advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.justEnded = false
	s := g.session

	if in.Has(core.ActionMute) {
		g.toggleSound()
	}

	switch s.Phase {
	case PhaseIdle:
		if in.Has(core.ActionTheme) {
			g.cycleTheme()
		}
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.start()
		}

	case PhaseRunning:
		if in.Has(core.ActionPause) {
			g.pause()
			break
		}
		if in.Has(core.ActionJump) {
			g.jump()
		}
		g.tick()

	case PhasePaused:
		if in.Has(core.ActionMenu) {
			// Leaving mid-run still counts the run
			g.endRun()
			break
		}
		if in.Has(core.ActionPause) {
			g.resume()
		}

	case PhaseGameOver:
		if in.Has(core.ActionTheme) {
			g.cycleTheme()
		}
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.start()
			break
		}
		g.updateParticles()
	}

	res := core.StepResult{State: g.State(), RunEnded: g.justEnded}
	if g.justEnded {
		res.Run = g.lastRun
	}
	return res
}

// start begins a fresh run from Idle or GameOver. Persistent stats stay.
func (g *Game) start() {
	s := g.session
	if s.Phase != PhaseIdle && s.Phase != PhaseGameOver {
		return
	}
	s.resetRun()
	s.Character = g.newCharacter()
	s.Phase = PhaseRunning
	if s.Profile.SoundEnabled {
		g.env.Sound.StartMusic()
	}
	g.env.Log.Debug("run started", "mode", g.mode)
}

func (g *Game) pause() {
	g.session.Phase = PhasePaused
	g.env.Sound.StopMusic()
}

func (g *Game) resume() {
	g.session.Phase = PhaseRunning
	if g.session.Profile.SoundEnabled {
		g.env.Sound.StartMusic()
	}
}

// toggleSound flips and persists the sound flag. Muting stops the melody.
func (g *Game) toggleSound() {
	p := &g.session.Profile
	p.SoundEnabled = !p.SoundEnabled
	g.store.save(KeySoundEnabled, fmt.Sprint(p.SoundEnabled))
	if !p.SoundEnabled {
		g.env.Sound.StopMusic()
	} else if g.session.Phase == PhaseRunning {
		g.env.Sound.StartMusic()
	}
}

// play forwards a sound when sound is enabled.
func (g *Game) play(ev core.SoundEvent) {
	if g.session.Profile.SoundEnabled {
		g.env.Sound.Play(ev)
	}
}

// jump tries a jump; rejected jumps have no side effects.
func (g *Game) jump() bool {
	s := g.session
	if !tryJump(&s.Character, g.cfg.Physics) {
		return false
	}
	s.RunJumps++
	s.Profile.TotalJumps++
	g.store.saveInt(KeyTotalJumps, s.Profile.TotalJumps)
	g.play(core.SoundJump)
	c := s.Character
	g.burst(g.cfg.Particles.JumpBurst, c.X+c.W/2, c.Y+c.H, []core.Color{g.theme.Ground, g.theme.Player}, ShapeDot)
	return true
}

// tick advances the running simulation by one step.
func (g *Game) tick() {
	s := g.session
	s.Frame++

	g.spawner.Update(s, g.field)
	integrate(&s.Character, g.cfg.Physics, g.groundTop())
	if g.updateObstacles() {
		return
	}
	g.updatePowerUps()
	g.updateParticles()
	g.updateDifficulty()

	if g.cfg.Achievements.Enabled && s.Frame%g.cfg.Achievements.CheckEvery == 0 {
		g.checkAchievements()
	}
}

// updateDifficulty recomputes level and speed from score.
func (g *Game) updateDifficulty() {
	s := g.session
	level := g.cfg.Difficulty.Level(s.Score)
	if level > s.Level {
		g.env.Log.Debug("level up", "mode", g.mode, "level", level)
	}
	s.Level = level
	s.Speed = g.cfg.Difficulty.Speed(s.Score)
}

// endRun moves to GameOver and does the once-per-run bookkeeping.
// Calling it again for the same run has no further effect.
func (g *Game) endRun() {
	s := g.session
	if s.runEnded {
		return
	}
	s.runEnded = true
	s.Phase = PhaseGameOver
	g.justEnded = true
	g.env.Sound.StopMusic()

	// A collision can land before difficulty is refreshed for this tick
	s.Level = g.cfg.Difficulty.Level(s.Score)

	s.Profile.GamesPlayed++
	g.store.saveInt(KeyGamesPlayed, s.Profile.GamesPlayed)

	if s.Score > s.Profile.HighScore {
		previous := s.Profile.HighScore
		s.Profile.HighScore = s.Score
		g.store.saveInt(KeyHighScore, s.Score)
		g.burst(g.cfg.Particles.HighScoreBurst, g.field.width/2, g.field.ground/2, g.theme.Particles, ShapeStar)
		if previous > 0 {
			g.env.Notifier.Notify(core.Notification{
				Kind:  core.NotifyHighScore,
				Title: "New high score!",
				Body:  fmt.Sprintf("%d points (was %d)", s.Score, previous),
			})
		}
	}

	if g.cfg.Achievements.Enabled {
		g.checkAchievements()
	}

	g.lastRun = core.RunSummary{
		Score:             s.Score,
		Level:             s.Level,
		Jumps:             s.RunJumps,
		ObstaclesCleared:  s.RunCleared,
		PowerUpsCollected: s.RunPowerUps,
		Ticks:             s.Frame,
	}
	g.env.Log.Debug("run ended", "mode", g.mode, "score", s.Score, "games", s.Profile.GamesPlayed)
}

// snapshot captures the values achievements are judged on.
func (g *Game) snapshot() Snapshot {
	s := g.session
	return Snapshot{
		Score:            s.Score,
		Level:            s.Level,
		RunPowerUps:      s.RunPowerUps,
		TotalJumps:       s.Profile.TotalJumps,
		ObstaclesCleared: s.Profile.ObstaclesCleared,
		GamesPlayed:      s.Profile.GamesPlayed,
	}
}

// checkAchievements unlocks newly earned achievements, each exactly once.
func (g *Game) checkAchievements() {
	s := g.session
	fresh := Evaluate(Achievements, g.snapshot(), s.Profile.Unlocked)
	if len(fresh) == 0 {
		return
	}
	for _, a := range fresh {
		s.Profile.Achievements = append(s.Profile.Achievements, a.ID)
		g.env.Notifier.Notify(core.Notification{
			Kind:  core.NotifyAchievement,
			Title: a.Icon + " " + a.Name,
			Body:  a.Description,
		})
		g.play(core.SoundAchievement)
		g.burst(g.cfg.Particles.AchievementBurst, g.field.width/2, 3, g.theme.Particles, ShapeSpark)
		g.env.Log.Info("achievement unlocked", "mode", g.mode, "id", a.ID)
	}
	g.store.saveAchievements(s.Profile.Achievements)
}

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:     s.Score,
		HighScore: s.Profile.HighScore,
		Level:     s.Level,
		Started:   s.Phase != PhaseIdle,
		GameOver:  s.Phase == PhaseGameOver,
		Paused:    s.Phase == PhasePaused,
	}
}

func init() {
	registry.Register(config.ModeSkyhop, func(env core.Env) registry.Game {
		return New(config.ModeSkyhop, env)
	})
	registry.Register(config.ModeClassic, func(env core.Env) registry.Game {
		return New(config.ModeClassic, env)
	})
}
