package skyhop

import (
	"encoding/json"
	"strconv"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Phase is the state machine's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Preference key names. Stored keys are "<mode>.<name>".
const (
	KeyHighScore        = "highScore"
	KeyTheme            = "theme"
	KeySoundEnabled     = "soundEnabled"
	KeyTotalJumps       = "totalJumps"
	KeyObstaclesCleared = "obstaclesCleared"
	KeyGamesPlayed      = "gamesPlayed"
	KeyAchievements     = "achievements"
)

// Profile holds everything that survives a run.
type Profile struct {
	HighScore        int
	Theme            string
	SoundEnabled     bool
	TotalJumps       int
	ObstaclesCleared int
	GamesPlayed      int
	Achievements     []string // unlock order
}

// Unlocked reports whether an achievement id is unlocked.
func (p Profile) Unlocked(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Session is the mutable context of one game: the current run plus the
// persistent profile. Components receive it explicitly.
type Session struct {
	Phase Phase
	Score int
	Level int
	Speed float64
	Frame int // ticks since the run started

	Character Character
	Obstacles []*Obstacle
	PowerUps  []*PowerUp
	Particles *ParticleSystem

	RunJumps    int
	RunCleared  int
	RunPowerUps int // power-ups collected this run

	runEnded bool // game-over bookkeeping done for this run

	Profile Profile
}

// resetRun clears per-run state and keeps the profile.
func (s *Session) resetRun() {
	s.Score = 0
	s.Level = 1
	s.Speed = 1
	s.Frame = 0
	s.Obstacles = s.Obstacles[:0]
	s.PowerUps = s.PowerUps[:0]
	if s.Particles != nil {
		s.Particles.Clear()
	}
	s.RunJumps = 0
	s.RunCleared = 0
	s.RunPowerUps = 0
	s.runEnded = false
}

// profileStore reads and writes a mode's profile through a PrefStore.
// Writes are fire-and-forget: failures are logged and otherwise ignored.
type profileStore struct {
	prefs core.PrefStore
	mode  string
	log   core.Logger
}

func (ps profileStore) key(name string) string {
	return ps.mode + "." + name
}

func (ps profileStore) load() Profile {
	p := Profile{
		HighScore:        ps.loadInt(KeyHighScore),
		TotalJumps:       ps.loadInt(KeyTotalJumps),
		ObstaclesCleared: ps.loadInt(KeyObstaclesCleared),
		GamesPlayed:      ps.loadInt(KeyGamesPlayed),
		SoundEnabled:     true,
	}
	if v, ok := ps.prefs.Load(ps.key(KeyTheme)); ok {
		p.Theme = v
	}
	if v, ok := ps.prefs.Load(ps.key(KeySoundEnabled)); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.SoundEnabled = b
		}
	}
	if v, ok := ps.prefs.Load(ps.key(KeyAchievements)); ok && v != "" {
		if err := json.Unmarshal([]byte(v), &p.Achievements); err != nil {
			ps.log.Warn("ignoring corrupt achievements", "mode", ps.mode, "err", err)
			p.Achievements = nil
		}
	}
	return p
}

func (ps profileStore) loadInt(name string) int {
	v, ok := ps.prefs.Load(ps.key(name))
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		ps.log.Warn("ignoring corrupt preference", "key", ps.key(name), "value", v)
		return 0
	}
	return n
}

func (ps profileStore) save(name, value string) {
	if err := ps.prefs.Save(ps.key(name), value); err != nil {
		ps.log.Warn("preference not saved", "key", ps.key(name), "err", err)
	}
}

func (ps profileStore) saveInt(name string, v int) {
	ps.save(name, strconv.Itoa(v))
}

func (ps profileStore) saveAchievements(ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		ps.log.Warn("achievements not encoded", "err", err)
		return
	}
	ps.save(KeyAchievements, string(data))
}

// LoadProfile reads a mode's persisted profile from prefs.
func LoadProfile(prefs core.PrefStore, mode string) Profile {
	return profileStore{prefs: prefs, mode: mode, log: core.NopLogger{}}.load()
}
