package skyhop

import (
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
)

// Spawner creates obstacles and power-ups at the right edge of the field.
// Obstacle timing scales with the speed multiplier; power-ups use a fixed
// tick modulus plus a chance draw. Caps skip a spawn but never the timer.
type Spawner struct {
	rng       *rand.Rand
	obstacles config.ObstacleConfig
	powerUps  config.PowerUpConfig
	counter   int // ticks since the last obstacle slot
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64, obstacles config.ObstacleConfig, powerUps config.PowerUpConfig) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		obstacles: obstacles,
		powerUps:  powerUps,
	}
}

// Interval returns the obstacle spawn threshold in ticks for a speed multiplier.
func (s *Spawner) Interval(speed float64) int {
	if speed <= 0 {
		speed = 1
	}
	interval := int(float64(s.obstacles.SpawnInterval) / speed)
	if interval < 1 {
		interval = 1
	}
	return interval
}

// Update runs one tick of both spawn timers against the session's field.
func (s *Spawner) Update(sess *Session, w field) {
	s.counter++
	if s.counter >= s.Interval(sess.Speed) {
		s.counter = 0
		if len(sess.Obstacles) < s.obstacles.MaxCount {
			sess.Obstacles = append(sess.Obstacles, s.newObstacle(w))
		}
	}

	if !s.powerUps.Enabled || s.powerUps.SpawnEvery <= 0 || sess.Frame%s.powerUps.SpawnEvery != 0 {
		return
	}
	// Draw before the cap check so the random sequence does not depend on it
	if s.rng.Float64() >= s.powerUps.Chance {
		return
	}
	lift := s.between(s.powerUps.MinLift, s.powerUps.MaxLift)
	if len(sess.PowerUps) < s.powerUps.MaxCount {
		sess.PowerUps = append(sess.PowerUps, s.newPowerUp(w, lift))
	}
}

func (s *Spawner) newObstacle(w field) *Obstacle {
	width := float64(s.between(s.obstacles.MinWidth, s.obstacles.MaxWidth))
	height := float64(s.between(s.obstacles.MinHeight, s.obstacles.MaxHeight))
	return &Obstacle{
		X:     w.width,
		Y:     w.ground - height,
		W:     width,
		H:     height,
		Speed: s.obstacles.BaseSpeed,
	}
}

func (s *Spawner) newPowerUp(w field, lift int) *PowerUp {
	size := float64(s.powerUps.Size)
	return &PowerUp{
		X:     w.width,
		Y:     w.ground - float64(lift) - size,
		W:     size,
		H:     size,
		Speed: s.powerUps.Speed,
		Kind:  PowerUpScore,
	}
}

// between returns a random int in [lo, hi].
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
