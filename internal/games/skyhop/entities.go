package skyhop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Character is the player. Y is the top edge in screen rows; velocity is
// rows per tick, negative is upward.
type Character struct {
	X, Y      float64
	W, H      float64
	VelocityY float64
	JumpCount int
	Jumping   bool
}

// Box returns the character's bounding box.
func (c Character) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

// Obstacle is a ground hazard moving left.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Passed bool // set once the character has cleared it
}

// Box returns the obstacle's bounding box.
func (o *Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// PowerUpKind identifies what a power-up grants.
type PowerUpKind int

const (
	PowerUpScore PowerUpKind = iota // flat score bonus
)

// PowerUp is a floating pickup moving left.
type PowerUp struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Kind  PowerUpKind
}

// Box returns the power-up's bounding box.
func (p *PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// ParticleShape selects the glyph a particle is drawn with.
type ParticleShape int

const (
	ShapeDot ParticleShape = iota
	ShapeStar
	ShapeSpark
)

// Rune returns the glyph for a shape.
func (s ParticleShape) Rune() rune {
	switch s {
	case ShapeStar:
		return '*'
	case ShapeSpark:
		return '+'
	default:
		return '·'
	}
}

// Particle is a short-lived cosmetic effect.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.Color
	Shape   ParticleShape
}

// ParticleSystem owns all particles and caps their population.
// Updates may be batched every N ticks; a batch of N runs N unit steps,
// so the result only differs from per-tick updates in how often it is drawn.
type ParticleSystem struct {
	items       []Particle
	max         int
	updateEvery int
	pending     int
	gravity     float64
	minLife     int
	maxLife     int
	rng         *rand.Rand
}

// NewParticleSystem creates a particle system with its own RNG so that
// cosmetic effects never shift gameplay randomness.
func NewParticleSystem(max, updateEvery, minLife, maxLife int, gravity float64, seed int64) *ParticleSystem {
	if updateEvery < 1 {
		updateEvery = 1
	}
	if max < 0 {
		max = 0
	}
	return &ParticleSystem{
		items:       make([]Particle, 0, max),
		max:         max,
		updateEvery: updateEvery,
		gravity:     gravity,
		minLife:     minLife,
		maxLife:     maxLife,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Emit spawns up to n particles radiating from (x, y).
// Particles beyond the population cap are dropped.
func (ps *ParticleSystem) Emit(n int, x, y float64, palette []core.Color, shape ParticleShape) int {
	if len(palette) == 0 {
		palette = []core.Color{core.ColorWhite}
	}
	added := 0
	for i := 0; i < n && len(ps.items) < ps.max; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 0.2 + ps.rng.Float64()*0.6
		life := ps.minLife
		if ps.maxLife > ps.minLife {
			life += ps.rng.Intn(ps.maxLife - ps.minLife + 1)
		}
		ps.items = append(ps.items, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed*0.5 - 0.2, // terminal cells are tall
			Life:    life,
			MaxLife: life,
			Color:   palette[ps.rng.Intn(len(palette))],
			Shape:   shape,
		})
		added++
	}
	return added
}

// Tick counts one simulation tick and advances particles when a batch is due.
func (ps *ParticleSystem) Tick() {
	ps.pending++
	if ps.pending < ps.updateEvery {
		return
	}
	ps.advance(ps.pending)
	ps.pending = 0
}

// advance runs n unit steps and drops expired particles.
func (ps *ParticleSystem) advance(n int) {
	alive := ps.items[:0]
	for _, p := range ps.items {
		for i := 0; i < n && p.Life > 0; i++ {
			p.X += p.VX
			p.Y += p.VY
			p.VY += ps.gravity
			p.Life--
		}
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

// Items returns the live particles.
func (ps *ParticleSystem) Items() []Particle {
	return ps.items
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
	ps.pending = 0
}
