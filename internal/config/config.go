// Package config provides YAML-based game configuration loading and
// difficulty management for skyhop's game modes.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tunables for one game mode.
// World units are screen cells; speeds and velocities are cells per tick.
type GameConfig struct {
	Physics      PhysicsConfig     `yaml:"physics"`
	Player       PlayerConfig      `yaml:"player"`
	Obstacles    ObstacleConfig    `yaml:"obstacles"`
	PowerUps     PowerUpConfig     `yaml:"powerups"`
	Particles    ParticleConfig    `yaml:"particles"`
	Collision    CollisionConfig   `yaml:"collision"`
	Difficulty   DifficultyCurve   `yaml:"difficulty"`
	Achievements AchievementConfig `yaml:"achievements"`
}

// PhysicsConfig defines the character integrator.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`   // negative is upward
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity
	MaxJumps     int     `yaml:"max_jumps"`      // 2 allows a double jump
}

// PlayerConfig defines the character's size and placement.
type PlayerConfig struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"` // rows below the ground line
}

// ObstacleConfig defines obstacle spawning, movement and scoring.
type ObstacleConfig struct {
	MinWidth      int     `yaml:"min_width"`
	MaxWidth      int     `yaml:"max_width"`
	MinHeight     int     `yaml:"min_height"`
	MaxHeight     int     `yaml:"max_height"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // ticks at speed 1.0
	MaxCount      int     `yaml:"max_count"`
	ClearBonus    int     `yaml:"clear_bonus"` // awarded when an obstacle leaves the screen
	PassPoints    int     `yaml:"pass_points"` // awarded when the character clears it
}

// PowerUpConfig defines power-up spawning and collection.
type PowerUpConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SpawnEvery int     `yaml:"spawn_every"` // tick modulus
	Chance     float64 `yaml:"chance"`      // 0..1 draw per spawn slot
	MaxCount   int     `yaml:"max_count"`
	Size       int     `yaml:"size"`
	MinLift    int     `yaml:"min_lift"` // rows above the ground
	MaxLift    int     `yaml:"max_lift"`
	Speed      float64 `yaml:"speed"`
	Bonus      int     `yaml:"bonus"`
}

// ParticleConfig defines the cosmetic particle system.
type ParticleConfig struct {
	Enabled          bool    `yaml:"enabled"`
	Max              int     `yaml:"max"`
	UpdateEvery      int     `yaml:"update_every"` // smoothness knob, no gameplay effect
	Gravity          float64 `yaml:"gravity"`
	MinLife          int     `yaml:"min_life"`
	MaxLife          int     `yaml:"max_life"`
	JumpBurst        int     `yaml:"jump_burst"`
	CollectBurst     int     `yaml:"collect_burst"`
	AchievementBurst int     `yaml:"achievement_burst"`
	HighScoreBurst   int     `yaml:"highscore_burst"`
}

// CollisionConfig defines bounding-box margins.
type CollisionConfig struct {
	HazardMargin float64 `yaml:"hazard_margin"` // shrinks the player box against obstacles
	PickupReach  float64 `yaml:"pickup_reach"`  // grows the player box against power-ups
}

// AchievementConfig controls achievement evaluation.
type AchievementConfig struct {
	Enabled    bool `yaml:"enabled"`
	CheckEvery int  `yaml:"check_every"` // ticks between checks while running
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a name into a preset. An empty name yields normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports settings that would break the simulation.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.MaxJumps >= 1, "physics.max_jumps must be at least 1, got %d", c.Physics.MaxJumps)
	check(c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Obstacles.MinWidth > 0 && c.Obstacles.MinWidth <= c.Obstacles.MaxWidth,
		"obstacles width range [%d, %d] is invalid", c.Obstacles.MinWidth, c.Obstacles.MaxWidth)
	check(c.Obstacles.MinHeight > 0 && c.Obstacles.MinHeight <= c.Obstacles.MaxHeight,
		"obstacles height range [%d, %d] is invalid", c.Obstacles.MinHeight, c.Obstacles.MaxHeight)
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive")
	check(c.Obstacles.MaxCount > 0, "obstacles.max_count must be positive")
	check(c.Obstacles.ClearBonus >= 0 && c.Obstacles.PassPoints >= 0, "obstacle scores must not be negative")
	if c.PowerUps.Enabled {
		check(c.PowerUps.SpawnEvery > 0, "powerups.spawn_every must be positive")
		check(c.PowerUps.Chance >= 0 && c.PowerUps.Chance <= 1, "powerups.chance must be within [0, 1]")
		check(c.PowerUps.Size > 0, "powerups.size must be positive")
		check(c.PowerUps.MinLift <= c.PowerUps.MaxLift, "powerups lift range is invalid")
		check(c.PowerUps.Bonus >= 0, "powerups.bonus must not be negative")
	}
	check(c.Particles.Max >= 0, "particles.max must not be negative, got %d", c.Particles.Max)
	if c.Particles.Enabled {
		check(c.Particles.UpdateEvery >= 1, "particles.update_every must be at least 1")
		check(c.Particles.MinLife > 0 && c.Particles.MinLife <= c.Particles.MaxLife, "particles life range is invalid")
	}
	check(c.Difficulty.LevelThreshold > 0, "difficulty.level_threshold must be positive")
	check(c.Difficulty.SpeedCap >= 1, "difficulty.speed_cap must be at least 1")
	if c.Achievements.Enabled {
		check(c.Achievements.CheckEvery >= 1, "achievements.check_every must be at least 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
