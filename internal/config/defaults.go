package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyhopYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// Mode identifiers with their own configuration file.
const (
	ModeSkyhop  = "skyhop"
	ModeClassic = "classic"
)

// DefaultSkyhopConfig returns the hard-coded arcade mode configuration.
func DefaultSkyhopConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:      0.3,
			JumpImpulse:  -2.5,
			MaxFallSpeed: 4.0,
			MaxJumps:     2,
		},
		Player: PlayerConfig{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Obstacles: ObstacleConfig{
			MinWidth:      1,
			MaxWidth:      3,
			MinHeight:     2,
			MaxHeight:     4,
			BaseSpeed:     0.5,
			SpawnInterval: 90,
			MaxCount:      5,
			ClearBonus:    10,
		},
		PowerUps: PowerUpConfig{
			Enabled:    true,
			SpawnEvery: 240,
			Chance:     0.35,
			MaxCount:   2,
			Size:       1,
			MinLift:    3,
			MaxLift:    7,
			Speed:      0.5,
			Bonus:      50,
		},
		Particles: ParticleConfig{
			Enabled:          true,
			Max:              150,
			UpdateEvery:      1,
			Gravity:          0.05,
			MinLife:          20,
			MaxLife:          40,
			JumpBurst:        5,
			CollectBurst:     10,
			AchievementBurst: 20,
			HighScoreBurst:   30,
		},
		Collision: CollisionConfig{
			HazardMargin: 0.3,
			PickupReach:  0.5,
		},
		Difficulty: curveForPreset(DifficultyNormal),
		Achievements: AchievementConfig{
			Enabled:    true,
			CheckEvery: 30,
		},
	}
}

// DefaultClassicConfig returns the hard-coded prototype configuration:
// single jump, fixed pace, one point per cleared obstacle.
func DefaultClassicConfig() GameConfig {
	cfg := DefaultSkyhopConfig()
	cfg.Physics.MaxJumps = 1
	cfg.Obstacles.MinWidth, cfg.Obstacles.MaxWidth = 2, 2
	cfg.Obstacles.MinHeight, cfg.Obstacles.MaxHeight = 3, 3
	cfg.Obstacles.SpawnInterval = 120
	cfg.Obstacles.ClearBonus = 0
	cfg.Obstacles.PassPoints = 1
	cfg.PowerUps = PowerUpConfig{}
	cfg.Particles = ParticleConfig{}
	cfg.Collision = CollisionConfig{}
	cfg.Difficulty = curveForPreset(DifficultyFixed)
	cfg.Achievements = AchievementConfig{}
	return cfg
}

// DefaultConfig returns the hard-coded configuration for a mode.
func DefaultConfig(mode string) GameConfig {
	if mode == ModeClassic {
		return DefaultClassicConfig()
	}
	return DefaultSkyhopConfig()
}

// GetDefaultYAML returns the embedded default YAML for a mode.
func GetDefaultYAML(mode string) []byte {
	switch mode {
	case ModeSkyhop:
		return defaultSkyhopYAML
	case ModeClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
