package config

import "math"

// DifficultyCurve derives level and speed multiplier from score.
// It holds no run state, so both results are pure functions of the score.
type DifficultyCurve struct {
	Enabled        bool    `yaml:"enabled"`
	LevelThreshold int     `yaml:"level_threshold"` // points per level
	SpeedIncrement float64 `yaml:"speed_increment"` // added per level above 1
	SpeedCap       float64 `yaml:"speed_cap"`
}

// Level returns floor(score / threshold) + 1.
func (d DifficultyCurve) Level(score int) int {
	if d.LevelThreshold <= 0 || score < 0 {
		return 1
	}
	return score/d.LevelThreshold + 1
}

// Speed returns min(1 + (level-1) * increment, cap), or 1 when disabled.
func (d DifficultyCurve) Speed(score int) float64 {
	if !d.Enabled {
		return 1.0
	}
	speed := 1.0 + float64(d.Level(score)-1)*d.SpeedIncrement
	if d.SpeedCap > 0 {
		speed = math.Min(speed, d.SpeedCap)
	}
	return speed
}

// curveForPreset returns the curve a preset selects.
func curveForPreset(preset DifficultyPreset) DifficultyCurve {
	switch preset {
	case DifficultyEasy:
		return DifficultyCurve{Enabled: true, LevelThreshold: 200, SpeedIncrement: 0.2, SpeedCap: 2.5}
	case DifficultyHard:
		return DifficultyCurve{Enabled: true, LevelThreshold: 150, SpeedIncrement: 0.4, SpeedCap: 3.5}
	case DifficultyFixed:
		return DifficultyCurve{Enabled: false, LevelThreshold: 200, SpeedIncrement: 0, SpeedCap: 1}
	default:
		return DifficultyCurve{Enabled: true, LevelThreshold: 200, SpeedIncrement: 0.3, SpeedCap: 3.0}
	}
}

// ApplyPreset replaces the config's difficulty curve with the preset's.
// Easy and hard also move the hazard margin and the obstacle cap.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.Difficulty = curveForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Collision.HazardMargin += 0.2
		cfg.Obstacles.MaxCount = max(1, cfg.Obstacles.MaxCount-1)
	case DifficultyHard:
		cfg.Collision.HazardMargin = math.Max(0, cfg.Collision.HazardMargin-0.2)
		cfg.Obstacles.MaxCount++
	}
}
