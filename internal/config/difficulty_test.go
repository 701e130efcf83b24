package config

import (
	"math"
	"testing"
)

func TestDifficultyCurve(t *testing.T) {
	normal := DifficultyCurve{Enabled: true, LevelThreshold: 200, SpeedIncrement: 0.3, SpeedCap: 3.0}

	tests := []struct {
		score     int
		wantLevel int
		wantSpeed float64
	}{
		{0, 1, 1.0},
		{199, 1, 1.0},
		{200, 2, 1.3},
		{999, 5, 2.2},
		{1400, 8, 3.0},  // 1 + 7*0.3 = 3.1, capped
		{10000, 51, 3.0}, // cap holds
	}

	for _, tt := range tests {
		if got := normal.Level(tt.score); got != tt.wantLevel {
			t.Errorf("Level(%d) = %d, expected %d", tt.score, got, tt.wantLevel)
		}
		if got := normal.Speed(tt.score); math.Abs(got-tt.wantSpeed) > 1e-9 {
			t.Errorf("Speed(%d) = %v, expected %v", tt.score, got, tt.wantSpeed)
		}
	}
}

func TestDifficultyCurveIsPure(t *testing.T) {
	c := curveForPreset(DifficultyNormal)
	for i := 0; i < 3; i++ {
		if c.Level(999) != 5 || math.Abs(c.Speed(999)-2.2) > 1e-9 {
			t.Fatal("Level/Speed changed between calls")
		}
	}
}

func TestDifficultyCurveDisabled(t *testing.T) {
	c := curveForPreset(DifficultyFixed)

	if got := c.Level(650); got != 4 {
		t.Errorf("Level(650) = %d, expected 4 even when disabled", got)
	}
	if got := c.Speed(650); got != 1.0 {
		t.Errorf("Speed(650) = %v, expected 1.0 when disabled", got)
	}
}

func TestDifficultyCurveZeroThreshold(t *testing.T) {
	c := DifficultyCurve{Enabled: true}
	if c.Level(500) != 1 {
		t.Error("zero threshold should stay on level 1")
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultSkyhopConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Difficulty.SpeedIncrement != 0.2 || easy.Difficulty.SpeedCap != 2.5 {
		t.Errorf("easy curve = %+v", easy.Difficulty)
	}
	if easy.Collision.HazardMargin <= DefaultSkyhopConfig().Collision.HazardMargin {
		t.Error("easy should widen the hazard margin")
	}

	hard := DefaultSkyhopConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Difficulty.Level(150) != 2 {
		t.Errorf("hard Level(150) = %d, expected 2", hard.Difficulty.Level(150))
	}
}
