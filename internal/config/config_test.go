package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, mode := range []string{ModeSkyhop, ModeClassic} {
		cfg, err := decode(mode, GetDefaultYAML(mode))
		if err != nil {
			t.Fatalf("%s: embedded YAML does not parse: %v", mode, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: embedded YAML is invalid: %v", mode, err)
		}
		if !reflect.DeepEqual(cfg, DefaultConfig(mode)) {
			t.Errorf("%s: embedded YAML and DefaultConfig diverge:\n yaml: %+v\n code: %+v", mode, cfg, DefaultConfig(mode))
		}
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(ModeSkyhop, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physics.MaxJumps != 2 {
		t.Errorf("MaxJumps = %d, expected 2", cfg.Physics.MaxJumps)
	}

	cfg, err = Load(ModeClassic, "")
	if err != nil {
		t.Fatalf("Load classic: %v", err)
	}
	if cfg.Physics.MaxJumps != 1 || cfg.PowerUps.Enabled {
		t.Errorf("classic config = %+v", cfg)
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".skyhop", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skyhop.yaml"), []byte("physics:\n  max_jumps: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(ModeSkyhop, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physics.MaxJumps != 3 {
		t.Errorf("MaxJumps = %d, expected 3 from user config", cfg.Physics.MaxJumps)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "obstacles:\n  clear_bonus: 25\ndifficulty:\n  level_threshold: 100\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(ModeSkyhop, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Obstacles.ClearBonus != 25 {
		t.Errorf("ClearBonus = %d, expected 25", cfg.Obstacles.ClearBonus)
	}
	if cfg.Difficulty.LevelThreshold != 100 {
		t.Errorf("LevelThreshold = %d, expected 100", cfg.Difficulty.LevelThreshold)
	}
	// Untouched keys keep their defaults
	if cfg.Obstacles.SpawnInterval != 90 || cfg.Difficulty.SpeedCap != 3.0 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(ModeSkyhop, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("physics: [not, a, map"), 0o644)
	if _, err := Load(ModeSkyhop, bad); err == nil {
		t.Error("expected an error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	_ = os.WriteFile(invalid, []byte("difficulty:\n  level_threshold: 0\n"), 0o644)
	_, err := Load(ModeSkyhop, invalid)
	if err == nil || !strings.Contains(err.Error(), "level_threshold") {
		t.Errorf("expected a level_threshold validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		field  string
	}{
		{"zero jumps", func(c *GameConfig) { c.Physics.MaxJumps = 0 }, "max_jumps"},
		{"width range", func(c *GameConfig) { c.Obstacles.MinWidth = 5 }, "width range"},
		{"spawn interval", func(c *GameConfig) { c.Obstacles.SpawnInterval = 0 }, "spawn_interval"},
		{"chance", func(c *GameConfig) { c.PowerUps.Chance = 1.5 }, "chance"},
		{"update every", func(c *GameConfig) { c.Particles.UpdateEvery = 0 }, "update_every"},
		{"speed cap", func(c *GameConfig) { c.Difficulty.SpeedCap = 0.5 }, "speed_cap"},
		{"negative particle cap", func(c *GameConfig) { c.Particles.Max = -1 }, "particles.max"},
		{"negative particle cap disabled", func(c *GameConfig) {
			c.Particles.Enabled = false
			c.Particles.Max = -1
		}, "particles.max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSkyhopConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tt.field)
			}
		})
	}

	// Disabled sections are not checked
	cfg := DefaultSkyhopConfig()
	cfg.PowerUps = PowerUpConfig{}
	cfg.Particles = ParticleConfig{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled sections should validate: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePreset(%q) = (%q, %v)", tt.in, got, err)
		}
	}
}

func TestLoadWithPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWithPreset(ModeSkyhop, "", "hard")
	if err != nil {
		t.Fatalf("LoadWithPreset: %v", err)
	}
	if cfg.Difficulty.LevelThreshold != 150 || cfg.Difficulty.SpeedCap != 3.5 {
		t.Errorf("hard curve = %+v", cfg.Difficulty)
	}
	if cfg.Obstacles.MaxCount != 6 {
		t.Errorf("hard MaxCount = %d, expected 6", cfg.Obstacles.MaxCount)
	}

	cfg, err = LoadWithPreset(ModeSkyhop, "", "fixed")
	if err != nil {
		t.Fatalf("LoadWithPreset fixed: %v", err)
	}
	if !IsFixedPreset(DifficultyFixed) || cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the speed ramp")
	}

	if _, err := LoadWithPreset(ModeSkyhop, "", "bogus"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}
