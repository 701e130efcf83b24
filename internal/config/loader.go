package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a game mode.
// Search order: customPath -> ~/.skyhop/configs/<mode>.yaml -> ./configs/<mode>.yaml
// -> embedded default -> hard-coded default.
// Files are decoded over the mode's defaults, so a partial file only
// overrides the keys it names. The result is validated.
func Load(mode, customPath string) (GameConfig, error) {
	filename := mode + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(mode, data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(mode, data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(mode, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(mode); data != nil {
		if cfg, err := decode(mode, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}
	return DefaultConfig(mode), nil // Fallback to hardcoded if embed fails
}

// LoadWithPreset loads a mode's configuration and applies a named
// difficulty preset. An empty preset name keeps the file's curve.
func LoadWithPreset(mode, customPath, preset string) (GameConfig, error) {
	cfg, err := Load(mode, customPath)
	if err != nil {
		return cfg, err
	}
	if preset == "" {
		return cfg, nil
	}
	p, err := ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, p)
	return cfg, cfg.Validate()
}

func decode(mode string, data []byte) (GameConfig, error) {
	cfg := DefaultConfig(mode)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}
