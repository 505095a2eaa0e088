package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHelix loads the helix configuration.
// Search order: customPath -> ~/.helixdrop/configs/helix.yaml -> ./configs/helix.yaml -> embedded default
//
// Every source is decoded over DefaultHelixConfig, so partial files only
// override the keys they set.
func LoadHelix(customPath string) (HelixConfig, error) {
	cfg := DefaultHelixConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("helix.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultHelixConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "helix.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultHelixConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHelixYAML, &cfg); err != nil {
		return DefaultHelixConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".helixdrop", "configs", filename)
}

// ApplyHelixPreset modifies the config based on a difficulty preset.
func ApplyHelixPreset(cfg *HelixConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Scaling = ScalingForPreset(preset, cfg.Difficulty.Scaling)
}
