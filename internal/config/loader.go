package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const pyramidFile = "pyramid.yaml"

// LoadPyramid loads the pyramid builder configuration.
// Search order: customPath -> ~/.arcade/configs/pyramid.yaml -> ./configs/pyramid.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// The result is validated; an invalid custom file is an error, an invalid
// user or local file is skipped.
func LoadPyramid(customPath string) (PyramidConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PyramidConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parsePyramid(data)
		if err != nil {
			return PyramidConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(pyramidFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePyramid(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", pyramidFile)); err == nil {
		if cfg, err := parsePyramid(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePyramid(defaultPyramidYAML)
	if err != nil {
		return DefaultPyramidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePyramid decodes YAML over the hard-coded defaults and validates the result.
func parsePyramid(data []byte) (PyramidConfig, error) {
	cfg := DefaultPyramidConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PyramidConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PyramidConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPyramidPreset modifies the config based on a difficulty preset.
func ApplyPyramidPreset(cfg *PyramidConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Generator.FitBias = 0.95
		cfg.Generator.OnboardingScore = 2 * cfg.Generator.OnboardingScore
		cfg.Stability.MisfitPenalty = cfg.Stability.MisfitPenalty / 2
		cfg.Gravity.BaseFallMs = 1000
	case DifficultyHard:
		cfg.Generator.FitBias = 0.5
		cfg.Generator.OnboardingScore = 0
		cfg.Stability.MisfitPenalty = cfg.Stability.MisfitPenalty * 3 / 2
		cfg.Gravity.BaseFallMs = 600
	}
	if cfg.Gravity.MinFallMs > cfg.Gravity.BaseFallMs {
		cfg.Gravity.MinFallMs = cfg.Gravity.BaseFallMs
	}
}
