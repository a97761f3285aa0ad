package config

import (
	_ "embed"
)

//go:embed defaults/pyramid.yaml
var defaultPyramidYAML []byte

// DefaultPyramidConfig returns the default pyramid builder configuration.
// It mirrors defaults/pyramid.yaml and is used when the embedded file cannot be parsed.
func DefaultPyramidConfig() PyramidConfig {
	return PyramidConfig{
		Board: PyramidBoard{
			Width:    10,
			Height:   20,
			BaseRows: 2,
		},
		Pyramid: PyramidLayout{
			Tiers:           4,
			MaxTiers:        5,
			TierGrowthEvery: 2,
			SpawnClearance:  4,
		},
		Scoring: PyramidScoring{
			PerCell:         10,
			PerfectFitBonus: 50,
			PyramidBonus:    1000,
		},
		Stability: PyramidStability{
			PerfectFitGain:       5,
			MisfitPenalty:        10,
			SettlePenaltyPerMove: 2,
		},
		Physics: PyramidPhysics{
			SettleMaxPasses: 64,
		},
		Generator: PyramidGenerator{
			FitBias:         0.8,
			OnboardingScore: 200,
		},
		Gravity: PyramidGravity{
			BaseFallMs: 800,
			FallStepMs: 60,
			MinFallMs:  100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pyramid", "pyramid_zen":
		return defaultPyramidYAML
	default:
		return nil
	}
}
