// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// PyramidConfig contains all configuration for the pyramid builder.
type PyramidConfig struct {
	Board      PyramidBoard     `yaml:"board"`
	Pyramid    PyramidLayout    `yaml:"pyramid"`
	Scoring    PyramidScoring   `yaml:"scoring"`
	Stability  PyramidStability `yaml:"stability"`
	Physics    PyramidPhysics   `yaml:"physics"`
	Generator  PyramidGenerator `yaml:"generator"`
	Gravity    PyramidGravity   `yaml:"gravity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PyramidBoard defines the playfield dimensions.
type PyramidBoard struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	BaseRows int `yaml:"base_rows"`
}

// PyramidLayout defines the target pyramid and how it grows with level.
type PyramidLayout struct {
	Tiers           int `yaml:"tiers"`
	MaxTiers        int `yaml:"max_tiers"`
	TierGrowthEvery int `yaml:"tier_growth_every"`
	SpawnClearance  int `yaml:"spawn_clearance"`
}

// PyramidScoring defines score awards and costs.
type PyramidScoring struct {
	PerCell         int `yaml:"per_cell"`
	PerfectFitBonus int `yaml:"perfect_fit_bonus"`
	PyramidBonus    int `yaml:"pyramid_bonus"`
	DiscardCost     int `yaml:"discard_cost"`
}

// PyramidStability defines how the stability meter moves.
type PyramidStability struct {
	PerfectFitGain       int `yaml:"perfect_fit_gain"`
	MisfitPenalty        int `yaml:"misfit_penalty"`
	SettlePenaltyPerMove int `yaml:"settle_penalty_per_move"`
	DiscardCost          int `yaml:"discard_cost"`
}

// PyramidPhysics defines settling limits.
type PyramidPhysics struct {
	SettleMaxPasses int `yaml:"settle_max_passes"`
}

// PyramidGenerator defines how pieces are dealt.
type PyramidGenerator struct {
	FitBias         float64  `yaml:"fit_bias"`
	OnboardingScore int      `yaml:"onboarding_score"`
	ShapePool       []string `yaml:"shape_pool"` // shape names; empty means every shape
}

// PyramidGravity defines the automatic fall period in milliseconds.
type PyramidGravity struct {
	BaseFallMs int `yaml:"base_fall_ms"`
	FallStepMs int `yaml:"fall_step_ms"`
	MinFallMs  int `yaml:"min_fall_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", ValidationError{
			Code:    "UNKNOWN_PRESET",
			Message: "difficulty must be one of easy, normal, hard, fixed; got " + s,
		}
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
