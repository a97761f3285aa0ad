package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks that the configuration describes a playable game.
// It returns the first problem found as a ValidationError.
func (c PyramidConfig) Validate() error {
	if err := c.validateBoard(); err != nil {
		return err
	}
	if err := c.validateAmounts(); err != nil {
		return err
	}
	if err := c.validateGenerator(); err != nil {
		return err
	}
	if err := c.validateGravity(); err != nil {
		return err
	}
	return c.validateDifficulty()
}

func (c PyramidConfig) validateBoard() error {
	b, p := c.Board, c.Pyramid
	if b.Width < 3 {
		return invalid("BOARD_TOO_NARROW", "board width must be at least 3, got %d", b.Width)
	}
	if b.BaseRows < 1 {
		return invalid("NO_BASE", "base_rows must be at least 1, got %d", b.BaseRows)
	}
	if p.SpawnClearance < 1 {
		return invalid("NO_SPAWN_ROOM", "spawn_clearance must be at least 1, got %d", p.SpawnClearance)
	}
	if room := b.Height - b.BaseRows - p.SpawnClearance; room < 1 {
		return invalid("BOARD_TOO_SHORT",
			"board height %d leaves no room for a pyramid above %d base rows and %d spawn rows",
			b.Height, b.BaseRows, p.SpawnClearance)
	}
	if p.Tiers < 1 {
		return invalid("NO_TIERS", "pyramid needs at least 1 tier, got %d", p.Tiers)
	}
	if p.MaxTiers < 0 || p.TierGrowthEvery < 0 {
		return invalid("NEGATIVE_GROWTH", "max_tiers and tier_growth_every must not be negative")
	}
	return nil
}

func (c PyramidConfig) validateAmounts() error {
	amounts := []struct {
		name  string
		value int
	}{
		{"scoring.per_cell", c.Scoring.PerCell},
		{"scoring.perfect_fit_bonus", c.Scoring.PerfectFitBonus},
		{"scoring.pyramid_bonus", c.Scoring.PyramidBonus},
		{"scoring.discard_cost", c.Scoring.DiscardCost},
		{"stability.perfect_fit_gain", c.Stability.PerfectFitGain},
		{"stability.misfit_penalty", c.Stability.MisfitPenalty},
		{"stability.settle_penalty_per_move", c.Stability.SettlePenaltyPerMove},
		{"stability.discard_cost", c.Stability.DiscardCost},
	}
	for _, a := range amounts {
		if a.value < 0 {
			return invalid("NEGATIVE_AMOUNT", "%s must not be negative, got %d", a.name, a.value)
		}
	}
	if c.Physics.SettleMaxPasses < 1 {
		return invalid("NO_SETTLE_PASSES", "physics.settle_max_passes must be at least 1, got %d", c.Physics.SettleMaxPasses)
	}
	return nil
}

func (c PyramidConfig) validateGenerator() error {
	g := c.Generator
	if g.FitBias < 0 || g.FitBias > 1 {
		return invalid("BAD_FIT_BIAS", "generator.fit_bias must be within [0, 1], got %g", g.FitBias)
	}
	if g.OnboardingScore < 0 {
		return invalid("NEGATIVE_AMOUNT", "generator.onboarding_score must not be negative, got %d", g.OnboardingScore)
	}
	return nil
}

func (c PyramidConfig) validateGravity() error {
	g := c.Gravity
	if g.MinFallMs <= 0 {
		return invalid("BAD_GRAVITY", "gravity.min_fall_ms must be positive, got %d", g.MinFallMs)
	}
	if g.BaseFallMs < g.MinFallMs {
		return invalid("BAD_GRAVITY", "gravity.base_fall_ms (%d) is below min_fall_ms (%d)", g.BaseFallMs, g.MinFallMs)
	}
	if g.FallStepMs < 0 {
		return invalid("BAD_GRAVITY", "gravity.fall_step_ms must not be negative, got %d", g.FallStepMs)
	}
	return nil
}

func (c PyramidConfig) validateDifficulty() error {
	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return invalid("BAD_DIFFICULTY", "difficulty.initial_level must be within [0, 1], got %g", d.InitialLevel)
	}
	switch d.Progression.Type {
	case "", "none", "score", "time":
	default:
		return invalid("BAD_DIFFICULTY", "difficulty.progression.type must be score, time or none, got %q", d.Progression.Type)
	}
	if d.Scaling.SpeedMultiplier < 0 {
		return invalid("BAD_DIFFICULTY", "difficulty.scaling.speed_multiplier must not be negative, got %g", d.Scaling.SpeedMultiplier)
	}
	return nil
}
