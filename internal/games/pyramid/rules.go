package pyramid

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pyramid-arcade/internal/config"
	engine "github.com/vovakirdan/pyramid-arcade/internal/games/pyramid/core"
)

// RulesFromConfig converts a loaded configuration into engine rules.
// The config is validated first; shape pool names must exist in the catalog.
func RulesFromConfig(cfg config.PyramidConfig) (engine.Rules, error) {
	if err := cfg.Validate(); err != nil {
		return engine.Rules{}, fmt.Errorf("pyramid: %w", err)
	}

	var pool []engine.ShapeID
	for _, name := range cfg.Generator.ShapePool {
		s, ok := engine.ShapeByName(name)
		if !ok {
			return engine.Rules{}, fmt.Errorf("pyramid: unknown shape %q in generator.shape_pool", name)
		}
		pool = append(pool, s.ID)
	}

	return engine.Rules{
		Width:    cfg.Board.Width,
		Height:   cfg.Board.Height,
		BaseRows: cfg.Board.BaseRows,

		Tiers:           cfg.Pyramid.Tiers,
		MaxTiers:        cfg.Pyramid.MaxTiers,
		TierGrowthEvery: cfg.Pyramid.TierGrowthEvery,
		SpawnClearance:  cfg.Pyramid.SpawnClearance,

		PerCellScore:         cfg.Scoring.PerCell,
		PerfectFitBonus:      cfg.Scoring.PerfectFitBonus,
		PyramidBonus:         cfg.Scoring.PyramidBonus,
		PerfectFitStability:  cfg.Stability.PerfectFitGain,
		MisfitPenalty:        cfg.Stability.MisfitPenalty,
		SettlePenaltyPerMove: cfg.Stability.SettlePenaltyPerMove,
		SettleMaxPasses:      cfg.Physics.SettleMaxPasses,

		FitBias:         cfg.Generator.FitBias,
		OnboardingScore: cfg.Generator.OnboardingScore,
		ShapePool:       pool,

		DiscardScoreCost:     cfg.Scoring.DiscardCost,
		DiscardStabilityCost: cfg.Stability.DiscardCost,

		BaseFallPeriod: ms(cfg.Gravity.BaseFallMs),
		FallPeriodStep: ms(cfg.Gravity.FallStepMs),
		MinFallPeriod:  ms(cfg.Gravity.MinFallMs),
	}, nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
