package core

import "time"

// MaxStability is the upper bound of the stability meter.
const MaxStability = 100

// Rules holds every tunable of the engine.
// The config package builds Rules from YAML; DefaultRules mirrors the embedded default.
type Rules struct {
	Width    int // board width in cells
	Height   int // board height in cells
	BaseRows int // rows of pre-filled base beneath the pyramid

	Tiers           int // pyramid tiers at level 1
	MaxTiers        int // upper bound on tiers as levels grow (0 = no bound besides the board)
	TierGrowthEvery int // add a tier every N levels (0 = never grow)
	SpawnClearance  int // rows kept free above the apex for spawning

	PerCellScore         int // awarded per locked cell regardless of fit
	PerfectFitBonus      int // flat bonus for a perfect fit
	PyramidBonus         int // one-time bonus on pyramid completion
	PerfectFitStability  int // stability gained on a perfect fit
	MisfitPenalty        int // stability lost on a misfit
	SettlePenaltyPerMove int // stability lost per block moved while settling
	SettleMaxPasses      int // safety cap on settling passes

	FitBias         float64   // probability of choosing among fitting shapes
	OnboardingScore int       // below this score only simple shapes are dealt
	ShapePool       []ShapeID // shapes the generator may deal (empty = whole catalog)

	DiscardScoreCost     int // score charged for discarding a piece
	DiscardStabilityCost int // stability charged for discarding a piece

	BaseFallPeriod time.Duration // gravity period at level 1
	FallPeriodStep time.Duration // reduction per level
	MinFallPeriod  time.Duration // floor for the gravity period
}

// DefaultRules returns the standard 10×20 ruleset.
func DefaultRules() Rules {
	return Rules{
		Width:    10,
		Height:   20,
		BaseRows: 2,

		Tiers:           4,
		MaxTiers:        5,
		TierGrowthEvery: 2,
		SpawnClearance:  4,

		PerCellScore:         10,
		PerfectFitBonus:      50,
		PyramidBonus:         1000,
		PerfectFitStability:  5,
		MisfitPenalty:        10,
		SettlePenaltyPerMove: 2,
		SettleMaxPasses:      64,

		FitBias:         0.8,
		OnboardingScore: 200,

		BaseFallPeriod: 800 * time.Millisecond,
		FallPeriodStep: 60 * time.Millisecond,
		MinFallPeriod:  100 * time.Millisecond,
	}
}

// FallPeriod returns the interval between automatic descents at the given level.
// It shrinks monotonically with level and never drops below MinFallPeriod.
func (r Rules) FallPeriod(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	period := r.BaseFallPeriod - time.Duration(level-1)*r.FallPeriodStep
	if period < r.MinFallPeriod {
		return r.MinFallPeriod
	}
	return period
}

// TiersForLevel returns how many pyramid tiers are built at the given level,
// bounded by MaxTiers, the board width and the spawn clearance.
func (r Rules) TiersForLevel(level int) int {
	tiers := r.Tiers
	if r.TierGrowthEvery > 0 && level > 1 {
		tiers += (level - 1) / r.TierGrowthEvery
	}
	if r.MaxTiers > 0 && tiers > r.MaxTiers {
		tiers = r.MaxTiers
	}
	// bottom tier is 2*tiers-1 wide
	if maxByWidth := (r.Width + 1) / 2; tiers > maxByWidth {
		tiers = maxByWidth
	}
	if maxByHeight := r.Height - r.BaseRows - r.SpawnClearance; tiers > maxByHeight {
		tiers = maxByHeight
	}
	if tiers < 1 {
		tiers = 1
	}
	return tiers
}
