package core

// Generator deals the next shape, biased toward shapes that can land as a
// perfect fit on the current structure.
type Generator struct {
	rng             Rand
	fitBias         float64
	onboardingScore int
	pool            []ShapeID
}

// NewGenerator creates a generator from the dealing rules.
func NewGenerator(rules Rules, rng Rand) *Generator {
	pool := make([]ShapeID, 0, len(rules.ShapePool))
	for _, id := range rules.ShapePool {
		if id.Valid() {
			pool = append(pool, id)
		}
	}
	if len(pool) == 0 {
		pool = AllShapes()
	}
	return &Generator{
		rng:             rng,
		fitBias:         rules.FitBias,
		onboardingScore: rules.OnboardingScore,
		pool:            pool,
	}
}

// Candidates returns the shapes eligible at the given score.
// Below the onboarding score the pool is narrowed to simple shapes,
// unless that would leave nothing to deal.
func (g *Generator) Candidates(score int) []ShapeID {
	if score >= g.onboardingScore {
		return g.pool
	}
	simple := make(map[ShapeID]bool)
	for _, id := range SimpleShapes() {
		simple[id] = true
	}
	var out []ShapeID
	for _, id := range g.pool {
		if simple[id] {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return g.pool
	}
	return out
}

// Next picks the next shape for the given board state.
func (g *Generator) Next(b *Board, slots *SlotSet, score int) ShapeID {
	candidates := g.Candidates(score)
	if len(candidates) == 0 {
		return DefaultShape
	}

	if g.rng.Float64() < g.fitBias {
		if fitting := FittingShapes(b, slots, candidates); len(fitting) > 0 {
			return fitting[g.rng.Intn(len(fitting))]
		}
	}
	id := candidates[g.rng.Intn(len(candidates))]
	if !id.Valid() {
		return DefaultShape
	}
	return id
}

// FittingShapes returns the candidates that can land as a perfect fit.
// For every open slot that is currently supported, each candidate is placed
// with its bottom row on the slot's row, anchored by each of its bottom-row
// cells in turn; non-colliding placements are run through ValidatePlacement.
func FittingShapes(b *Board, slots *SlotSet, candidates []ShapeID) []ShapeID {
	var targets []Slot
	for _, s := range slots.Open() {
		if b.Vacant(s.Row, s.Col) && Supported(b, s.Row, s.Col) {
			targets = append(targets, s)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	var out []ShapeID
	for _, id := range candidates {
		if !id.Valid() {
			continue
		}
		if shapeFits(b, slots, ShapeByID(id), targets) {
			out = append(out, id)
		}
	}
	return out
}

func shapeFits(b *Board, slots *SlotSet, s Shape, targets []Slot) bool {
	h := len(s.Cells)
	if h == 0 {
		return false
	}
	bottom := s.Cells[h-1]
	for _, t := range targets {
		y := t.Row - (h - 1)
		if y < 0 {
			continue
		}
		for dx, on := range bottom {
			if !on {
				continue
			}
			x := t.Col - dx
			if Collides(s.Cells, x, y, b) {
				continue
			}
			p := Piece{Shape: s.ID, Cells: s.Cells, X: x, Y: y, Color: s.Color}
			if ValidatePlacement(b, slots, p).Perfect {
				return true
			}
		}
	}
	return false
}
