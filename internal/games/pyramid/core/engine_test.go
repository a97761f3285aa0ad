package core

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

type stubRand struct {
	intn int
}

func (r stubRand) Intn(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

func (stubRand) Float64() float64 { return 0 }

func startedEngine(t *testing.T, pool ...ShapeID) *Engine {
	t.Helper()
	rules := DefaultRules()
	rules.ShapePool = pool
	e := NewEngine(rules, rand.New(rand.NewSource(1)))
	e.Apply(CmdStart)
	if e.State() != StateRunning {
		t.Fatalf("expected running after start, got %v", e.State())
	}
	return e
}

func TestMisfitSettlesLooseBlocks(t *testing.T) {
	e := startedEngine(t, ShapeDominoH)

	// A block already sits on the left end of the bottom tier,
	// and a stray block floats over the right edge of the board.
	e.board.Set(17, 2, 1)
	e.slots.MarkFilled(17, 2)
	e.board.Set(5, 9, 3)

	e.Apply(CmdMoveLeft)
	e.Apply(CmdMoveLeft)
	if e.current.X != 2 {
		t.Fatalf("expected piece at x=2, got %d", e.current.X)
	}

	snap := e.Apply(CmdHardDrop)

	if snap.Event != EventMisfit {
		t.Fatalf("expected misfit, got %v", snap.Event)
	}
	if snap.LastPlacement == nil || snap.LastPlacement.LandingY != 16 {
		t.Fatalf("expected landing on row 16, got %+v", snap.LastPlacement)
	}
	if got := snap.LastPlacement.Matched(); got != 0 {
		t.Errorf("expected no matched cells, got %d", got)
	}

	// (16,3) dropped one row; the stray block fell 13 rows to the base band.
	if snap.LastSettle.TotalMoves != 14 {
		t.Errorf("expected 14 settle moves, got %d", snap.LastSettle.TotalMoves)
	}
	if len(snap.LastSettle.Moves) != 13 || snap.LastSettle.Moves[0] != 2 {
		t.Errorf("unexpected per-pass moves: %v", snap.LastSettle.Moves)
	}

	// 100 - 10 misfit - 14 moves * 2
	if snap.Stability != 62 {
		t.Errorf("expected stability 62, got %d", snap.Stability)
	}
	if snap.Score != 20 {
		t.Errorf("expected score 20 (2 cells, no bonus), got %d", snap.Score)
	}

	color := ShapeByID(ShapeDominoH).Color
	if e.board.Get(16, 2) != color {
		t.Errorf("supported half of the domino should stay at (16,2)")
	}
	if e.board.Get(16, 3) != Empty || e.board.Get(17, 3) != color {
		t.Errorf("unsupported half should have fallen from (16,3) to (17,3)")
	}
	if e.board.Get(5, 9) != Empty || e.board.Get(18, 9) != 3 {
		t.Errorf("stray block should rest at (18,9)")
	}

	if !e.slots.IsOpen(16, 3) {
		t.Errorf("slot (16,3) should be open again after its block fell")
	}
	if e.slots.IsOpen(17, 3) {
		t.Errorf("slot (17,3) should be filled by the fallen block")
	}
	if snap.FilledSlots != 2 {
		t.Errorf("expected 2 filled slots, got %d", snap.FilledSlots)
	}
}

func TestPyramidCompletionAdvancesLevel(t *testing.T) {
	e := startedEngine(t, ShapeSingle)

	for _, s := range e.slots.Open() {
		if s.Row == 14 && s.Col == 5 {
			continue
		}
		e.board.Set(s.Row, s.Col, 1)
		e.slots.MarkFilled(s.Row, s.Col)
	}

	e.Apply(CmdMoveRight)
	snap := e.Apply(CmdHardDrop)

	if snap.Event != EventPyramidComplete {
		t.Fatalf("expected pyramid complete, got %v (%s)", snap.Event, snap.Message)
	}
	if snap.Level != 2 {
		t.Errorf("expected level 2, got %d", snap.Level)
	}
	if snap.Score != 60+1000 {
		t.Errorf("expected score 1060, got %d", snap.Score)
	}
	if snap.Stability != MaxStability {
		t.Errorf("expected stability reset to %d, got %d", MaxStability, snap.Stability)
	}
	if snap.FilledSlots != 0 || snap.TotalSlots != 16 {
		t.Errorf("expected a fresh pyramid, got %d/%d", snap.FilledSlots, snap.TotalSlots)
	}
	if e.board.FilledCount() != 2*7 {
		t.Errorf("expected only the base band on the board, got %d cells", e.board.FilledCount())
	}
	if snap.FallInterval >= e.rules.FallPeriod(1) {
		t.Errorf("expected gravity to speed up, got %v", snap.FallInterval)
	}
	if snap.Stats.Pyramids != 1 {
		t.Errorf("expected 1 pyramid in stats, got %d", snap.Stats.Pyramids)
	}
	if snap.State != StateRunning || snap.Current == nil || snap.Current.Y != 0 {
		t.Errorf("expected a fresh piece falling, got %+v", snap.Current)
	}
}

func TestOutOfBoundsPlacementIsRejected(t *testing.T) {
	e := startedEngine(t, ShapeDominoH)
	before := e.board.Clone()
	next := e.next.Shape

	e.clearEvent()
	e.current.X = -1
	e.lock()

	if e.event != EventRejected {
		t.Fatalf("expected rejection, got %v", e.event)
	}
	if !e.board.Equal(before) {
		t.Error("rejected placement must not write to the board")
	}
	if e.stability != MaxStability-e.rules.MisfitPenalty {
		t.Errorf("expected misfit penalty, got stability %d", e.stability)
	}
	if e.score != 0 {
		t.Errorf("expected no score change, got %d", e.score)
	}
	if e.stats.Rejected != 1 {
		t.Errorf("expected 1 rejection, got %d", e.stats.Rejected)
	}
	if e.current.Shape != next || e.current.Y != 0 {
		t.Error("expected the next piece to spawn")
	}
}

func TestRelocateSlidesDiagonally(t *testing.T) {
	tests := []struct {
		name    string
		blocked []int // columns on row 3 that are filled besides col 2
		intn    int
		wantCol int
	}{
		{"both sides open, pick left", nil, 0, 1},
		{"both sides open, pick right", nil, 1, 3},
		{"left blocked", []int{1}, 0, 3},
		{"right blocked", []int{3}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(5, 5, 1)
			slots := BuildSlots(NewBoard(5, 5, 1), DefaultRules(), 1)
			b.Set(3, 2, 1)
			for _, col := range tt.blocked {
				b.Set(3, col, 1)
			}
			b.Set(2, 2, 7)

			if !relocate(b, slots, 2, 2, stubRand{intn: tt.intn}) {
				t.Fatal("expected the block to move")
			}
			if b.Get(2, 2) != Empty {
				t.Error("source cell should be empty")
			}
			if b.Get(3, tt.wantCol) != 7 {
				t.Errorf("expected block at (3,%d)", tt.wantCol)
			}
		})
	}
}

func TestRelocateStuck(t *testing.T) {
	b := NewBoard(3, 5, 1)
	slots := BuildSlots(NewBoard(3, 5, 1), DefaultRules(), 1)
	b.Set(3, 0, 1)
	b.Set(3, 1, 1)
	b.Set(3, 2, 1)
	b.Set(2, 1, 7)

	if relocate(b, slots, 2, 1, stubRand{}) {
		t.Error("a block with no free cell below should stay put")
	}
}

func TestSettleLogsWhenCapped(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	b := NewBoard(4, 10, 1)
	slots := BuildSlots(NewBoard(4, 10, 1), DefaultRules(), 1)
	b.Set(0, 0, 1)

	res := Settle(b, slots, 2, stubRand{}, logger)
	if !res.CapReached {
		t.Fatal("expected the cap to be reached")
	}
	if !strings.Contains(buf.String(), "settle pass cap reached") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

func TestStartResetsPreviousSession(t *testing.T) {
	rules := DefaultRules()
	e := NewEngine(rules, rand.New(rand.NewSource(5)))
	e.score = 999
	e.level = 4
	e.stability = 3

	e.Apply(CmdStart)
	if e.score != 0 || e.level != 1 || e.stability != MaxStability {
		t.Errorf("start did not reset the session: score=%d level=%d stability=%d", e.score, e.level, e.stability)
	}
	if e.slots.Tiers() != rules.TiersForLevel(1) {
		t.Errorf("expected level-1 pyramid, got %d tiers", e.slots.Tiers())
	}
}
