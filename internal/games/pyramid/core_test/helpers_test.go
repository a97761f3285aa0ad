package core_test

import (
	"math/rand"

	"github.com/vovakirdan/pyramid-arcade/internal/games/pyramid/core"
)

// fixedRand always returns the same values.
type fixedRand struct {
	intn    int
	float64 float64
}

func (r fixedRand) Intn(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

func (r fixedRand) Float64() float64 {
	return r.float64
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// testRules returns default rules dealing only the given shapes.
func testRules(pool ...core.ShapeID) core.Rules {
	r := core.DefaultRules()
	r.ShapePool = pool
	return r
}

// pyramidBoard builds a default 10x20 board with the level-1 pyramid laid out.
func pyramidBoard() (*core.Board, *core.SlotSet) {
	rules := core.DefaultRules()
	b := core.NewBoard(rules.Width, rules.Height, rules.BaseRows)
	return b, core.BuildSlots(b, rules, 1)
}

// run applies commands in order and returns the last snapshot.
func run(e *core.Engine, cmds ...core.Command) core.Snapshot {
	snap := e.Snapshot()
	for _, c := range cmds {
		snap = e.Apply(c)
	}
	return snap
}

// moveTo shifts the falling piece horizontally until its anchor is at col.
func moveTo(e *core.Engine, col int) core.Snapshot {
	snap := e.Snapshot()
	for i := 0; i < snap.Width && snap.Current.X != col; i++ {
		if snap.Current.X < col {
			snap = e.Apply(core.CmdMoveRight)
		} else {
			snap = e.Apply(core.CmdMoveLeft)
		}
	}
	return snap
}
