package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pyramid-arcade/internal/games/pyramid/core"
)

func TestBuildSlotsLevelOneLayout(t *testing.T) {
	b, slots := pyramidBoard()

	require.Equal(t, 4, slots.Tiers())
	assert.Equal(t, 16, slots.CountTotal(), "1+3+5+7 pyramid slots")
	assert.Zero(t, slots.CountFilled())
	assert.Equal(t, 16+2*7, slots.Len())
	assert.False(t, slots.Complete())

	apex, ok := slots.At(14, 5)
	require.True(t, ok)
	assert.Equal(t, 0, apex.Level)

	for col := 2; col <= 8; col++ {
		s, ok := slots.At(17, col)
		require.True(t, ok, "bottom tier col %d", col)
		assert.Equal(t, 3, s.Level)
		assert.True(t, slots.IsOpen(17, col))

		for row := 18; row <= 19; row++ {
			base, ok := slots.At(row, col)
			require.True(t, ok)
			assert.True(t, base.Base)
			assert.True(t, base.Filled)
			assert.False(t, slots.IsOpen(row, col))
			assert.Equal(t, core.BaseColor, b.Get(row, col))
		}
	}

	_, ok = slots.At(17, 1)
	assert.False(t, ok)
	_, ok = slots.At(14, 4)
	assert.False(t, ok)
	assert.Equal(t, core.Empty, b.Get(18, 1), "base band is only as wide as the bottom tier")
}

func TestSlotLevelsIncreaseTowardBase(t *testing.T) {
	_, slots := pyramidBoard()

	byRow := map[int]int{}
	for _, s := range slots.All() {
		if prev, ok := byRow[s.Row]; ok {
			assert.Equal(t, prev, s.Level, "row %d has mixed levels", s.Row)
		}
		byRow[s.Row] = s.Level
	}
	for row := 15; row <= 19; row++ {
		assert.Equal(t, byRow[row-1]+1, byRow[row], "row %d", row)
	}
}

func TestSlotFilledAccounting(t *testing.T) {
	_, slots := pyramidBoard()

	assert.True(t, slots.MarkFilled(17, 4))
	assert.False(t, slots.MarkFilled(0, 0), "no slot at (0,0)")
	assert.Equal(t, 1, slots.CountFilled())
	assert.Len(t, slots.Open(), 15)

	slots.ClearFilled(17, 4)
	assert.Zero(t, slots.CountFilled())

	// base slots stay filled
	slots.ClearFilled(18, 4)
	base, _ := slots.At(18, 4)
	assert.True(t, base.Filled)

	for _, s := range slots.Open() {
		slots.MarkFilled(s.Row, s.Col)
	}
	assert.True(t, slots.Complete())
	assert.Empty(t, slots.Open())
}

func TestOpenReturnsCopies(t *testing.T) {
	_, slots := pyramidBoard()

	open := slots.Open()
	open[0].Filled = true
	assert.Zero(t, slots.CountFilled())
}

func TestBuildSlotsGrowsWithLevel(t *testing.T) {
	rules := core.DefaultRules()

	tests := []struct {
		level int
		tiers int
	}{
		{1, 4},
		{2, 4},
		{3, 5},
		{9, 5}, // MaxTiers
	}

	for _, tt := range tests {
		b := core.NewBoard(rules.Width, rules.Height, rules.BaseRows)
		slots := core.BuildSlots(b, rules, tt.level)
		assert.Equal(t, tt.tiers, slots.Tiers(), "level %d", tt.level)
		assert.Equal(t, tt.tiers*tt.tiers, slots.CountTotal(), "level %d", tt.level)
	}
}
