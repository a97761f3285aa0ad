package core

import "github.com/charmbracelet/log"

// Rand is the random source used for shape choice and slide tie-breaks.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// SettleResult summarizes one settling run.
type SettleResult struct {
	Passes     int   // passes executed, including the final still pass
	Moves      []int // blocks moved in each pass that moved anything
	TotalMoves int
	CapReached bool // stopped by the pass cap rather than by a still pass
}

// Settle lets unsupported blocks fall until a full pass moves nothing or
// maxPasses passes have run. Each pass scans a snapshot of the board bottom
// to top, left to right, while support is evaluated on the live board, so a
// block may drop into a cell vacated earlier in the same pass.
// Slot flags follow the blocks they belong to.
func Settle(b *Board, slots *SlotSet, maxPasses int, rng Rand, logger *log.Logger) SettleResult {
	var res SettleResult
	for res.Passes < maxPasses {
		moved := settlePass(b, slots, rng)
		res.Passes++
		if moved == 0 {
			return res
		}
		res.Moves = append(res.Moves, moved)
		res.TotalMoves += moved
	}

	res.CapReached = true
	if logger != nil {
		logger.Warn("settle pass cap reached", "passes", res.Passes, "moves", res.TotalMoves)
	}
	return res
}

// settlePass runs one relaxation pass and returns the number of blocks moved.
func settlePass(b *Board, slots *SlotSet, rng Rand) int {
	snap := b.Clone()
	moved := 0
	for row := b.H - 1; row >= 0; row-- {
		for col := range b.W {
			if !snap.Filled(row, col) || !b.Filled(row, col) {
				continue
			}
			if Supported(b, row, col) {
				continue
			}
			if relocate(b, slots, row, col, rng) {
				moved++
			}
		}
	}
	return moved
}

// relocate moves an unsupported block one step: straight down when the cell
// below is empty, otherwise diagonally down when both the side cell and the
// cell below it are empty. With both diagonals open the side is chosen at random.
func relocate(b *Board, slots *SlotSet, row, col int, rng Rand) bool {
	if b.Vacant(row+1, col) {
		moveBlock(b, slots, row, col, row+1, col)
		return true
	}

	var sides []int
	for _, dx := range []int{-1, 1} {
		if b.Vacant(row, col+dx) && b.Vacant(row+1, col+dx) {
			sides = append(sides, dx)
		}
	}

	switch len(sides) {
	case 0:
		return false
	case 1:
		moveBlock(b, slots, row, col, row+1, col+sides[0])
	default:
		moveBlock(b, slots, row, col, row+1, col+sides[rng.Intn(len(sides))])
	}
	return true
}

func moveBlock(b *Board, slots *SlotSet, fromRow, fromCol, toRow, toCol int) {
	b.Set(toRow, toCol, b.Get(fromRow, fromCol))
	b.Set(fromRow, fromCol, Empty)
	slots.ClearFilled(fromRow, fromCol)
	if slot, ok := slots.At(toRow, toCol); ok && !slot.Base {
		slot.Filled = true
	}
}
