package core

// Supported reports whether a block at (row, col) is held up: it lies in
// the base band, the cell directly below is filled, or both diagonal cells
// below are filled. A single diagonal neighbour is not enough.
func Supported(b *Board, row, col int) bool {
	if b.InBaseBand(row) {
		return true
	}
	if b.Filled(row+1, col) {
		return true
	}
	return b.Filled(row+1, col-1) && b.Filled(row+1, col+1)
}

// CellFit is the evaluation of one landing cell of a piece.
type CellFit struct {
	Row        int
	Col        int
	OnOpenSlot bool
	Supported  bool
}

// Fits reports whether the cell is both on an open slot and supported.
func (c CellFit) Fits() bool {
	return c.OnOpenSlot && c.Supported
}

// Placement is the outcome of validating a piece about to lock.
type Placement struct {
	LandingX    int
	LandingY    int
	Cells       []CellFit
	OutOfBounds bool
	Perfect     bool
}

// Matched returns the number of cells that landed on an open, supported slot.
func (p Placement) Matched() int {
	n := 0
	for _, c := range p.Cells {
		if c.Fits() {
			n++
		}
	}
	return n
}

// Clone returns a copy that shares no memory with p.
func (p Placement) Clone() Placement {
	p.Cells = append([]CellFit(nil), p.Cells...)
	return p
}

// ValidatePlacement drops the piece from its current position and evaluates
// every landing cell against the board as it is before the lock.
// The placement is perfect iff every cell sits on an open slot and is supported.
// A landing that leaves the board fails immediately with OutOfBounds set and no cells.
func ValidatePlacement(b *Board, slots *SlotSet, p Piece) Placement {
	landing := DropY(p.Cells, p.X, p.Y, b)
	res := Placement{LandingX: p.X, LandingY: landing}

	offsets := Offsets(p.Cells)
	for _, off := range offsets {
		if !b.InBounds(landing+off.DY, p.X+off.DX) {
			res.OutOfBounds = true
			return res
		}
	}

	res.Cells = make([]CellFit, 0, len(offsets))
	perfect := len(offsets) > 0
	for _, off := range offsets {
		row, col := landing+off.DY, p.X+off.DX
		fit := CellFit{
			Row:        row,
			Col:        col,
			OnOpenSlot: slots.IsOpen(row, col),
			Supported:  Supported(b, row, col),
		}
		if !fit.Fits() {
			perfect = false
		}
		res.Cells = append(res.Cells, fit)
	}
	res.Perfect = perfect
	return res
}
