package core

// Empty is the value of an unoccupied board cell.
const Empty = 0

// Board is the playfield: a fixed-size grid of color indexes.
// Cells are stored in row-major order: index = row*W + col.
// Row 0 is the top of the board.
type Board struct {
	W        int
	H        int
	BaseRows int // height of the base band at the bottom of the board
	cells    []int
}

// NewBoard creates an empty board.
func NewBoard(w, h, baseRows int) *Board {
	return &Board{
		W:        w,
		H:        h,
		BaseRows: baseRows,
		cells:    make([]int, w*h),
	}
}

func (b *Board) index(row, col int) int {
	return row*b.W + col
}

// InBounds returns true if (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.H && col >= 0 && col < b.W
}

// Get returns the color at (row, col), or Empty if out of bounds.
func (b *Board) Get(row, col int) int {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

// Set writes a color at (row, col). Out-of-bounds writes are ignored.
func (b *Board) Set(row, col, color int) {
	if b.InBounds(row, col) {
		b.cells[b.index(row, col)] = color
	}
}

// Filled reports whether (row, col) is on the board and non-empty.
func (b *Board) Filled(row, col int) bool {
	return b.Get(row, col) != Empty
}

// Vacant reports whether (row, col) is on the board and empty.
func (b *Board) Vacant(row, col int) bool {
	return b.InBounds(row, col) && b.cells[b.index(row, col)] == Empty
}

// Blocked reports whether a piece cell may not occupy (row, col):
// the position is outside the board or already filled.
func (b *Board) Blocked(row, col int) bool {
	return !b.Vacant(row, col)
}

// BaseTop returns the first row of the base band.
func (b *Board) BaseTop() int {
	return b.H - b.BaseRows
}

// InBaseBand reports whether row lies within the base band.
func (b *Board) InBaseBand(row int) bool {
	return row >= b.BaseTop() && row < b.H
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{W: b.W, H: b.H, BaseRows: b.BaseRows, cells: cells}
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Rows returns a copy of the board as a slice of rows.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.H)
	for r := range rows {
		rows[r] = make([]int, b.W)
		copy(rows[r], b.cells[r*b.W:(r+1)*b.W])
	}
	return rows
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H || b.BaseRows != other.BaseRows {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
