package core

// Piece is the falling piece: a shape matrix in its current orientation,
// a board-relative anchor (X = column, Y = row of the matrix's top-left cell)
// and a color index.
type Piece struct {
	Shape ShapeID
	Cells [][]bool
	X     int
	Y     int
	Color int
}

// NewPiece creates a piece for a catalog shape at the given anchor.
func NewPiece(id ShapeID, x, y int) Piece {
	s := ShapeByID(id)
	return Piece{
		Shape: s.ID,
		Cells: CloneCells(s.Cells),
		X:     x,
		Y:     y,
		Color: s.Color,
	}
}

// Width returns the column count of the piece's current orientation.
func (p Piece) Width() int {
	return MatrixWidth(p.Cells)
}

// Height returns the row count of the piece's current orientation.
func (p Piece) Height() int {
	return len(p.Cells)
}

// Kick is a position adjustment tried after a rotation collides.
type Kick struct {
	DX, DY int
}

// KickOffsets lists rotation adjustments in the order they are tried.
var KickOffsets = []Kick{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{-2, 0},
	{2, 0},
}

// Collides reports whether the matrix placed with its top-left cell at
// (x, y) leaves the board or overlaps a filled cell.
func Collides(m [][]bool, x, y int, b *Board) bool {
	for dy, row := range m {
		for dx, on := range row {
			if on && b.Blocked(y+dy, x+dx) {
				return true
			}
		}
	}
	return false
}

// DropY returns the row the matrix would come to rest at if dropped
// straight down from (x, y).
func DropY(m [][]bool, x, y int, b *Board) int {
	for i := 0; i <= b.H && !Collides(m, x, y+1, b); i++ {
		y++
	}
	return y
}

// TryRotate rotates p clockwise, trying each kick offset in order.
// On failure the original piece is returned unchanged with ok=false.
func TryRotate(p Piece, b *Board) (Piece, bool) {
	rotated := RotateClockwise(p.Cells)
	for _, k := range KickOffsets {
		if !Collides(rotated, p.X+k.DX, p.Y+k.DY, b) {
			p.Cells = rotated
			p.X += k.DX
			p.Y += k.DY
			return p, true
		}
	}
	return p, false
}
