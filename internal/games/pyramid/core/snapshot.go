package core

import "time"

// PieceView is a read-only copy of a piece.
type PieceView struct {
	Shape ShapeID
	Name  string
	Cells [][]bool
	X     int
	Y     int
	Color int
}

func viewOf(p Piece) *PieceView {
	return &PieceView{
		Shape: p.Shape,
		Name:  p.Shape.String(),
		Cells: CloneCells(p.Cells),
		X:     p.X,
		Y:     p.Y,
		Color: p.Color,
	}
}

// Snapshot is the immutable engine state handed to the presentation layer
// after every tick or command. It shares no memory with the engine.
type Snapshot struct {
	State     State
	Width     int
	Height    int
	BaseRows  int
	Board     [][]int
	OpenSlots []Slot
	Tiers     int

	Current *PieceView // nil before the first start
	GhostY  int
	Next    *PieceView

	Score       int
	Level       int
	Stability   int
	FilledSlots int
	TotalSlots  int

	Event   Event
	Message string // transient, meant for ephemeral display

	LastPlacement *Placement
	LastSettle    SettleResult
	Stats         Stats

	FallInterval time.Duration
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:        e.state,
		Width:        e.board.W,
		Height:       e.board.H,
		BaseRows:     e.board.BaseRows,
		Board:        e.board.Rows(),
		OpenSlots:    e.slots.Open(),
		Tiers:        e.slots.Tiers(),
		Score:        e.score,
		Level:        e.level,
		Stability:    e.stability,
		FilledSlots:  e.slots.CountFilled(),
		TotalSlots:   e.slots.CountTotal(),
		Event:        e.event,
		Message:      e.message,
		LastSettle:   e.lastSettle,
		Stats:        e.stats,
		FallInterval: e.FallInterval(),
	}
	snap.LastSettle.Moves = append([]int(nil), e.lastSettle.Moves...)

	if e.state != StateNotStarted {
		snap.Current = viewOf(e.current)
		snap.GhostY = DropY(e.current.Cells, e.current.X, e.current.Y, e.board)
		snap.Next = viewOf(e.next)
	}
	if e.placement != nil {
		pl := e.placement.Clone()
		snap.LastPlacement = &pl
	}
	return snap
}

// CellAt returns the color at (row, col) in the snapshot board, or Empty.
func (s Snapshot) CellAt(row, col int) int {
	if row < 0 || row >= len(s.Board) || col < 0 || col >= len(s.Board[row]) {
		return Empty
	}
	return s.Board[row][col]
}

// IsOpenSlot reports whether (row, col) is one of the snapshot's open slots.
func (s Snapshot) IsOpenSlot(row, col int) bool {
	for _, slot := range s.OpenSlots {
		if slot.Row == row && slot.Col == col {
			return true
		}
	}
	return false
}
