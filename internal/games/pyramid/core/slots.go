package core

import "github.com/kamstrup/intmap"

// Slot is a board position that belongs to the target pyramid.
// Level 0 is the apex; levels increase toward the base.
// Base slots belong to the pre-filled base band and never count toward completion.
type Slot struct {
	Row    int
	Col    int
	Level  int
	Filled bool
	Base   bool
}

// SlotSet is the slot structure for one pyramid.
// Slots are indexed by cell id (row*W + col).
type SlotSet struct {
	width int
	tiers int
	slots []Slot
	index *intmap.Map[int, int]
}

func newSlotSet(width, tiers, capacity int) *SlotSet {
	return &SlotSet{
		width: width,
		tiers: tiers,
		slots: make([]Slot, 0, capacity),
		index: intmap.New[int, int](capacity),
	}
}

func (s *SlotSet) key(row, col int) int {
	return row*s.width + col
}

func (s *SlotSet) add(slot Slot) {
	s.index.Put(s.key(slot.Row, slot.Col), len(s.slots))
	s.slots = append(s.slots, slot)
}

// BuildSlots lays out the pyramid for the given level on b.
// Tier k (0 = apex) spans 2k+1 columns centred on the board, stacked so the
// bottom tier rests directly on the base band. The base band beneath it is as
// wide as the bottom tier; its cells are written to the board with BaseColor
// and registered as pre-filled base slots.
func BuildSlots(b *Board, rules Rules, level int) *SlotSet {
	tiers := rules.TiersForLevel(level)
	width := 2*tiers - 1
	center := b.W / 2
	set := newSlotSet(b.W, tiers, tiers*tiers+width*b.BaseRows)

	baseTop := b.BaseTop()
	for k := range tiers {
		row := baseTop - tiers + k
		for col := center - k; col <= center+k; col++ {
			if b.InBounds(row, col) {
				set.add(Slot{Row: row, Col: col, Level: k})
			}
		}
	}

	for i := range b.BaseRows {
		row := baseTop + i
		for col := center - (tiers - 1); col <= center+(tiers-1); col++ {
			if !b.InBounds(row, col) {
				continue
			}
			b.Set(row, col, BaseColor)
			set.add(Slot{Row: row, Col: col, Level: tiers + i, Filled: true, Base: true})
		}
	}

	return set
}

// Tiers returns the number of pyramid tiers (excluding the base band).
func (s *SlotSet) Tiers() int {
	return s.tiers
}

// At returns the slot at (row, col), if any.
func (s *SlotSet) At(row, col int) (*Slot, bool) {
	if col < 0 || col >= s.width || row < 0 {
		return nil, false
	}
	i, ok := s.index.Get(s.key(row, col))
	if !ok {
		return nil, false
	}
	return &s.slots[i], true
}

// IsOpen reports whether (row, col) is a non-base slot that is not yet filled.
func (s *SlotSet) IsOpen(row, col int) bool {
	slot, ok := s.At(row, col)
	return ok && !slot.Base && !slot.Filled
}

// MarkFilled flags the slot at (row, col) as filled. Returns false if there is no slot there.
func (s *SlotSet) MarkFilled(row, col int) bool {
	slot, ok := s.At(row, col)
	if !ok {
		return false
	}
	slot.Filled = true
	return true
}

// ClearFilled clears the filled flag of a non-base slot at (row, col).
func (s *SlotSet) ClearFilled(row, col int) {
	if slot, ok := s.At(row, col); ok && !slot.Base {
		slot.Filled = false
	}
}

// CountFilled returns the number of filled non-base slots.
func (s *SlotSet) CountFilled() int {
	n := 0
	for _, slot := range s.slots {
		if !slot.Base && slot.Filled {
			n++
		}
	}
	return n
}

// CountTotal returns the number of non-base slots.
func (s *SlotSet) CountTotal() int {
	n := 0
	for _, slot := range s.slots {
		if !slot.Base {
			n++
		}
	}
	return n
}

// Complete reports whether every non-base slot is filled.
func (s *SlotSet) Complete() bool {
	total := s.CountTotal()
	return total > 0 && s.CountFilled() == total
}

// Open returns a copy of all unfilled non-base slots, apex first.
func (s *SlotSet) Open() []Slot {
	var out []Slot
	for _, slot := range s.slots {
		if !slot.Base && !slot.Filled {
			out = append(out, slot)
		}
	}
	return out
}

// All returns a copy of every slot, base included.
func (s *SlotSet) All() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Len returns the number of slots, base included.
func (s *SlotSet) Len() int {
	return s.index.Len()
}
