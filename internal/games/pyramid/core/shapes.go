// Package core provides the pyramid puzzle engine: board and slot model,
// shape catalog, collision, placement validation, settling physics, piece
// generation and the session state machine.
// This package is UI-agnostic and deterministic for a given random source.
package core

import "strings"

// ShapeID identifies a shape in the catalog.
type ShapeID int

// Catalog shapes, in catalog order.
const (
	ShapeSingle ShapeID = iota
	ShapeDominoH
	ShapeDominoV
	ShapeTripleH
	ShapeTripleV
	ShapeTriangle
	ShapeInvertedTriangle
	ShapeTrapezoid
	ShapeInvertedTrapezoid
	ShapeI
	ShapeO
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// DefaultShape is used whenever a shape cannot be chosen or resolved.
const DefaultShape = ShapeSingle

// NumColors is the size of the color palette. Valid cell colors are 1..NumColors.
const NumColors = 8

// BaseColor is the color of the pre-filled base band.
const BaseColor = NumColors

// Shape is an immutable shape template.
type Shape struct {
	ID    ShapeID
	Name  string
	Cells [][]bool
	Color int
}

// cells builds a shape matrix from rows where '#' marks an occupied cell.
func cells(rows ...string) [][]bool {
	m := make([][]bool, len(rows))
	for y, row := range rows {
		m[y] = make([]bool, len(row))
		for x, ch := range row {
			m[y][x] = ch == '#'
		}
	}
	return m
}

var catalog = []Shape{
	{ID: ShapeSingle, Name: "single", Color: 1, Cells: cells("#")},
	{ID: ShapeDominoH, Name: "domino", Color: 2, Cells: cells("##")},
	{ID: ShapeDominoV, Name: "domino-v", Color: 2, Cells: cells("#", "#")},
	{ID: ShapeTripleH, Name: "triple", Color: 3, Cells: cells("###")},
	{ID: ShapeTripleV, Name: "triple-v", Color: 3, Cells: cells("#", "#", "#")},
	{ID: ShapeTriangle, Name: "triangle", Color: 4, Cells: cells(".#.", "###")},
	{ID: ShapeInvertedTriangle, Name: "triangle-inv", Color: 4, Cells: cells("###", ".#.")},
	{ID: ShapeTrapezoid, Name: "trapezoid", Color: 5, Cells: cells(".##.", "####")},
	{ID: ShapeInvertedTrapezoid, Name: "trapezoid-inv", Color: 5, Cells: cells("####", ".##.")},
	{ID: ShapeI, Name: "I", Color: 6, Cells: cells("####")},
	{ID: ShapeO, Name: "O", Color: 7, Cells: cells("##", "##")},
	{ID: ShapeL, Name: "L", Color: 6, Cells: cells("#.", "#.", "##")},
	{ID: ShapeJ, Name: "J", Color: 7, Cells: cells(".#", ".#", "##")},
	{ID: ShapeS, Name: "S", Color: 1, Cells: cells(".##", "##.")},
	{ID: ShapeZ, Name: "Z", Color: 2, Cells: cells("##.", ".##")},
}

// Catalog returns every shape in catalog order.
// The returned shapes share their cell matrices with the catalog; callers must not modify them.
func Catalog() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog)
	return out
}

// AllShapes returns the ids of every catalog shape.
func AllShapes() []ShapeID {
	ids := make([]ShapeID, len(catalog))
	for i, s := range catalog {
		ids[i] = s.ID
	}
	return ids
}

// SimpleShapes returns the onboarding subset: single cell, dominoes and the horizontal triple.
func SimpleShapes() []ShapeID {
	return []ShapeID{ShapeSingle, ShapeDominoH, ShapeDominoV, ShapeTripleH}
}

// Valid reports whether id names a catalog shape.
func (id ShapeID) Valid() bool {
	return id >= 0 && int(id) < len(catalog)
}

// String returns the shape name.
func (id ShapeID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return catalog[id].Name
}

// ShapeByID returns the catalog shape for id, or the default shape if id is unknown.
func ShapeByID(id ShapeID) Shape {
	if !id.Valid() {
		return catalog[DefaultShape]
	}
	return catalog[id]
}

// ShapeByName looks a shape up by its catalog name (case-insensitive).
func ShapeByName(name string) (Shape, bool) {
	for _, s := range catalog {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Shape{}, false
}

// RotateClockwise returns a new matrix rotated 90 degrees clockwise.
// An R×C matrix becomes C×R. The input is not modified.
func RotateClockwise(m [][]bool) [][]bool {
	rows := len(m)
	if rows == 0 {
		return [][]bool{}
	}
	cols := len(m[0])
	out := make([][]bool, cols)
	for c := range cols {
		out[c] = make([]bool, rows)
		for r := range rows {
			// transpose, then reverse the order of the original rows
			out[c][r] = m[rows-1-r][c]
		}
	}
	return out
}

// CloneCells returns a deep copy of a shape matrix.
func CloneCells(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// CellsEqual reports whether two matrices have the same dimensions and contents.
func CellsEqual(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// Offset is the position of an occupied cell relative to a piece anchor.
type Offset struct {
	DX, DY int
}

// Offsets returns the occupied cells of m in row-major order.
func Offsets(m [][]bool) []Offset {
	var out []Offset
	for dy, row := range m {
		for dx, on := range row {
			if on {
				out = append(out, Offset{DX: dx, DY: dy})
			}
		}
	}
	return out
}

// CellCount returns the number of occupied cells in m.
func CellCount(m [][]bool) int {
	return len(Offsets(m))
}

// MatrixWidth returns the column count of m.
func MatrixWidth(m [][]bool) int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
