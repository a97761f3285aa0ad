package pyramid

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pyramid-arcade/internal/core"
	engine "github.com/vovakirdan/pyramid-arcade/internal/games/pyramid/core"
)

// Layout constants. Every board cell is drawn two characters wide so the
// playfield looks roughly square in a terminal.
const (
	cellW     = 2
	panelW    = 24
	panelGap  = 2
	barLength = 10
)

// Glyph pairs for a single board cell.
const (
	glyphBlock = "██"
	glyphBase  = "▓▓"
	glyphGhost = "░░"
	glyphSlot  = "··"
)

// palette maps engine color indexes (1..NumColors) to screen colors.
// The last entry is the base band color.
var palette = [engine.NumColors + 1]core.Color{
	core.ColorDefault,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorGray,
}

func colorFor(v int) core.Color {
	if v < 0 || v >= len(palette) {
		return core.ColorWhite
	}
	return palette[v]
}

// layout is the placement of the board and side panel on a screen.
type layout struct {
	boardX, boardY int // top-left corner of the board frame
	boardW, boardH int // frame size including borders
	panelX         int
}

func computeLayout(s engine.Snapshot, screenW, screenH int) (layout, bool) {
	l := layout{
		boardW: s.Width*cellW + 2,
		boardH: s.Height + 2,
	}
	totalW := l.boardW + panelGap + panelW
	totalH := l.boardH + 1 // title line
	if screenW < totalW || screenH < totalH {
		return l, false
	}
	l.boardX = (screenW - totalW) / 2
	l.boardY = 1 + (screenH-totalH)/2
	l.panelX = l.boardX + l.boardW + panelGap
	return l, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := computeLayout(g.snap, dst.Width(), dst.Height())
	if !ok {
		renderTooSmall(dst, l)
		return
	}

	g.renderTitle(dst, l)
	renderBoard(dst, l, g.snap)
	g.renderPanel(dst, l)

	switch g.snap.State {
	case engine.StatePaused:
		renderOverlay(dst, l, []string{"Paused", "", "Press P to continue"}, core.ColorBrightYellow)
	case engine.StateGameOver:
		st := g.snap.Stats
		renderOverlay(dst, l, []string{
			"Game Over",
			"",
			fmt.Sprintf("Score %d  Level %d", g.snap.Score, g.snap.Level),
			fmt.Sprintf("Pyramids %d", st.Pyramids),
			fmt.Sprintf("Perfect %d  Misfit %d", st.PerfectFits, st.Misfits),
			fmt.Sprintf("Settled %d  Discard %d", st.BlocksSettled, st.Discards),
			"",
			"Press R to restart",
		}, core.ColorBrightRed)
	}
}

func renderTooSmall(dst *core.Screen, l layout) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need at least %dx%d", l.boardW+panelGap+panelW, l.boardH+1))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderTitle(dst *core.Screen, l layout) {
	title := g.Title()
	x := l.boardX + (l.boardW-len([]rune(title)))/2
	dst.DrawTextColor(x, l.boardY-1, title, core.ColorBrightYellow)
}

// renderBoard draws the frame, settled blocks, open slots, the ghost and the falling piece.
func renderBoard(dst *core.Screen, l layout, s engine.Snapshot) {
	dst.DrawBoxColor(core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH), core.ColorGray)

	open := make(map[[2]int]bool, len(s.OpenSlots))
	for _, slot := range s.OpenSlots {
		open[[2]int{slot.Row, slot.Col}] = true
	}

	for row := range s.Height {
		for col := range s.Width {
			v := s.CellAt(row, col)
			switch {
			case v == engine.BaseColor:
				drawCell(dst, l, row, col, glyphBase, core.ColorGray)
			case v != engine.Empty:
				drawCell(dst, l, row, col, glyphBlock, colorFor(v))
			case open[[2]int{row, col}]:
				drawCell(dst, l, row, col, glyphSlot, core.ColorGray)
			}
		}
	}

	p := s.Current
	if p == nil || s.State == engine.StateGameOver {
		return
	}
	for _, o := range engine.Offsets(p.Cells) {
		row, col := s.GhostY+o.DY, p.X+o.DX
		if s.CellAt(row, col) == engine.Empty {
			drawCell(dst, l, row, col, glyphGhost, colorFor(p.Color))
		}
	}
	for _, o := range engine.Offsets(p.Cells) {
		drawCell(dst, l, p.Y+o.DY, p.X+o.DX, glyphBlock, colorFor(p.Color))
	}
}

func drawCell(dst *core.Screen, l layout, row, col int, glyph string, c core.Color) {
	dst.DrawTextColor(l.boardX+1+col*cellW, l.boardY+1+row, glyph, c)
}

// renderPanel draws the side panel: next piece, counters, stability bar and message.
func (g *Game) renderPanel(dst *core.Screen, l layout) {
	s := g.snap
	x, y := l.panelX, l.boardY

	dst.DrawTextColor(x, y, "NEXT", core.ColorBrightWhite)
	if s.Next != nil {
		for _, o := range engine.Offsets(s.Next.Cells) {
			dst.DrawTextColor(x+2+o.DX*cellW, y+2+o.DY, glyphBlock, colorFor(s.Next.Color))
		}
		dst.DrawTextColor(x+12, y+2, s.Next.Name, core.ColorGray)
	}
	y += 6

	rows := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", s.Score)},
		{"Level", fmt.Sprintf("%d", s.Level)},
		{"Slots", fmt.Sprintf("%d/%d", s.FilledSlots, s.TotalSlots)},
		{"Pyramids", fmt.Sprintf("%d", s.Stats.Pyramids)},
	}
	for _, r := range rows {
		dst.DrawText(x, y, fmt.Sprintf("%-10s%s", r.label, r.value))
		y++
	}
	y++

	dst.DrawText(x, y, "Stability")
	y++
	bar, c := stabilityBar(s.Stability)
	dst.DrawTextColor(x, y, bar, c)
	dst.DrawText(x+barLength+3, y, fmt.Sprintf("%3d", s.Stability))
	y += 2

	if g.message != "" {
		for _, line := range wrap(g.message, panelW) {
			dst.DrawTextColor(x, y, line, eventColor(g.messageEvent))
			y++
		}
	}
	y++

	if g.mode == ModeZen {
		dst.DrawTextColor(x, y, "Zen: no gravity", core.ColorCyan)
	}
}

// stabilityBar renders the meter as a bracketed bar colored by health.
func stabilityBar(v int) (string, core.Color) {
	filled := v * barLength / engine.MaxStability
	filled = core.Clamp(filled, 0, barLength)
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled) + "]"

	switch {
	case v > 60:
		return bar, core.ColorGreen
	case v > 30:
		return bar, core.ColorYellow
	default:
		return bar, core.ColorRed
	}
}

func eventColor(ev engine.Event) core.Color {
	switch ev {
	case engine.EventPerfectFit:
		return core.ColorBrightGreen
	case engine.EventPyramidComplete:
		return core.ColorBrightYellow
	case engine.EventMisfit, engine.EventRejected, engine.EventGameOver:
		return core.ColorBrightRed
	default:
		return core.ColorBrightWhite
	}
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// renderOverlay draws a framed box of centered lines over the board.
func renderOverlay(dst *core.Screen, l layout, lines []string, c core.Color) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	board := core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH)
	box := core.CenteredRect(board, maxLen+4, len(lines)+2)

	dst.DrawRect(box.Inset(1), ' ')
	dst.DrawBoxColor(box, c)

	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextColor(x, box.Y+1+i, line, color)
	}
}
