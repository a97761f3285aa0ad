// Package tui runs games in the terminal with Bubble Tea: the tick loop,
// key mapping, the mode menu and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pyramid-arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a ticks-per-second rate to a frame interval,
// applying the same bounds as core.RuntimeConfig.Normalized.
func tickInterval(rate int) time.Duration {
	rate = core.RuntimeConfig{TickRate: rate}.Normalized().TickRate
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
