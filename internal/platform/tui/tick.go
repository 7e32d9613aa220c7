// Package tui provides the Bubble Tea host for Recycle Run.
// It handles the terminal UI loop, input mapping, menus, the scoreboard
// and serving the game over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/recycle-run/internal/core"
)

// TickMsg advances the world by one fixed step.
type TickMsg time.Time

// tickInterval is the wall time between steps. The world itself only
// counts ticks, so a slow terminal slows the game rather than skipping.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
