// Package tui provides the Bubble Tea front end for glowbreak.
// It handles the terminal UI loop, input mapping, menus, the scoreboards
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// game model that scheduled it, so a stale tick from a finished game is
// dropped instead of starting a second loop.
type TickMsg struct {
	Loop int64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
