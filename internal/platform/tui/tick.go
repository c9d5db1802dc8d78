// Package tui provides the Bubble Tea frontend: the game model, the level
// picker and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one engine frame. Session ties the tick to the model that
// scheduled it so a replaced model's ticks die out.
type TickMsg struct {
	Time    time.Time
	Session string
}

// tickCmd returns a Bubble Tea command that sends a tick at the given rate.
func tickCmd(tickRate int, session string) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Session: session}
	})
}
