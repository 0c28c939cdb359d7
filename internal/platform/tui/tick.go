// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Session identifies the run
// that scheduled it, so ticks left over from a finished run are dropped.
type TickMsg struct {
	Session int
	Time    time.Time
}

// BlinkMsg is sent when the current death blink frame has been shown long
// enough.
type BlinkMsg struct {
	Session int
}

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(session, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Session: session, Time: t}
	})
}

// blinkCmd schedules the next blink frame after delay.
func blinkCmd(session int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return BlinkMsg{Session: session}
	})
}
