// Package tui provides the Bubble Tea integration for Flappy X.
// It handles the terminal UI loop, input mapping, persistence hooks and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the nominal duration of one tick.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsed returns the wall time between two ticks. The first tick, and any
// clock that went backwards, counts as one nominal interval.
func elapsed(last, now time.Time, tickRate int) time.Duration {
	if last.IsZero() {
		return tickInterval(tickRate)
	}
	d := now.Sub(last)
	if d <= 0 {
		return tickInterval(tickRate)
	}
	return d
}
