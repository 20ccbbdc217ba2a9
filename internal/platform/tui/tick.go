// Package tui provides the Bubble Tea host for the tetris engine.
// It maps keys to engine commands, drives gravity from a timer and renders
// engine state to the terminal, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one gravity step. Gen identifies the schedule that produced it;
// ticks from an older schedule are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickCmd returns a Bubble Tea command that fires a single gravity tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
