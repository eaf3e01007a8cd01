// Package tui provides the Bubble Tea integration for the cinema player.
// It handles the terminal playback loop, input mapping, and the run
// history browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next playback frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the playback rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
