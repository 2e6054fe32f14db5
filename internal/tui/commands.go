package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduleTick arms the single outstanding tick timer.
func scheduleTick(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}
