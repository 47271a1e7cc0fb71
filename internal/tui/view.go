package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// View renders the status/help line shown below the card scrollback.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	state := fmt.Sprintf("card %d · every %s", m.shown, formatDuration(m.interval))
	if m.paused {
		state = pausedStyle.Render("paused") + " · " + state
	}

	line := statusStyle.Render(state)
	if m.notice != "" {
		line += "  " + noticeStyle.Render(m.notice)
	}

	return line + "\n" + m.help.View(m.keys)
}
