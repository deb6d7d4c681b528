package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// viewChat renders the header, message list, input box and status bar
func (m Model) viewChat() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		liveBadgeStyle.Render("LIVE"),
		titleStyle.Render("STREAM CHAT"),
	)

	chatBox := chatBoxStyle.
		Width(m.width - 2).
		Render(m.viewport.View())

	inputBox := inputBoxStyle.
		Width(m.width - 2).
		Render(m.input.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		chatBox,
		inputBox,
		m.renderStatusBar(),
	)
}

// renderStatusBar renders the bottom status bar
func (m Model) renderStatusBar() string {
	user := highlightStyle.Render("Chatting as " + m.username)
	controls := mutedStyle.Render("ENTER: Send  •  PGUP/PGDN: Scroll  •  ESC: Quit")

	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(user + "  •  " + controls)
}
