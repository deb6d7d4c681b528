package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/stream-chat/internal/chat"
)

// cannedMsg is sent when a scripted message's timer fires
type cannedMsg struct {
	message chat.CannedMessage
}

// cannedCmd fires once after the message's delay
func cannedCmd(c chat.CannedMessage) tea.Cmd {
	return tea.Tick(c.After, func(time.Time) tea.Msg {
		return cannedMsg{message: c}
	})
}

// scheduleScriptCmd starts one timer per canned message
func scheduleScriptCmd(script chat.Script) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(script))
	for _, c := range script {
		cmds = append(cmds, cannedCmd(c))
	}
	return tea.Batch(cmds...)
}
