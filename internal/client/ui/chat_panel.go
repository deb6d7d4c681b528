package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/stream-chat/internal/chat"
)

// ChatPanel keeps one rendered line per message. It subscribes to a
// chat.Feed and is redrawn into the viewport after every append.
type ChatPanel struct {
	lines          []string
	showTimestamps bool
}

// NewChatPanel creates an empty chat panel
func NewChatPanel(showTimestamps bool) *ChatPanel {
	return &ChatPanel{
		lines:          []string{},
		showTimestamps: showTimestamps,
	}
}

// Consume renders msg and appends it after the existing lines
func (c *ChatPanel) Consume(msg chat.Message) {
	c.lines = append(c.lines, RenderMessage(msg, c.showTimestamps))
}

// Len returns the number of rendered messages
func (c *ChatPanel) Len() int {
	return len(c.lines)
}

// Content returns every line wrapped to width, oldest first
func (c *ChatPanel) Content(width int) string {
	if len(c.lines) == 0 {
		return placeholderStyle.Render("Welcome to the chat room!")
	}

	wrap := lipgloss.NewStyle().Width(max(width, 1))
	var b strings.Builder
	for i, line := range c.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(wrap.Render(line))
	}
	return b.String()
}

// RenderMessage draws the colored username label followed by the text
func RenderMessage(msg chat.Message, showTimestamp bool) string {
	label := usernameStyle.
		Foreground(lipgloss.Color(string(msg.Color()))).
		Render(msg.Username)
	line := label + messageTextStyle.Render(msg.Body())

	if showTimestamp {
		line = timestampStyle.Render(msg.PostedAt.Format("15:04")) + " " + line
	}
	return line
}
