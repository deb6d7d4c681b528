package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/stream-chat/internal/chat"
)

func TestRenderMessage(t *testing.T) {
	msg := chat.Message{Username: "GamerPro", Text: "What game is next?", PostedAt: time.Date(2024, 5, 1, 20, 15, 0, 0, time.UTC)}

	assert.Contains(t, RenderMessage(msg, false), "GamerPro: What game is next?")
	assert.Contains(t, RenderMessage(msg, true), "20:15")
	assert.NotContains(t, RenderMessage(msg, false), "20:15")
}

func TestChatPanel_ConsumesFromFeed(t *testing.T) {
	feed := chat.NewFeed()
	panel := NewChatPanel(false)
	feed.Subscribe(panel)

	assert.Contains(t, panel.Content(40), "Welcome to the chat room!")

	feed.Post("You", "one")
	feed.Post("Bob", "two")

	assert.Equal(t, 2, panel.Len())
	content := panel.Content(40)
	assert.Contains(t, content, "You: one")
	assert.Contains(t, content, "Bob: two")
	assert.NotContains(t, content, "Welcome to the chat room!")
}
