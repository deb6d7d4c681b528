package chat

import (
	"time"

	"github.com/samber/lo"
)

// CannedMessage is a scripted message posted once after a delay from startup
type CannedMessage struct {
	After    time.Duration `yaml:"after"`
	Username string        `yaml:"username"`
	Text     string        `yaml:"text"`
}

// Script is the list of canned messages that simulate other participants
type Script []CannedMessage

// DefaultScript returns the built-in welcome sequence
func DefaultScript() Script {
	return Script{
		{After: 1000 * time.Millisecond, Username: "StreamBot", Text: "Welcome to the chat! Remember to be kind."},
		{After: 2500 * time.Millisecond, Username: "CoolUser123", Text: "Hey everyone! This stream is awesome!"},
		{After: 4000 * time.Millisecond, Username: "GamerPro", Text: "What game is next?"},
	}
}

// Normalize drops entries with no text and clamps negative delays to zero
func (s Script) Normalize() Script {
	kept := lo.Filter(s, func(c CannedMessage, _ int) bool {
		_, ok := Compose(c.Text)
		return ok
	})
	return lo.Map(kept, func(c CannedMessage, _ int) CannedMessage {
		c.After = max(c.After, 0)
		return c
	})
}
