package chat

import (
	"time"

	"github.com/google/uuid"
)

// Separator sits between the username label and the message text
const Separator = ": "

// Message is a single rendered chat line
type Message struct {
	ID       uuid.UUID
	Username string
	Text     string
	PostedAt time.Time
}

// Color returns the username color for this message
func (m Message) Color() Color {
	return ColorFor(m.Username)
}

// Body returns the text with its separator prefix
func (m Message) Body() string {
	return Separator + m.Text
}

// String returns the uncolored "username: text" line
func (m Message) String() string {
	return m.Username + m.Body()
}
