package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_sink.go -package=mocks github.com/yourusername/stream-chat/internal/chat Sink

// Sink receives every message appended to a Feed
type Sink interface {
	Consume(msg Message)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(msg Message)

// Consume calls f(msg)
func (f SinkFunc) Consume(msg Message) {
	f(msg)
}

// Feed is the ordered, append-only list of chat messages.
// Messages are never removed or reordered.
type Feed struct {
	postMu sync.Mutex // serializes Post so sinks see append order

	mu       sync.RWMutex
	messages []Message
	sinks    []Sink

	now func() time.Time
}

// NewFeed creates an empty feed
func NewFeed() *Feed {
	return &Feed{
		messages: make([]Message, 0),
		now:      time.Now,
	}
}

// Subscribe registers a sink. Sinks are notified in subscription order
// and only see messages posted after they subscribed.
func (f *Feed) Subscribe(s Sink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks = append(f.sinks, s)
}

// Post appends a message to the end of the feed and notifies sinks
func (f *Feed) Post(username, text string) Message {
	f.postMu.Lock()
	defer f.postMu.Unlock()

	msg := Message{
		ID:       uuid.New(),
		Username: username,
		Text:     text,
		PostedAt: f.now(),
	}

	f.mu.Lock()
	f.messages = append(f.messages, msg)
	sinks := make([]Sink, len(f.sinks))
	copy(sinks, f.sinks)
	f.mu.Unlock()

	// Sinks run outside mu so they may read the feed back
	for _, s := range sinks {
		s.Consume(msg)
	}
	return msg
}

// Messages returns a copy of all messages in post order
func (f *Feed) Messages() []Message {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]Message, len(f.messages))
	copy(result, f.messages)
	return result
}

// Len returns the number of messages posted so far
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.messages)
}

// Tail returns up to n of the most recent messages, oldest first
func (f *Feed) Tail(n int) []Message {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if n <= 0 {
		return []Message{}
	}
	start := 0
	if len(f.messages) > n {
		start = len(f.messages) - n
	}
	result := make([]Message, len(f.messages)-start)
	copy(result, f.messages[start:])
	return result
}
