package chat

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Loop is a single goroutine that owns all writes to a Feed.
// Front-ends without their own event loop send events here.
type Loop struct {
	feed     *Feed
	username string
	events   chan Event
	done     chan struct{}
	log      zerolog.Logger
}

// NewLoop creates a loop posting local submissions as username
func NewLoop(feed *Feed, username string, log zerolog.Logger) *Loop {
	return &Loop{
		feed:     feed,
		username: username,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
		log:      log.With().Str("component", "loop").Logger(),
	}
}

// Send queues an event. Events sent after Run has returned are dropped.
func (l *Loop) Send(ev Event) {
	select {
	case l.events <- ev:
	case <-l.done:
	}
}

// Schedule starts one timer per canned message. Timers fire once and
// cannot be cancelled; a timer firing after shutdown is a no-op.
func (l *Loop) Schedule(script Script) {
	for _, c := range script {
		c := c
		time.AfterFunc(c.After, func() {
			l.Send(CannedEvent{Message: c})
		})
	}
}

// Run consumes events in arrival order until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			l.log.Debug().Int("messages", l.feed.Len()).Msg("loop stopped")
			return nil
		case ev := <-l.events:
			l.handle(ev)
		}
	}
}

func (l *Loop) handle(ev Event) {
	switch e := ev.(type) {
	case SubmitEvent:
		text, ok := Compose(e.Input)
		if !ok {
			return
		}
		msg := l.feed.Post(l.username, text)
		l.log.Debug().Str("id", msg.ID.String()).Str("username", msg.Username).Msg("message posted")

	case CannedEvent:
		msg := l.feed.Post(e.Message.Username, e.Message.Text)
		l.log.Debug().Str("id", msg.ID.String()).Str("username", msg.Username).
			Dur("after", e.Message.After).Msg("canned message fired")
	}
}
