package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/stream-chat/internal/chat"
)

func startLoop(t *testing.T, feed *chat.Feed) (*chat.Loop, context.CancelFunc, <-chan error) {
	t.Helper()
	loop := chat.NewLoop(feed, chat.DefaultUsername, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()
	t.Cleanup(cancel)
	return loop, cancel, errCh
}

func Test_Loop_posts_submissions_in_order(t *testing.T) {
	feed := chat.NewFeed()
	loop, _, _ := startLoop(t, feed)

	loop.Send(chat.SubmitEvent{Input: "  hello  "})
	loop.Send(chat.SubmitEvent{Input: "   "})
	loop.Send(chat.SubmitEvent{Input: "second"})
	loop.Send(chat.SubmitEvent{Input: ""})
	loop.Send(chat.SubmitEvent{Input: "third"})

	require.Eventually(t, func() bool { return feed.Len() == 3 }, time.Second, 5*time.Millisecond)

	messages := feed.Messages()
	assert.Equal(t, "You: hello", messages[0].String())
	assert.Equal(t, "You: second", messages[1].String())
	assert.Equal(t, "You: third", messages[2].String())
}

func Test_Loop_fires_canned_messages_by_delay(t *testing.T) {
	feed := chat.NewFeed()
	loop, _, _ := startLoop(t, feed)

	// Listed out of order on purpose; the timers decide
	loop.Schedule(chat.Script{
		{After: 120 * time.Millisecond, Username: "GamerPro", Text: "third"},
		{After: 20 * time.Millisecond, Username: "StreamBot", Text: "first"},
		{After: 70 * time.Millisecond, Username: "CoolUser123", Text: "second"},
	})

	require.Eventually(t, func() bool { return feed.Len() == 3 }, 2*time.Second, 5*time.Millisecond)

	messages := feed.Messages()
	assert.Equal(t, "StreamBot", messages[0].Username)
	assert.Equal(t, "CoolUser123", messages[1].Username)
	assert.Equal(t, "GamerPro", messages[2].Username)
}

func Test_Loop_send_after_stop_does_not_block(t *testing.T) {
	feed := chat.NewFeed()
	loop, cancel, errCh := startLoop(t, feed)

	cancel()
	require.NoError(t, <-errCh)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			loop.Send(chat.SubmitEvent{Input: "late"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked after the loop stopped")
	}
}
