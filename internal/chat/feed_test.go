package chat_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yourusername/stream-chat/internal/chat"
	"github.com/yourusername/stream-chat/internal/chat/mocks"
)

func Test_Feed_appends_in_call_order(t *testing.T) {
	feed := chat.NewFeed()
	feed.Post("StreamBot", "earlier")

	inputs := []string{"one", "two", "three", "two"}
	for _, text := range inputs {
		feed.Post("You", text)
	}

	messages := feed.Messages()
	require.Len(t, messages, 1+len(inputs))
	assert.Equal(t, "earlier", messages[0].Text)
	for i, text := range inputs {
		assert.Equal(t, text, messages[i+1].Text)
		assert.Equal(t, "You", messages[i+1].Username)
	}
}

func Test_Feed_assigns_ids_and_timestamps(t *testing.T) {
	feed := chat.NewFeed()
	before := time.Now()

	a := feed.Post("You", "a")
	b := feed.Post("You", "a")

	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.PostedAt.Before(before))
	assert.Equal(t, chat.ColorFor("You"), a.Color())
	assert.Equal(t, ": a", a.Body())
}

func Test_Feed_notifies_sinks_in_order(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)

	feed := chat.NewFeed()
	feed.Subscribe(sink)

	var seen []string
	record := func(msg chat.Message) { seen = append(seen, msg.Text) }
	gomock.InOrder(
		sink.EXPECT().Consume(gomock.Any()).Do(record),
		sink.EXPECT().Consume(gomock.Any()).Do(record),
		sink.EXPECT().Consume(gomock.Any()).Do(record),
	)

	feed.Post("A", "first")
	feed.Post("B", "second")
	feed.Post("C", "third")

	assert.Equal(t, []string{"first", "second", "third"}, seen)
}

func Test_Feed_sink_only_sees_later_posts(t *testing.T) {
	feed := chat.NewFeed()
	feed.Post("A", "before")

	var got []chat.Message
	feed.Subscribe(chat.SinkFunc(func(msg chat.Message) {
		got = append(got, msg)
	}))
	feed.Post("B", "after")

	require.Len(t, got, 1)
	assert.Equal(t, "after", got[0].Text)
}

func Test_Feed_sink_can_read_feed_back(t *testing.T) {
	feed := chat.NewFeed()
	var lens []int
	feed.Subscribe(chat.SinkFunc(func(chat.Message) {
		lens = append(lens, feed.Len())
	}))

	feed.Post("A", "1")
	feed.Post("A", "2")

	assert.Equal(t, []int{1, 2}, lens)
}

func Test_Feed_messages_returns_copy(t *testing.T) {
	feed := chat.NewFeed()
	feed.Post("A", "original")

	snapshot := feed.Messages()
	snapshot[0].Text = "changed"

	assert.Equal(t, "original", feed.Messages()[0].Text)
}

func Test_Feed_tail(t *testing.T) {
	feed := chat.NewFeed()
	for _, text := range []string{"1", "2", "3", "4"} {
		feed.Post("A", text)
	}

	tail := feed.Tail(2)
	require.Len(t, tail, 2)
	assert.Equal(t, "3", tail[0].Text)
	assert.Equal(t, "4", tail[1].Text)

	assert.Len(t, feed.Tail(10), 4)
	assert.Empty(t, feed.Tail(0))
}

func Test_Feed_concurrent_posts_are_all_kept(t *testing.T) {
	feed := chat.NewFeed()
	var notified int
	var mu sync.Mutex
	feed.Subscribe(chat.SinkFunc(func(chat.Message) {
		mu.Lock()
		notified++
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			feed.Post("A", "hi")
			_ = feed.Messages()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, feed.Len())
	assert.Equal(t, 50, notified)
}
