package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"

	"github.com/yourusername/stream-chat/internal/chat"
)

// PlainChat prints each posted message as one colored line
type PlainChat struct {
	mu             sync.Mutex
	out            io.Writer
	showTimestamps bool
}

// NewPlainChat creates a line-mode front-end writing to out
func NewPlainChat(out io.Writer, showTimestamps bool) *PlainChat {
	return &PlainChat{out: out, showTimestamps: showTimestamps}
}

// Consume writes msg as "username: text"
func (p *PlainChat) Consume(msg chat.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, FormatPlain(msg, p.showTimestamps))
}

// FormatPlain colors the username with its palette hex value
func FormatPlain(msg chat.Message, showTimestamp bool) string {
	line := color.HEX(string(msg.Color())).Sprint(msg.Username) + msg.Body()
	if showTimestamp {
		line = msg.PostedAt.Format("15:04") + " " + line
	}
	return line
}

// ReadSubmissions sends every input line to loop until in is exhausted
// or ctx is done. Each line is one submission. The scanner runs in its own
// goroutine so a cancelled ctx returns at once even while a read is pending;
// that goroutine exits when in is closed.
func ReadSubmissions(ctx context.Context, in io.Reader, loop *chat.Loop) error {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			loop.Send(chat.SubmitEvent{Input: line})
		}
	}
}
