package chat

import "strings"

// DefaultUsername is the label used for locally typed messages
const DefaultUsername = "You"

// Compose prepares raw input for posting. It trims surrounding whitespace
// and reports false when nothing is left, in which case the input should be
// left as it was.
func Compose(input string) (string, bool) {
	text := strings.TrimSpace(input)
	if text == "" {
		return "", false
	}
	return text, true
}

// Submit posts trimmed input as username and returns what the input field
// should hold afterwards: empty after a post, the original input otherwise.
func Submit(feed *Feed, username, input string) (string, bool) {
	text, ok := Compose(input)
	if !ok {
		return input, false
	}
	feed.Post(username, text)
	return "", true
}
