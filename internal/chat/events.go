package chat

// Event is something the chat loop reacts to
type Event interface {
	isEvent()
}

// SubmitEvent is sent when the user presses enter on the input
type SubmitEvent struct {
	Input string
}

func (SubmitEvent) isEvent() {}

// CannedEvent is sent when a scripted message's timer fires
type CannedEvent struct {
	Message CannedMessage
}

func (CannedEvent) isEvent() {}
