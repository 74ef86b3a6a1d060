// Package gateway defines the boundary contract between the ordering core
// and whatever messaging transport delivers user events. The core never
// talks to a chat network directly: a transport adapter turns its own
// updates into Events and renders Replies back to the user.
package gateway

import "context"

// Event is a single inbound user interaction. Exactly one of Command,
// Selection or Text is meaningful per event.
type Event struct {
	UserID   int64
	Username string

	// Command is a slash-command name without the slash ("start", "admin")
	Command string

	// Selection is an opaque button token produced by an earlier Reply
	Selection string

	// Text is a free-text message, routed by the user's conversation state
	Text string
}

// Choice is one button offered to the user. Token round-trips back as
// Event.Selection when pressed.
type Choice struct {
	Label string
	Token string
}

// Reply is the structured outbound response rendered by the transport.
type Reply struct {
	Text     string
	Choices  []Choice
	ImageURL string
}

// Sender pushes a reply to a user outside the request/response cycle.
// Staff notifications go through this.
type Sender interface {
	Send(ctx context.Context, userID int64, reply Reply) error
}
