package multiplayer

import (
	"context"
)

// Status is the connection state of the real-time channel.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusError        Status = "error"
)

// Events are the channel lifecycle callbacks. The channel invokes OnMessage
// once per inbound message, in arrival order, from a single goroutine.
type Events struct {
	OnOpen    func()
	OnMessage func(InboundMessage)
	OnError   func(error)
	OnClosed  func()
}

// Channel is the abstract transport the multiplayer store owns. Framing,
// reconnect policy, and heartbeats are the implementation's concern; the
// store only sends intents and receives messages.
type Channel interface {
	// Connect establishes the channel and registers the lifecycle
	// callbacks. It returns once the connection attempt resolves.
	Connect(ctx context.Context, events Events) error
	// Send transmits one message. It never waits for acknowledgement.
	Send(msg OutboundMessage) error
	// Close tears the channel down. It is idempotent.
	Close() error
}
