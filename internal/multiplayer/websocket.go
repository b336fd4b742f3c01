package multiplayer

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebsocketChannel is the default Channel implementation, speaking JSON
// envelopes over a websocket.
type WebsocketChannel struct {
	url    string
	logger *zap.Logger

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// NewWebsocketChannel creates a channel that will dial the given URL.
func NewWebsocketChannel(url string, logger *zap.Logger) *WebsocketChannel {
	return &WebsocketChannel{url: url, logger: logger}
}

// Connect dials the server and starts the read pump. Lifecycle callbacks
// fire from the pump goroutine, so messages are delivered in arrival order.
func (w *WebsocketChannel) Connect(ctx context.Context, events Events) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, w.url, nil)
	if err != nil {
		if events.OnError != nil {
			events.OnError(err)
		}
		return fmt.Errorf("dial %s: %w", w.url, err)
	}

	w.mu.Lock()
	w.conn = conn
	w.closed = false
	w.mu.Unlock()

	if events.OnOpen != nil {
		events.OnOpen()
	}

	go w.readPump(conn, events)
	return nil
}

func (w *WebsocketChannel) readPump(conn *websocket.Conn, events Events) {
	for {
		var msg InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			w.mu.Lock()
			closed := w.closed
			w.mu.Unlock()

			if !closed {
				w.logger.Warn("websocket read failed", zap.Error(err))
				if events.OnError != nil {
					events.OnError(err)
				}
			}
			if events.OnClosed != nil {
				events.OnClosed()
			}
			return
		}
		if events.OnMessage != nil {
			events.OnMessage(msg)
		}
	}
}

// Send writes one JSON message to the socket.
func (w *WebsocketChannel) Send(msg OutboundMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil || w.closed {
		return fmt.Errorf("channel is not connected")
	}
	return w.conn.WriteJSON(msg)
}

// Close shuts the socket down. Safe to call repeatedly.
func (w *WebsocketChannel) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.conn == nil {
		return nil
	}
	w.closed = true
	return w.conn.Close()
}
