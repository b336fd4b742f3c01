package deckapi

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Saver debounces deck persistence with a trailing delay: each Schedule
// resets the wait window, so a burst of edits produces a single save of the
// final state. Flush exists for session end, when the last edit must not be
// lost to a pending timer.
type Saver struct {
	mu      sync.Mutex
	client  *Client
	logger  *zap.Logger
	delay   time.Duration
	timer   *time.Timer
	pending *Deck
	stopped bool
}

// NewSaver creates a saver pushing through the given client.
func NewSaver(client *Client, delay time.Duration, logger *zap.Logger) *Saver {
	return &Saver{client: client, logger: logger, delay: delay}
}

// Schedule records deck as the state to persist and restarts the wait
// window. Only the most recently scheduled deck is ever saved.
func (s *Saver) Schedule(deck Deck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.pending = &deck
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *Saver) fire() {
	s.mu.Lock()
	deck := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if deck == nil {
		return
	}
	if _, err := s.client.UpdateDeck(context.Background(), *deck); err != nil {
		s.logger.Warn("debounced deck save failed",
			zap.String("deck_id", deck.ID),
			zap.Error(err),
		)
	}
}

// Flush synchronously saves any pending deck, cancelling the timer. Use at
// session end to guarantee delivery of the last edit.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	deck := s.pending
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if deck == nil {
		return nil
	}
	_, err := s.client.UpdateDeck(ctx, *deck)
	return err
}

// Stop cancels any pending save and refuses further scheduling. Idempotent.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
