package game

import (
	"sync"

	"go.uber.org/zap"
)

// Store owns the single-player game state. Every operation is synchronous:
// it clones the current state, applies a reduction, appends the log entry,
// swaps the state pointer, and notifies subscribers before returning.
// Operations on a stale instance id or with no active game leave the state
// unchanged and signal nothing; callers observe the same state they had.
type Store struct {
	mu          sync.Mutex
	logger      *zap.Logger
	state       *State
	subscribers []func(*State)
}

// NewStore creates an empty store. No game is active until InitGame.
func NewStore(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// State returns the current state snapshot, or nil when no game is active.
// The returned value must be treated as immutable.
func (s *Store) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with each new state the store
// publishes. If a game is active, fn is invoked immediately. Subscribers
// run outside the store lock, so they may call back into the store.
func (s *Store) Subscribe(fn func(*State)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	state := s.state
	s.mu.Unlock()
	if state != nil {
		fn(state)
	}
}

// InitGame starts a fresh solitaire session from a deck list, replacing any
// existing game.
func (s *Store) InitGame(deck Deck) {
	s.mu.Lock()

	state := newState(deck)
	action := newAction(ActionInitGame)
	action.Detail = deck.Name
	state.Log = append(state.Log, action)

	s.state = state
	s.logger.Info("game initialized",
		zap.String("game_id", state.ID),
		zap.String("deck_id", deck.ID),
		zap.String("format", string(deck.Format)),
		zap.Int("library_size", len(state.Player.Library)),
	)
	s.mu.Unlock()
	s.notify(state)
}

// Reset destroys the current game.
func (s *Store) Reset() {
	s.mu.Lock()
	if s.state == nil {
		s.mu.Unlock()
		return
	}
	s.logger.Info("game reset", zap.String("game_id", s.state.ID))
	s.state = nil
	s.mu.Unlock()
	s.notify(nil)
}

// apply runs one reducer against a clone of the current state. The reducer
// returns the log entry to append and whether anything changed; a false
// return discards the clone, leaving the published state untouched.
func (s *Store) apply(op string, reduce func(*State) (*Action, bool)) {
	s.mu.Lock()

	if s.state == nil {
		s.mu.Unlock()
		s.logger.Debug("operation ignored, no active game", zap.String("op", op))
		return
	}

	next := s.state.Clone()
	action, ok := reduce(next)
	if !ok {
		s.mu.Unlock()
		s.logger.Debug("operation was a no-op", zap.String("op", op))
		return
	}
	if action != nil {
		next.Log = append(next.Log, *action)
	}

	s.state = next
	s.mu.Unlock()
	s.notify(next)
}

// notify delivers state to every subscriber without holding the lock, so
// subscribers are free to call back into the store.
func (s *Store) notify(state *State) {
	s.mu.Lock()
	subscribers := append([]func(*State){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(state)
	}
}
