package multiplayer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// rejectionWindow is how long a server rejection stays visible before it
// clears itself.
const rejectionWindow = 3 * time.Second

// Store mirrors server-authoritative multiplayer state. It never computes
// game logic: inbound messages replace or patch its view, and user actions
// only become outbound intent messages. The inbound handler is the sole
// writer of game fields.
type Store struct {
	mu     sync.Mutex
	logger *zap.Logger

	channel Channel
	window  time.Duration

	status    Status
	lastError string

	gameCode       string
	players        []PlayerInfo
	gameState      *GameStateView
	gameOver       bool
	gameOverReason string

	actionError string
	rejectionID int

	subscribers []func()
}

// NewStore creates a store owning the given channel. The channel is the
// store's resource: Disconnect is the single teardown path.
func NewStore(channel Channel, logger *zap.Logger) *Store {
	return &Store{
		channel: channel,
		logger:  logger,
		window:  rejectionWindow,
		status:  StatusDisconnected,
	}
}

// Subscribe registers fn to run after every state change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Status returns the connection status.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// GameCode returns the joinable code of the current game, if any.
func (s *Store) GameCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameCode
}

// Players returns the lobby player list.
func (s *Store) Players() []PlayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players
}

// GameState returns the last snapshot the server pushed, or nil.
func (s *Store) GameState() *GameStateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameState
}

// ActionError returns the transient rejection message, empty once cleared.
func (s *Store) ActionError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actionError
}

// LastError returns the most recent channel or server error.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// GameOver reports whether the server ended the game, and why.
func (s *Store) GameOver() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver, s.gameOverReason
}

// Connect opens the channel. It is the only transition into connecting.
func (s *Store) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.status == StatusConnecting || s.status == StatusConnected {
		s.mu.Unlock()
		return nil
	}
	s.status = StatusConnecting
	s.mu.Unlock()
	s.notify()

	err := s.channel.Connect(ctx, Events{
		OnOpen:    s.handleOpen,
		OnMessage: s.handleMessage,
		OnError:   s.handleChannelError,
		OnClosed:  s.handleClosed,
	})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

// Disconnect tears the channel down and resets all multiplayer state to its
// initial values. Safe to call repeatedly.
func (s *Store) Disconnect() {
	s.mu.Lock()
	channel := s.channel
	s.status = StatusDisconnected
	s.lastError = ""
	s.gameCode = ""
	s.players = nil
	s.gameState = nil
	s.gameOver = false
	s.gameOverReason = ""
	s.actionError = ""
	s.rejectionID++
	s.mu.Unlock()

	if channel != nil {
		if err := channel.Close(); err != nil {
			s.logger.Debug("channel close", zap.Error(err))
		}
	}
	s.notify()
}

func (s *Store) handleOpen() {
	s.mu.Lock()
	s.status = StatusConnected
	s.lastError = ""
	s.mu.Unlock()
	s.logger.Info("multiplayer channel connected")
	s.notify()
}

func (s *Store) handleChannelError(err error) {
	s.mu.Lock()
	s.status = StatusError
	s.lastError = err.Error()
	s.mu.Unlock()
	s.logger.Warn("multiplayer channel error", zap.Error(err))
	s.notify()
}

func (s *Store) handleClosed() {
	s.mu.Lock()
	if s.status != StatusError {
		s.status = StatusDisconnected
	}
	s.mu.Unlock()
	s.notify()
}

// handleMessage dispatches one inbound message. The switch is exhaustive
// over MessageType; an unrecognized tag is logged and dropped.
func (s *Store) handleMessage(msg InboundMessage) {
	s.mu.Lock()
	switch msg.Type {
	case MsgGameCreated:
		s.gameCode = msg.GameCode
		s.gameOver = false
		s.gameOverReason = ""
	case MsgPlayerJoined, MsgPlayerLeft:
		s.players = msg.Players
	case MsgGameStateUpdate:
		// Full replacement: the server's view always wins.
		s.gameState = msg.GameState
	case MsgActionRejected:
		s.actionError = msg.Reason
		s.rejectionID++
		id := s.rejectionID
		time.AfterFunc(s.window, func() { s.clearRejection(id) })
	case MsgGameOver:
		s.gameOver = true
		s.gameOverReason = msg.Reason
	case MsgLeftGame:
		s.gameCode = ""
		s.players = nil
		s.gameState = nil
		s.gameOver = false
		s.gameOverReason = ""
	case MsgError:
		s.lastError = msg.Message
	default:
		s.logger.Warn("unrecognized message type", zap.String("type", string(msg.Type)))
	}
	s.mu.Unlock()
	s.notify()
}

// clearRejection clears the transient rejection unless a newer one arrived.
func (s *Store) clearRejection(id int) {
	s.mu.Lock()
	if s.rejectionID != id {
		s.mu.Unlock()
		return
	}
	s.actionError = ""
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	subscribers := append([]func(){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn()
	}
}

// CreateGame asks the server to open a new game room.
func (s *Store) CreateGame(deckID string, maxPlayers int) error {
	return s.send(OutboundMessage{Type: OutCreateGame, DeckID: deckID, MaxPlayers: maxPlayers})
}

// JoinGame asks the server to seat us in an existing room.
func (s *Store) JoinGame(gameCode, deckID string) error {
	return s.send(OutboundMessage{Type: OutJoinGame, GameCode: gameCode, DeckID: deckID})
}

// LeaveGame asks the server to remove us from the current room.
func (s *Store) LeaveGame() error {
	return s.send(OutboundMessage{Type: OutLeaveGame})
}

// SendAction transmits one game intent. Fire-and-forget: the store does not
// wait for the resulting state update, and a rejection arrives as its own
// message.
func (s *Store) SendAction(action ActionRequest) error {
	return s.send(OutboundMessage{Type: OutGameAction, Action: &action})
}

func (s *Store) send(msg OutboundMessage) error {
	s.mu.Lock()
	status := s.status
	s.mu.Unlock()
	if status != StatusConnected {
		return fmt.Errorf("not connected")
	}
	if err := s.channel.Send(msg); err != nil {
		return fmt.Errorf("send %s: %w", msg.Type, err)
	}
	return nil
}
