package multiplayer

import (
	"github.com/mtgbuilder/tabletop-go/internal/game"
	"github.com/mtgbuilder/tabletop-go/internal/game/mana"
)

// MessageType tags a server → client message. The set is closed; the store
// dispatches over it exhaustively.
type MessageType string

const (
	MsgGameCreated     MessageType = "game_created"
	MsgPlayerJoined    MessageType = "player_joined"
	MsgPlayerLeft      MessageType = "player_left"
	MsgGameStateUpdate MessageType = "game_state_update"
	MsgActionRejected  MessageType = "action_rejected"
	MsgGameOver        MessageType = "game_over"
	MsgLeftGame        MessageType = "left_game"
	MsgError           MessageType = "error"
)

// OutboundType tags a client → server message.
type OutboundType string

const (
	OutCreateGame OutboundType = "create_game"
	OutJoinGame   OutboundType = "join_game"
	OutLeaveGame  OutboundType = "leave_game"
	OutGameAction OutboundType = "game_action"
)

// ActionType is the closed set of game intents a client can request. The
// server validates and applies them; the client never applies them locally.
type ActionType string

const (
	ActionDrawCard        ActionType = "draw_card"
	ActionDrawOpeningHand ActionType = "draw_opening_hand"
	ActionPlayCard        ActionType = "play_card"
	ActionMoveCard        ActionType = "move_card"
	ActionDiscardCard     ActionType = "discard_card"
	ActionTapCard         ActionType = "tap_card"
	ActionTapForMana      ActionType = "tap_for_mana"
	ActionUntapAll        ActionType = "untap_all"
	ActionNextTurn        ActionType = "next_turn"
	ActionSetPhase        ActionType = "set_phase"
	ActionUpdateLife      ActionType = "update_life"
	ActionAddMana         ActionType = "add_mana"
	ActionRemoveMana      ActionType = "remove_mana"
	ActionClearManaPool   ActionType = "clear_mana_pool"
	ActionShuffleLibrary  ActionType = "shuffle_library"
	ActionMill            ActionType = "mill"
	ActionAddCounter      ActionType = "add_counter"
	ActionRemoveCounter   ActionType = "remove_counter"
	ActionMulligan        ActionType = "mulligan"
	ActionKeepHand        ActionType = "keep_hand"
)

// PlayerInfo is the lobby view of a player.
type PlayerInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	DeckName string `json:"deck_name,omitempty"`
	Ready    bool   `json:"ready"`
}

// PlayerView is the server's per-player snapshot. Hidden zones arrive
// redacted for opponents: their hand and library are empty with only the
// counts populated.
type PlayerView struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Life            int            `json:"life"`
	Poison          int            `json:"poison"`
	CommanderDamage map[string]int `json:"commanderDamage"`
	ManaPool        mana.Pool      `json:"manaPool"`
	Battlefield     []*game.Card   `json:"battlefield"`
	Graveyard       []*game.Card   `json:"graveyard"`
	Exile           []*game.Card   `json:"exile"`
	Command         []*game.Card   `json:"command"`
	Hand            []*game.Card   `json:"hand"`
	Library         []*game.Card   `json:"library"`
	HandCount       int            `json:"hand_count,omitempty"`
	LibraryCount    int            `json:"library_count,omitempty"`
}

// GameStateView is the authoritative snapshot the server pushes. The client
// stores it whole and never repairs or recomputes it.
type GameStateView struct {
	ID             string        `json:"id"`
	GameCode       string        `json:"game_code"`
	Format         string        `json:"format"`
	Players        []PlayerView  `json:"players"`
	ActivePlayerID string        `json:"active_player_id"`
	TurnNumber     int           `json:"turn_number"`
	Phase          game.Phase    `json:"phase"`
	TurnOrder      []string      `json:"turn_order"`
	Started        bool          `json:"started"`
	History        []game.Action `json:"history"`
}

// InboundMessage is the envelope for server → client messages. Which fields
// are populated depends on Type.
type InboundMessage struct {
	Type      MessageType    `json:"type"`
	GameCode  string         `json:"game_code,omitempty"`
	Players   []PlayerInfo   `json:"players,omitempty"`
	GameState *GameStateView `json:"game_state,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// ActionRequest is the payload of a game_action message: one shape shared by
// every action kind, with only the fields that kind needs populated.
type ActionRequest struct {
	Action      ActionType `json:"action"`
	InstanceID  string     `json:"instance_id,omitempty"`
	ToZone      game.Zone  `json:"to_zone,omitempty"`
	Color       mana.Color `json:"color,omitempty"`
	Amount      int        `json:"amount,omitempty"`
	Count       int        `json:"count,omitempty"`
	Phase       game.Phase `json:"phase,omitempty"`
	Change      int        `json:"change,omitempty"`
	CounterType string     `json:"counter_type,omitempty"`
}

// OutboundMessage is the envelope for client → server messages.
type OutboundMessage struct {
	Type       OutboundType   `json:"type"`
	DeckID     string         `json:"deck_id,omitempty"`
	GameCode   string         `json:"game_code,omitempty"`
	MaxPlayers int            `json:"max_players,omitempty"`
	Action     *ActionRequest `json:"action,omitempty"`
}
