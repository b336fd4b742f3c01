package game

import (
	"time"

	"github.com/google/uuid"
)

// ActionKind tags an entry in the game log. The set is closed: adding a kind
// means updating every exhaustive switch over it.
type ActionKind string

const (
	ActionInitGame        ActionKind = "init_game"
	ActionDrawCard        ActionKind = "draw_card"
	ActionDrawOpeningHand ActionKind = "draw_opening_hand"
	ActionMulligan        ActionKind = "mulligan"
	ActionKeepHand        ActionKind = "keep_hand"
	ActionStartGame       ActionKind = "start_game"
	ActionPlay            ActionKind = "play"
	ActionCast            ActionKind = "cast"
	ActionDestroy         ActionKind = "destroy"
	ActionExile           ActionKind = "exile"
	ActionReturn          ActionKind = "return"
	ActionDiscard         ActionKind = "discard"
	ActionTap             ActionKind = "tap"
	ActionUntap           ActionKind = "untap"
	ActionTapForMana      ActionKind = "tap_for_mana"
	ActionUntapAll        ActionKind = "untap_all"
	ActionAddMana         ActionKind = "add_mana"
	ActionRemoveMana      ActionKind = "remove_mana"
	ActionClearManaPool   ActionKind = "clear_mana_pool"
	ActionShuffleLibrary  ActionKind = "shuffle_library"
	ActionMill            ActionKind = "mill"
	ActionUpdateLife      ActionKind = "update_life"
	ActionAddCounter      ActionKind = "add_counter"
	ActionRemoveCounter   ActionKind = "remove_counter"
	ActionNextTurn        ActionKind = "next_turn"
	ActionSetPhase        ActionKind = "set_phase"
	ActionReorderTop      ActionKind = "reorder_top"
)

// Action is an immutable entry in the append-only game log.
type Action struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	Kind       ActionKind `json:"type"`
	InstanceID string     `json:"cardInstanceId,omitempty"`
	FromZone   Zone       `json:"fromZone,omitempty"`
	ToZone     Zone       `json:"toZone,omitempty"`
	Detail     string     `json:"details,omitempty"`
}

// moveActionKind derives the logged kind from a move's destination.
func moveActionKind(to Zone) ActionKind {
	switch to {
	case ZoneGraveyard:
		return ActionDestroy
	case ZoneExile:
		return ActionExile
	case ZoneHand:
		return ActionReturn
	default:
		return ActionPlay
	}
}

func newAction(kind ActionKind) Action {
	return Action{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Kind:      kind,
	}
}
