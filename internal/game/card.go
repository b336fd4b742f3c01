package game

import (
	"strings"
)

// Zone names a collection holding card instances for one player.
type Zone string

const (
	ZoneLibrary     Zone = "library"
	ZoneHand        Zone = "hand"
	ZoneBattlefield Zone = "battlefield"
	ZoneGraveyard   Zone = "graveyard"
	ZoneExile       Zone = "exile"
	ZoneCommand     Zone = "command"
)

// zoneOrder is the fixed scan order used when locating an instance.
var zoneOrder = []Zone{ZoneLibrary, ZoneHand, ZoneBattlefield, ZoneGraveyard, ZoneExile, ZoneCommand}

// Valid reports whether z names one of the six zones.
func (z Zone) Valid() bool {
	switch z {
	case ZoneLibrary, ZoneHand, ZoneBattlefield, ZoneGraveyard, ZoneExile, ZoneCommand:
		return true
	}
	return false
}

// Phase is a step of a turn.
type Phase string

const (
	PhaseUntap           Phase = "untap"
	PhaseUpkeep          Phase = "upkeep"
	PhaseDraw            Phase = "draw"
	PhaseMain1           Phase = "main1"
	PhaseCombatBegin     Phase = "combat_begin"
	PhaseCombatAttackers Phase = "combat_attackers"
	PhaseCombatBlockers  Phase = "combat_blockers"
	PhaseCombatDamage    Phase = "combat_damage"
	PhaseCombatEnd       Phase = "combat_end"
	PhaseMain2           Phase = "main2"
	PhaseEnd             Phase = "end"
	PhaseCleanup         Phase = "cleanup"
)

// Valid reports whether p names a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseUntap, PhaseUpkeep, PhaseDraw, PhaseMain1, PhaseCombatBegin,
		PhaseCombatAttackers, PhaseCombatBlockers, PhaseCombatDamage,
		PhaseCombatEnd, PhaseMain2, PhaseEnd, PhaseCleanup:
		return true
	}
	return false
}

// Card is a zone-tracked instance of a catalog card. The static attributes
// are copied from the catalog at creation time; the catalog entry itself is
// referenced by CardID and never owned.
type Card struct {
	InstanceID string `json:"instanceId"`
	CardID     string `json:"cardId"`

	Name       string   `json:"name"`
	ManaCost   string   `json:"mana_cost,omitempty"`
	ManaValue  float64  `json:"cmc"`
	TypeLine   string   `json:"type_line"`
	OracleText string   `json:"oracle_text,omitempty"`
	Power      string   `json:"power,omitempty"`
	Toughness  string   `json:"toughness,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Rarity     string   `json:"rarity"`
	ImageURI   string   `json:"image_uri,omitempty"`

	Zone        Zone           `json:"zone"`
	IsTapped    bool           `json:"isTapped"`
	Counters    map[string]int `json:"counters,omitempty"`
	FaceDown    bool           `json:"faceDown"`
	IsCommander bool           `json:"isCommander"`
}

// IsLand reports whether the card's type line names a land.
func (c *Card) IsLand() bool {
	return strings.Contains(strings.ToLower(c.TypeLine), "land")
}

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	clone := *c
	if c.Colors != nil {
		clone.Colors = append([]string(nil), c.Colors...)
	}
	if c.Counters != nil {
		clone.Counters = make(map[string]int, len(c.Counters))
		for k, v := range c.Counters {
			clone.Counters[k] = v
		}
	}
	return &clone
}
