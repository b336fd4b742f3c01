package game

import (
	"github.com/google/uuid"

	"github.com/mtgbuilder/tabletop-go/internal/game/mana"
)

// Format is a deck construction format. It decides the starting life total.
type Format string

const (
	FormatStandard  Format = "Standard"
	FormatModern    Format = "Modern"
	FormatCommander Format = "Commander"
	FormatBrawl     Format = "Brawl"
)

// StartingLife returns the format's starting life total.
func (f Format) StartingLife() int {
	switch f {
	case FormatCommander, FormatBrawl:
		return 40
	default:
		return 20
	}
}

// Player holds one player's complete play state. The library is ordered; the
// remaining zones preserve insertion order.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DeckID   string `json:"deck_id,omitempty"`
	DeckName string `json:"deck_name,omitempty"`

	Life            int            `json:"life"`
	Poison          int            `json:"poison"`
	CommanderDamage map[string]int `json:"commanderDamage"`
	ManaPool        mana.Pool      `json:"manaPool"`

	Library     []*Card `json:"library"`
	Hand        []*Card `json:"hand"`
	Battlefield []*Card `json:"battlefield"`
	Graveyard   []*Card `json:"graveyard"`
	Exile       []*Card `json:"exile"`
	Command     []*Card `json:"command"`

	MulliganCount   int  `json:"mulligan_count"`
	HasDrawnOpening bool `json:"has_drawn_opening"`
	IsReady         bool `json:"is_ready"`
}

// ZoneCards returns the player's collection for the given zone.
func (p *Player) ZoneCards(zone Zone) []*Card {
	switch zone {
	case ZoneLibrary:
		return p.Library
	case ZoneHand:
		return p.Hand
	case ZoneBattlefield:
		return p.Battlefield
	case ZoneGraveyard:
		return p.Graveyard
	case ZoneExile:
		return p.Exile
	case ZoneCommand:
		return p.Command
	default:
		return nil
	}
}

func (p *Player) setZone(zone Zone, cards []*Card) {
	switch zone {
	case ZoneLibrary:
		p.Library = cards
	case ZoneHand:
		p.Hand = cards
	case ZoneBattlefield:
		p.Battlefield = cards
	case ZoneGraveyard:
		p.Graveyard = cards
	case ZoneExile:
		p.Exile = cards
	case ZoneCommand:
		p.Command = cards
	}
}

// FindCard locates an instance across all zones in fixed scan order.
func (p *Player) FindCard(instanceID string) (*Card, Zone) {
	for _, zone := range zoneOrder {
		for _, card := range p.ZoneCards(zone) {
			if card.InstanceID == instanceID {
				return card, zone
			}
		}
	}
	return nil, ""
}

// removeCard removes an instance from whatever zone holds it and returns it.
func (p *Player) removeCard(instanceID string) (*Card, Zone) {
	for _, zone := range zoneOrder {
		cards := p.ZoneCards(zone)
		for i, card := range cards {
			if card.InstanceID == instanceID {
				p.setZone(zone, append(cards[:i:i], cards[i+1:]...))
				return card, zone
			}
		}
	}
	return nil, ""
}

// CardCount returns the total number of instances across all zones.
func (p *Player) CardCount() int {
	total := 0
	for _, zone := range zoneOrder {
		total += len(p.ZoneCards(zone))
	}
	return total
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	clone := *p
	if p.CommanderDamage != nil {
		clone.CommanderDamage = make(map[string]int, len(p.CommanderDamage))
		for k, v := range p.CommanderDamage {
			clone.CommanderDamage[k] = v
		}
	}
	for _, zone := range zoneOrder {
		cards := p.ZoneCards(zone)
		cloned := make([]*Card, len(cards))
		for i, card := range cards {
			cloned[i] = card.Clone()
		}
		clone.setZone(zone, cloned)
	}
	return &clone
}

// State is the complete single-player game state. It is treated as immutable
// outside the store: every operation clones it, applies a reduction, and
// swaps the store's pointer.
type State struct {
	ID         string   `json:"id"`
	DeckID     string   `json:"deck_id"`
	Format     Format   `json:"format"`
	Player     *Player  `json:"player"`
	TurnNumber int      `json:"turn_number"`
	Phase      Phase    `json:"phase"`
	Log        []Action `json:"history"`
	Started    bool     `json:"started"`
}

// newState builds the initial state for a deck: library expanded and
// shuffled, commanders in the command zone, life per format.
func newState(deck Deck) *State {
	library, command := ExpandDeck(deck.Entries)
	player := &Player{
		ID:              uuid.NewString(),
		Name:            "Player",
		DeckID:          deck.ID,
		DeckName:        deck.Name,
		Life:            deck.Format.StartingLife(),
		CommanderDamage: make(map[string]int),
		Library:         Shuffle(library),
		Command:         command,
	}
	return &State{
		ID:     uuid.NewString(),
		DeckID: deck.ID,
		Format: deck.Format,
		Player: player,
		Phase:  PhaseMain1,
	}
}

// Clone returns a deep copy of the state. The log is shared structurally:
// entries are immutable and only ever appended.
func (s *State) Clone() *State {
	clone := *s
	clone.Player = s.Player.Clone()
	clone.Log = append([]Action(nil), s.Log...)
	return &clone
}
