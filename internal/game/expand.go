package game

import (
	"github.com/google/uuid"
)

// DeckEntry is one quantity-bearing line of a deck list.
type DeckEntry struct {
	CardID      string
	Name        string
	ManaCost    string
	ManaValue   float64
	TypeLine    string
	OracleText  string
	Power       string
	Toughness   string
	Colors      []string
	Rarity      string
	ImageURI    string
	Quantity    int
	IsCommander bool
}

// Deck is the engine's view of a deck list: just enough to start a game.
type Deck struct {
	ID      string
	Name    string
	Format  Format
	Entries []DeckEntry
}

// ExpandEntries expands deck entries into individual card instances in the
// given zone, respecting quantity. Each instance gets a fresh id, enters
// untapped and face up with no counters.
func ExpandEntries(entries []DeckEntry, zone Zone) []*Card {
	var cards []*Card
	for _, entry := range entries {
		quantity := entry.Quantity
		if quantity < 1 {
			quantity = 1
		}
		for i := 0; i < quantity; i++ {
			cards = append(cards, newInstance(entry, zone))
		}
	}
	return cards
}

// ExpandDeck expands a full deck list: commander-flagged entries go to the
// command zone, everything else becomes library contents.
func ExpandDeck(entries []DeckEntry) (library, command []*Card) {
	var commanders, rest []DeckEntry
	for _, entry := range entries {
		if entry.IsCommander {
			commanders = append(commanders, entry)
		} else {
			rest = append(rest, entry)
		}
	}
	return ExpandEntries(rest, ZoneLibrary), ExpandEntries(commanders, ZoneCommand)
}

func newInstance(entry DeckEntry, zone Zone) *Card {
	return &Card{
		InstanceID:  uuid.NewString(),
		CardID:      entry.CardID,
		Name:        entry.Name,
		ManaCost:    entry.ManaCost,
		ManaValue:   entry.ManaValue,
		TypeLine:    entry.TypeLine,
		OracleText:  entry.OracleText,
		Power:       entry.Power,
		Toughness:   entry.Toughness,
		Colors:      append([]string(nil), entry.Colors...),
		Rarity:      entry.Rarity,
		ImageURI:    entry.ImageURI,
		Zone:        zone,
		IsCommander: entry.IsCommander,
	}
}
