package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mtgbuilder/tabletop-go/internal/game/mana"
)

func testDeck(format Format) Deck {
	return Deck{
		ID:     "deck-1",
		Name:   "Test Deck",
		Format: format,
		Entries: []DeckEntry{
			{CardID: "forest", Name: "Forest", TypeLine: "Basic Land — Forest", Quantity: 10},
			{CardID: "elves", Name: "Llanowar Elves", ManaCost: "{G}", ManaValue: 1, TypeLine: "Creature — Elf Druid", Power: "1", Toughness: "1", Quantity: 5},
			{CardID: "bears", Name: "Grizzly Bears", ManaCost: "{1}{G}", ManaValue: 2, TypeLine: "Creature — Bear", Power: "2", Toughness: "2", Quantity: 5},
		},
	}
}

func newTestStore(t *testing.T, format Format) *Store {
	t.Helper()
	store := NewStore(zap.NewNop())
	store.InitGame(testDeck(format))
	return store
}

func TestInitGameStartingLife(t *testing.T) {
	assert.Equal(t, 20, newTestStore(t, FormatStandard).State().Player.Life)
	assert.Equal(t, 40, newTestStore(t, FormatCommander).State().Player.Life)
	assert.Equal(t, 40, newTestStore(t, FormatBrawl).State().Player.Life)
}

func TestInitGameExpandsLibrary(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	state := store.State()

	assert.Len(t, state.Player.Library, 20)
	assert.Empty(t, state.Player.Hand)
	assert.False(t, state.Started)
	assert.Equal(t, 0, state.TurnNumber)
}

func TestOperationsWithoutGameAreNoOps(t *testing.T) {
	store := NewStore(zap.NewNop())

	assert.NotPanics(t, func() {
		store.DrawCard()
		store.MoveCard("x", ZoneGraveyard)
		store.NextTurn()
		store.Reset()
	})
	assert.Nil(t, store.State())
}

func TestDrawOpeningHand(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawOpeningHand()

	state := store.State()
	assert.Len(t, state.Player.Hand, 7)
	assert.Len(t, state.Player.Library, 13)
	for _, card := range state.Player.Hand {
		assert.Equal(t, ZoneHand, card.Zone)
	}
}

func TestMulliganShrinksHand(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawOpeningHand()

	for k := 1; k <= 8; k++ {
		store.Mulligan()
		expected := 7 - k
		if expected < 0 {
			expected = 0
		}
		state := store.State()
		assert.Len(t, state.Player.Hand, expected, "after %d mulligans", k)
		assert.Equal(t, k, state.Player.MulliganCount)
		// Cards never leak: hand + library always covers the full deck.
		assert.Equal(t, 20, len(state.Player.Hand)+len(state.Player.Library))
	}
}

func TestKeepHandStartsGame(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawOpeningHand()
	store.KeepHand()

	state := store.State()
	assert.True(t, state.Started)
	assert.Equal(t, 1, state.TurnNumber)
	assert.Equal(t, PhaseMain1, state.Phase)
}

func TestDrawCard(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	top := store.State().Player.Library[0]

	store.DrawCard()
	state := store.State()
	require.Len(t, state.Player.Hand, 1)
	assert.Equal(t, top.InstanceID, state.Player.Hand[0].InstanceID)
	assert.Equal(t, ZoneHand, state.Player.Hand[0].Zone)
}

func TestDrawFromEmptyLibraryIsNoOp(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.Mill(20)
	logLen := len(store.State().Log)

	store.DrawCard()
	state := store.State()
	assert.Empty(t, state.Player.Hand)
	assert.Len(t, state.Log, logLen, "no-op must not append an action")
}

func TestMoveCardToGraveyard(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawOpeningHand()
	card := store.State().Player.Hand[0]
	before := store.State().Player.CardCount()

	store.MoveCard(card.InstanceID, ZoneGraveyard)

	state := store.State()
	assert.Equal(t, before, state.Player.CardCount(), "moves must conserve cards")
	require.Len(t, state.Player.Graveyard, 1)
	assert.Equal(t, card.InstanceID, state.Player.Graveyard[0].InstanceID)

	last := state.Log[len(state.Log)-1]
	assert.Equal(t, ActionDestroy, last.Kind)
	assert.Equal(t, ZoneHand, last.FromZone)
	assert.Equal(t, ZoneGraveyard, last.ToZone)
	assert.Equal(t, card.InstanceID, last.InstanceID)
}

func TestMoveCardKindsByDestination(t *testing.T) {
	tests := []struct {
		to   Zone
		kind ActionKind
	}{
		{ZoneGraveyard, ActionDestroy},
		{ZoneExile, ActionExile},
		{ZoneHand, ActionReturn},
		{ZoneBattlefield, ActionPlay},
	}

	for _, tt := range tests {
		t.Run(string(tt.to), func(t *testing.T) {
			store := newTestStore(t, FormatStandard)
			store.DrawCard()
			card := store.State().Player.Hand[0]

			store.MoveCard(card.InstanceID, tt.to)
			log := store.State().Log
			assert.Equal(t, tt.kind, log[len(log)-1].Kind)
		})
	}
}

func TestMoveCardUntapsEnteringHandOrLibrary(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawCard()
	card := store.State().Player.Hand[0]

	store.MoveCard(card.InstanceID, ZoneBattlefield)
	store.TapCard(card.InstanceID)
	require.True(t, store.State().Player.Battlefield[0].IsTapped)

	store.MoveCard(card.InstanceID, ZoneHand)
	state := store.State()
	require.Len(t, state.Player.Hand, 1)
	assert.False(t, state.Player.Hand[0].IsTapped)
}

func TestMoveUnknownInstanceIsSilentNoOp(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	before := store.State()

	store.MoveCard("not-a-real-id", ZoneGraveyard)
	after := store.State()
	assert.Same(t, before, after, "unknown id must leave the published state untouched")
}

func TestDiscardOnlyFromHand(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawCard()
	card := store.State().Player.Hand[0]
	store.PlayCard(card.InstanceID)

	// Card is on the battlefield now; discard must not find it.
	store.DiscardCard(card.InstanceID)
	state := store.State()
	assert.Empty(t, state.Player.Graveyard)
	assert.Len(t, state.Player.Battlefield, 1)
}

func TestTapCardToggles(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawCard()
	card := store.State().Player.Hand[0]
	store.PlayCard(card.InstanceID)

	store.TapCard(card.InstanceID)
	assert.True(t, store.State().Player.Battlefield[0].IsTapped)

	store.TapCard(card.InstanceID)
	assert.False(t, store.State().Player.Battlefield[0].IsTapped)
}

func TestTapForMana(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawCard()
	card := store.State().Player.Hand[0]
	store.PlayCard(card.InstanceID)

	store.TapForMana(card.InstanceID, mana.Green)
	state := store.State()
	assert.True(t, state.Player.Battlefield[0].IsTapped)
	assert.Equal(t, 1, state.Player.ManaPool.Get(mana.Green))

	// Tapped cards produce nothing further.
	store.TapForMana(card.InstanceID, mana.Green)
	assert.Equal(t, 1, store.State().Player.ManaPool.Get(mana.Green))
}

func TestManaPoolOperations(t *testing.T) {
	store := newTestStore(t, FormatStandard)

	store.AddMana(mana.Red, 3)
	assert.Equal(t, 3, store.State().Player.ManaPool.Get(mana.Red))

	store.RemoveMana(mana.Red, 5)
	assert.Equal(t, 0, store.State().Player.ManaPool.Get(mana.Red), "remove floors at zero")

	store.AddMana(mana.Blue, 2)
	store.ClearManaPool()
	assert.Equal(t, 0, store.State().Player.ManaPool.Total())
}

func TestCastCard(t *testing.T) {
	store := NewStore(zap.NewNop())
	store.InitGame(Deck{
		ID:     "deck-2",
		Name:   "Bears",
		Format: FormatStandard,
		Entries: []DeckEntry{
			{CardID: "bears", Name: "Grizzly Bears", ManaCost: "{1}{G}", ManaValue: 2, TypeLine: "Creature — Bear", Quantity: 10},
		},
	})
	store.DrawOpeningHand()
	bears := store.State().Player.Hand[0]

	err := store.CastCard(bears.InstanceID, mana.Pool{})
	require.Error(t, err, "empty pool cannot cast")
	assert.Empty(t, store.State().Player.Battlefield)

	store.AddMana(mana.Green, 2)
	require.NoError(t, store.CastCard(bears.InstanceID, mana.Pool{}))

	state := store.State()
	require.Len(t, state.Player.Battlefield, 1)
	assert.Equal(t, bears.InstanceID, state.Player.Battlefield[0].InstanceID)
	assert.Equal(t, 0, state.Player.ManaPool.Total())
}

func TestMillCapsAtLibrarySize(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.Mill(25)

	state := store.State()
	assert.Empty(t, state.Player.Library)
	assert.Len(t, state.Player.Graveyard, 20)
}

func TestNextTurn(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawOpeningHand()
	store.KeepHand()

	card := store.State().Player.Hand[0]
	store.PlayCard(card.InstanceID)
	store.TapForMana(card.InstanceID, mana.Green)
	store.SetPhase(PhaseEnd)

	store.NextTurn()
	state := store.State()
	assert.Equal(t, 2, state.TurnNumber)
	assert.Equal(t, PhaseUntap, state.Phase)
	assert.False(t, state.Player.Battlefield[0].IsTapped)
	assert.Equal(t, 0, state.Player.ManaPool.Total())
}

func TestSetPhaseRejectsUnknown(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.SetPhase(PhaseDraw)
	require.Equal(t, PhaseDraw, store.State().Phase)

	store.SetPhase(Phase("lunch"))
	assert.Equal(t, PhaseDraw, store.State().Phase)
}

func TestUpdateLife(t *testing.T) {
	store := newTestStore(t, FormatCommander)
	store.UpdateLife(-7)
	assert.Equal(t, 33, store.State().Player.Life)
	store.UpdateLife(3)
	assert.Equal(t, 36, store.State().Player.Life)
}

func TestCounters(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.DrawCard()
	card := store.State().Player.Hand[0]
	store.PlayCard(card.InstanceID)

	store.AddCounter(card.InstanceID, "+1/+1")
	store.AddCounter(card.InstanceID, "+1/+1")
	assert.Equal(t, 2, store.State().Player.Battlefield[0].Counters["+1/+1"])

	store.RemoveCounter(card.InstanceID, "+1/+1")
	assert.Equal(t, 1, store.State().Player.Battlefield[0].Counters["+1/+1"])

	store.RemoveCounter(card.InstanceID, "+1/+1")
	_, present := store.State().Player.Battlefield[0].Counters["+1/+1"]
	assert.False(t, present, "kind removed when count reaches zero")
}

func TestReorderTop(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	library := store.State().Player.Library
	// Reverse the top three.
	ids := []string{library[2].InstanceID, library[1].InstanceID, library[0].InstanceID}

	store.ReorderTop(ids)
	after := store.State().Player.Library
	assert.Equal(t, ids[0], after[0].InstanceID)
	assert.Equal(t, ids[1], after[1].InstanceID)
	assert.Equal(t, ids[2], after[2].InstanceID)
	assert.Equal(t, library[3].InstanceID, after[3].InstanceID, "cards below stay in place")
}

func TestReorderTopRejectsForeignIDs(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	before := store.State()

	store.ReorderTop([]string{"nope", "also-nope"})
	assert.Same(t, before, store.State())
}

func TestEveryMutationAppendsOneAction(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	logLen := len(store.State().Log)

	store.DrawCard()
	assert.Len(t, store.State().Log, logLen+1)

	card := store.State().Player.Hand[0]
	store.PlayCard(card.InstanceID)
	assert.Len(t, store.State().Log, logLen+2)

	store.MoveCard(card.InstanceID, ZoneExile)
	assert.Len(t, store.State().Log, logLen+3)
}

func TestSubscribersSeeEveryPublish(t *testing.T) {
	store := NewStore(zap.NewNop())
	var published []*State
	store.Subscribe(func(st *State) { published = append(published, st) })

	store.InitGame(testDeck(FormatStandard))
	store.DrawOpeningHand()
	store.MoveCard("unknown", ZoneGraveyard) // no-op: no publish

	assert.Len(t, published, 2)
}

func TestSubscribersMayCallBackIntoStore(t *testing.T) {
	store := NewStore(zap.NewNop())
	var seen []int
	store.Subscribe(func(st *State) {
		// Reading the store from inside a notification must not deadlock.
		if current := store.State(); current != nil {
			seen = append(seen, len(current.Player.Hand))
		}
	})

	store.InitGame(testDeck(FormatStandard))
	store.DrawOpeningHand()

	require.Len(t, seen, 2)
	assert.Equal(t, 0, seen[0])
	assert.Equal(t, 7, seen[1])
}

func TestReset(t *testing.T) {
	store := newTestStore(t, FormatStandard)
	store.Reset()
	assert.Nil(t, store.State())
}
