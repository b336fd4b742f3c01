package game

import (
	"fmt"

	"github.com/mtgbuilder/tabletop-go/internal/game/mana"
)

const openingHandSize = 7

// handSize returns the opening hand size after the given number of
// mulligans, flooring at zero.
func handSize(mulligans int) int {
	size := openingHandSize - mulligans
	if size < 0 {
		size = 0
	}
	return size
}

// DrawOpeningHand deals the opening hand from the top of the library. The
// hand shrinks by one per mulligan taken.
func (s *Store) DrawOpeningHand() {
	s.apply("draw_opening_hand", func(st *State) (*Action, bool) {
		p := st.Player
		count := handSize(p.MulliganCount)
		if count > len(p.Library) {
			count = len(p.Library)
		}
		for i := 0; i < count; i++ {
			card := p.Library[0]
			p.Library = p.Library[1:]
			card.Zone = ZoneHand
			p.Hand = append(p.Hand, card)
		}
		p.HasDrawnOpening = true

		action := newAction(ActionDrawOpeningHand)
		action.Detail = fmt.Sprintf("%d cards", count)
		return &action, true
	})
}

// Mulligan returns the hand to the library, reshuffles, and deals one fewer
// card. Mulliganing all the way to zero cards is allowed.
func (s *Store) Mulligan() {
	s.apply("mulligan", func(st *State) (*Action, bool) {
		p := st.Player
		for _, card := range p.Hand {
			card.Zone = ZoneLibrary
		}
		p.Library = append(p.Library, p.Hand...)
		p.Hand = nil
		p.Library = Shuffle(p.Library)
		p.MulliganCount++

		count := handSize(p.MulliganCount)
		if count > len(p.Library) {
			count = len(p.Library)
		}
		for i := 0; i < count; i++ {
			card := p.Library[0]
			p.Library = p.Library[1:]
			card.Zone = ZoneHand
			p.Hand = append(p.Hand, card)
		}

		action := newAction(ActionMulligan)
		action.Detail = fmt.Sprintf("to %d cards", count)
		return &action, true
	})
}

// KeepHand locks in the opening hand and starts the game.
func (s *Store) KeepHand() {
	s.apply("keep_hand", func(st *State) (*Action, bool) {
		st.Player.IsReady = true
		startGame(st)
		action := newAction(ActionKeepHand)
		return &action, true
	})
}

// StartGame begins play: turn one, first main phase.
func (s *Store) StartGame() {
	s.apply("start_game", func(st *State) (*Action, bool) {
		if st.Started {
			return nil, false
		}
		startGame(st)
		action := newAction(ActionStartGame)
		return &action, true
	})
}

func startGame(st *State) {
	st.Started = true
	st.TurnNumber = 1
	st.Phase = PhaseMain1
}

// NextTurn advances the turn counter, resets to the untap step, untaps all
// permanents, and empties the mana pool.
func (s *Store) NextTurn() {
	s.apply("next_turn", func(st *State) (*Action, bool) {
		for _, card := range st.Player.Battlefield {
			card.IsTapped = false
		}
		st.Player.ManaPool = mana.Pool{}
		st.TurnNumber++
		st.Phase = PhaseUntap

		action := newAction(ActionNextTurn)
		action.Detail = fmt.Sprintf("turn %d", st.TurnNumber)
		return &action, true
	})
}

// SetPhase moves to the named phase. Unknown phases are ignored.
func (s *Store) SetPhase(phase Phase) {
	s.apply("set_phase", func(st *State) (*Action, bool) {
		if !phase.Valid() {
			return nil, false
		}
		st.Phase = phase

		action := newAction(ActionSetPhase)
		action.Detail = string(phase)
		return &action, true
	})
}

// UpdateLife applies a life total change (positive or negative).
func (s *Store) UpdateLife(change int) {
	s.apply("update_life", func(st *State) (*Action, bool) {
		if change == 0 {
			return nil, false
		}
		st.Player.Life += change

		action := newAction(ActionUpdateLife)
		action.Detail = fmt.Sprintf("%+d", change)
		return &action, true
	})
}
