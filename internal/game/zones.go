package game

import (
	"fmt"
)

// DrawCard moves the top library card to hand. Drawing from an empty
// library is a no-op.
func (s *Store) DrawCard() {
	s.apply("draw_card", func(st *State) (*Action, bool) {
		p := st.Player
		if len(p.Library) == 0 {
			return nil, false
		}
		card := p.Library[0]
		p.Library = p.Library[1:]
		card.Zone = ZoneHand
		p.Hand = append(p.Hand, card)

		action := newAction(ActionDrawCard)
		action.InstanceID = card.InstanceID
		action.FromZone = ZoneLibrary
		action.ToZone = ZoneHand
		return &action, true
	})
}

// PlayCard moves a card from hand to the battlefield, untapped.
func (s *Store) PlayCard(instanceID string) {
	s.apply("play_card", func(st *State) (*Action, bool) {
		p := st.Player
		for i, card := range p.Hand {
			if card.InstanceID == instanceID {
				p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
				card.Zone = ZoneBattlefield
				card.IsTapped = false
				p.Battlefield = append(p.Battlefield, card)

				action := newAction(ActionPlay)
				action.InstanceID = card.InstanceID
				action.FromZone = ZoneHand
				action.ToZone = ZoneBattlefield
				action.Detail = card.Name
				return &action, true
			}
		}
		return nil, false
	})
}

// MoveCard relocates an instance to the named zone, wherever it currently
// sits. The destination decides the logged kind (graveyard→destroy,
// exile→exile, hand→return, otherwise play); entering hand or library
// untaps the card. An unknown instance id is silently ignored.
func (s *Store) MoveCard(instanceID string, to Zone) {
	s.apply("move_card", func(st *State) (*Action, bool) {
		if !to.Valid() {
			return nil, false
		}
		p := st.Player
		card, from := p.removeCard(instanceID)
		if card == nil {
			return nil, false
		}

		card.Zone = to
		if to == ZoneHand || to == ZoneLibrary {
			card.IsTapped = false
		}
		p.setZone(to, append(p.ZoneCards(to), card))

		action := newAction(moveActionKind(to))
		action.InstanceID = card.InstanceID
		action.FromZone = from
		action.ToZone = to
		action.Detail = card.Name
		return &action, true
	})
}

// DiscardCard moves a card from hand to the graveyard.
func (s *Store) DiscardCard(instanceID string) {
	s.apply("discard_card", func(st *State) (*Action, bool) {
		p := st.Player
		for i, card := range p.Hand {
			if card.InstanceID == instanceID {
				p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
				card.Zone = ZoneGraveyard
				p.Graveyard = append(p.Graveyard, card)

				action := newAction(ActionDiscard)
				action.InstanceID = card.InstanceID
				action.FromZone = ZoneHand
				action.ToZone = ZoneGraveyard
				action.Detail = card.Name
				return &action, true
			}
		}
		return nil, false
	})
}

// TapCard toggles the tapped state of a battlefield card.
func (s *Store) TapCard(instanceID string) {
	s.apply("tap_card", func(st *State) (*Action, bool) {
		for _, card := range st.Player.Battlefield {
			if card.InstanceID == instanceID {
				card.IsTapped = !card.IsTapped

				kind := ActionTap
				if !card.IsTapped {
					kind = ActionUntap
				}
				action := newAction(kind)
				action.InstanceID = card.InstanceID
				action.Detail = card.Name
				return &action, true
			}
		}
		return nil, false
	})
}

// UntapAll untaps every battlefield card.
func (s *Store) UntapAll() {
	s.apply("untap_all", func(st *State) (*Action, bool) {
		for _, card := range st.Player.Battlefield {
			card.IsTapped = false
		}
		action := newAction(ActionUntapAll)
		return &action, true
	})
}

// ShuffleLibrary randomizes the library order.
func (s *Store) ShuffleLibrary() {
	s.apply("shuffle_library", func(st *State) (*Action, bool) {
		st.Player.Library = Shuffle(st.Player.Library)
		action := newAction(ActionShuffleLibrary)
		return &action, true
	})
}

// Mill moves the top count cards of the library to the graveyard, capped at
// the library size.
func (s *Store) Mill(count int) {
	s.apply("mill", func(st *State) (*Action, bool) {
		p := st.Player
		if count <= 0 || len(p.Library) == 0 {
			return nil, false
		}
		if count > len(p.Library) {
			count = len(p.Library)
		}
		for i := 0; i < count; i++ {
			card := p.Library[0]
			p.Library = p.Library[1:]
			card.Zone = ZoneGraveyard
			p.Graveyard = append(p.Graveyard, card)
		}

		action := newAction(ActionMill)
		action.FromZone = ZoneLibrary
		action.ToZone = ZoneGraveyard
		action.Detail = fmt.Sprintf("%d cards", count)
		return &action, true
	})
}

// ReorderTop rearranges the top cards of the library to match the given
// instance id order (scry support). The ids must name exactly the current
// top len(ids) cards; anything else is ignored.
func (s *Store) ReorderTop(instanceIDs []string) {
	s.apply("reorder_top", func(st *State) (*Action, bool) {
		p := st.Player
		n := len(instanceIDs)
		if n == 0 || n > len(p.Library) {
			return nil, false
		}

		top := make(map[string]*Card, n)
		for _, card := range p.Library[:n] {
			top[card.InstanceID] = card
		}
		reordered := make([]*Card, 0, n)
		for _, id := range instanceIDs {
			card, ok := top[id]
			if !ok {
				return nil, false
			}
			delete(top, id)
			reordered = append(reordered, card)
		}

		p.Library = append(reordered, p.Library[n:]...)
		action := newAction(ActionReorderTop)
		action.Detail = fmt.Sprintf("top %d", n)
		return &action, true
	})
}

// AddCounter adds one counter of the given kind to a battlefield card.
func (s *Store) AddCounter(instanceID, counterType string) {
	s.apply("add_counter", func(st *State) (*Action, bool) {
		for _, card := range st.Player.Battlefield {
			if card.InstanceID == instanceID {
				if card.Counters == nil {
					card.Counters = make(map[string]int)
				}
				card.Counters[counterType]++

				action := newAction(ActionAddCounter)
				action.InstanceID = card.InstanceID
				action.Detail = counterType
				return &action, true
			}
		}
		return nil, false
	})
}

// RemoveCounter removes one counter of the given kind from a battlefield
// card, deleting the kind when it reaches zero.
func (s *Store) RemoveCounter(instanceID, counterType string) {
	s.apply("remove_counter", func(st *State) (*Action, bool) {
		for _, card := range st.Player.Battlefield {
			if card.InstanceID == instanceID {
				count := card.Counters[counterType]
				if count <= 1 {
					delete(card.Counters, counterType)
				} else {
					card.Counters[counterType] = count - 1
				}

				action := newAction(ActionRemoveCounter)
				action.InstanceID = card.InstanceID
				action.Detail = counterType
				return &action, true
			}
		}
		return nil, false
	})
}
