package game

import (
	"fmt"

	"github.com/mtgbuilder/tabletop-go/internal/game/mana"
)

// TapForMana taps an untapped battlefield card and adds one mana of the
// chosen color. An already-tapped card is ignored.
func (s *Store) TapForMana(instanceID string, color mana.Color) {
	s.apply("tap_for_mana", func(st *State) (*Action, bool) {
		if !color.Valid() {
			return nil, false
		}
		for _, card := range st.Player.Battlefield {
			if card.InstanceID == instanceID {
				if card.IsTapped {
					return nil, false
				}
				card.IsTapped = true
				st.Player.ManaPool = st.Player.ManaPool.Add(color, 1)

				action := newAction(ActionTapForMana)
				action.InstanceID = card.InstanceID
				action.Detail = fmt.Sprintf("%s for {%s}", card.Name, color)
				return &action, true
			}
		}
		return nil, false
	})
}

// AddMana adds mana of the given color to the pool.
func (s *Store) AddMana(color mana.Color, amount int) {
	s.apply("add_mana", func(st *State) (*Action, bool) {
		if !color.Valid() || amount <= 0 {
			return nil, false
		}
		st.Player.ManaPool = st.Player.ManaPool.Add(color, amount)

		action := newAction(ActionAddMana)
		action.Detail = fmt.Sprintf("%d {%s}", amount, color)
		return &action, true
	})
}

// RemoveMana removes mana of the given color from the pool, flooring at zero.
func (s *Store) RemoveMana(color mana.Color, amount int) {
	s.apply("remove_mana", func(st *State) (*Action, bool) {
		if !color.Valid() || amount <= 0 {
			return nil, false
		}
		st.Player.ManaPool = st.Player.ManaPool.Remove(color, amount)

		action := newAction(ActionRemoveMana)
		action.Detail = fmt.Sprintf("%d {%s}", amount, color)
		return &action, true
	})
}

// ClearManaPool empties the mana pool.
func (s *Store) ClearManaPool() {
	s.apply("clear_mana_pool", func(st *State) (*Action, bool) {
		st.Player.ManaPool = mana.Pool{}
		action := newAction(ActionClearManaPool)
		return &action, true
	})
}

// CastCard pays a hand card's mana cost from the pool and puts it onto the
// battlefield. The allocation directs which colors cover the generic portion
// of the cost; a zero allocation auto-pays. On any failure the state is left
// untouched and the reason is returned.
func (s *Store) CastCard(instanceID string, allocation mana.Pool) error {
	var castErr error
	s.apply("cast_card", func(st *State) (*Action, bool) {
		p := st.Player
		for i, card := range p.Hand {
			if card.InstanceID != instanceID {
				continue
			}

			cost, err := mana.ParseCost(card.ManaCost)
			if err != nil {
				castErr = fmt.Errorf("parse cost %q: %w", card.ManaCost, err)
				return nil, false
			}
			result := mana.Pay(p.ManaPool, cost, allocation)
			if !result.Success {
				castErr = fmt.Errorf("cannot cast %s: %s", card.Name, result.Reason)
				return nil, false
			}

			p.ManaPool = result.Pool
			p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
			card.Zone = ZoneBattlefield
			card.IsTapped = false
			p.Battlefield = append(p.Battlefield, card)

			action := newAction(ActionCast)
			action.InstanceID = card.InstanceID
			action.FromZone = ZoneHand
			action.ToZone = ZoneBattlefield
			action.Detail = fmt.Sprintf("%s for %s", card.Name, card.ManaCost)
			return &action, true
		}
		castErr = fmt.Errorf("card %s not found in hand", instanceID)
		return nil, false
	})
	return castErr
}
