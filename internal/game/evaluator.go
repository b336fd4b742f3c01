package game

import (
	"github.com/mtgbuilder/tabletop-go/internal/game/mana"
)

// HandEvaluation is a fixed-heuristic score of an opening hand.
type HandEvaluation struct {
	Lands        int
	NonLands     int
	AvgManaValue float64
	HasEarlyPlay bool
	HasMidPlay   bool
	Colors       []mana.Color
	Score        int
	Suggestions  []string
}

// EvaluateHand scores a hand from 0 to 100. The baseline is 50, adjusted by
// land count, the presence of early (mana value ≤ 2) and midgame (3–4)
// plays, and the hand's average mana value.
func EvaluateHand(hand []*Card) HandEvaluation {
	eval := HandEvaluation{}

	var manaValueSum float64
	seen := make(map[mana.Color]bool)
	for _, card := range hand {
		for _, c := range card.Colors {
			color := mana.Color(c)
			if color.Valid() && !seen[color] {
				seen[color] = true
				eval.Colors = append(eval.Colors, color)
			}
		}
		if card.IsLand() {
			eval.Lands++
			continue
		}
		eval.NonLands++
		manaValueSum += card.ManaValue
		if card.ManaValue <= 2 {
			eval.HasEarlyPlay = true
		}
		if card.ManaValue >= 3 && card.ManaValue <= 4 {
			eval.HasMidPlay = true
		}
	}
	if eval.NonLands > 0 {
		eval.AvgManaValue = manaValueSum / float64(eval.NonLands)
	}

	score := 50
	switch {
	case eval.Lands >= 2 && eval.Lands <= 3:
		score += 25
	case eval.Lands == 1 || eval.Lands == 4:
		score += 10
	default: // 0 or 5+
		score -= 20
	}
	if eval.HasEarlyPlay {
		score += 15
	}
	if eval.HasMidPlay {
		score += 10
	}
	if eval.NonLands > 0 && eval.AvgManaValue <= 3 {
		score += 5
	}
	if eval.AvgManaValue >= 5 {
		score -= 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	eval.Score = score

	if eval.Lands == 0 {
		eval.Suggestions = append(eval.Suggestions, "No lands: this hand cannot cast anything.")
	}
	if eval.Lands >= 5 {
		eval.Suggestions = append(eval.Suggestions, "Very land-heavy: few spells to cast.")
	}
	if !eval.HasEarlyPlay {
		eval.Suggestions = append(eval.Suggestions, "No plays in the first two turns.")
	}
	if score >= 75 {
		eval.Suggestions = append(eval.Suggestions, "Good balance of lands and spells; keep.")
	}

	return eval
}
