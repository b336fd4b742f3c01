package game

import (
	"math/rand"
)

// Shuffle returns a uniformly random permutation of cards (Fisher-Yates).
// The input slice is not modified.
func Shuffle(cards []*Card) []*Card {
	return shuffle(cards, rand.Intn)
}

// shuffle permutes with an injected source so the algorithm stays testable
// independent of the default generator.
func shuffle(cards []*Card, intn func(int) int) []*Card {
	shuffled := append([]*Card(nil), cards...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
