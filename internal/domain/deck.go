package domain

import "math/rand"

// BuildDeck returns the 52 distinct cards in canonical suit-major order.
func BuildDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle permutes the deck in place with a Fisher-Yates walk from the
// last index down, so every permutation is equally likely given a
// uniform source.
func Shuffle(deck []Card, rng *rand.Rand) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
