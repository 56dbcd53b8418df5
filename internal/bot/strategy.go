package bot

import "hokm/internal/domain"

// GreedyBrain is the default policy: deterministic and greedy with no
// lookahead. Following a trick it plays the highest card of the lead
// suit it holds; holding none, or when leading, it plays the first
// card of the hand. It never trumps or discards strategically, and it
// does not enforce suit-following (no player is held to it).
type GreedyBrain struct{}

// ChooseCard implements Brain.
func (GreedyBrain) ChooseCard(plays []domain.Play, hand []domain.Card) domain.Card {
	if len(plays) == 0 {
		return hand[0]
	}

	lead := plays[0].Card.Suit
	bestIdx := -1
	for i, c := range hand {
		if c.Suit != lead {
			continue
		}
		if bestIdx == -1 || domain.RankValue(c.Rank) > domain.RankValue(hand[bestIdx].Rank) {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return hand[bestIdx]
	}
	return hand[0]
}

// ChooseTrump picks the suit the hand holds most of, breaking ties by
// canonical suit order.
func (GreedyBrain) ChooseTrump(hand []domain.Card) domain.Trump {
	counts := make(map[domain.Suit]int, 4)
	for _, c := range hand {
		counts[c.Suit]++
	}

	best := domain.Suits[0]
	for _, s := range domain.Suits[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return domain.Trump(best)
}
