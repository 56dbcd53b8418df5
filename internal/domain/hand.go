package domain

// RemoveCard removes exactly one card matching c from the hand.
// The second return is false when the card is not held; the hand is
// returned unchanged in that case. Hand membership is the sole
// legality check for a play.
func RemoveCard(hand []Card, c Card) ([]Card, bool) {
	for i, held := range hand {
		if held == c {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			out = append(out, hand[i+1:]...)
			return out, true
		}
	}
	return hand, false
}

// AppendCards concatenates cards onto a hand, used when a pending
// reserve is released after trump resolution.
func AppendCards(hand []Card, cards []Card) []Card {
	out := make([]Card, 0, len(hand)+len(cards))
	out = append(out, hand...)
	out = append(out, cards...)
	return out
}

// ContainsCard reports whether the hand holds c.
func ContainsCard(hand []Card, c Card) bool {
	for _, held := range hand {
		if held == c {
			return true
		}
	}
	return false
}
