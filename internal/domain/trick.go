package domain

import "time"

// TrickSize is the number of plays that complete a trick, one per seat.
const TrickSize = 4

// Play is a single card played into the current trick.
type Play struct {
	Seat     int       `json:"seat"`
	Card     Card      `json:"card"`
	PlayedAt time.Time `json:"played_at"`
}

// TrickWinner reduces an ordered list of plays to the winning seat.
// The first play fixes the lead suit; each later play displaces the
// current best only if it outranks it under trump/lead precedence:
// trump beats non-trump, higher rank decides inside trump or inside a
// shared suit, and a lead-suit card beats an off-suit non-trump best.
// Off-suit non-trump cards never win. Returns ok=false for no plays.
func TrickWinner(plays []Play, trump Trump) (winner int, ok bool) {
	if len(plays) == 0 {
		return -1, false
	}

	trumpSuit, trumpIsSuit := trump.TrumpSuit()
	lead := plays[0].Card.Suit
	best := plays[0]

	for _, p := range plays[1:] {
		if beats(p.Card, best.Card, lead, trumpSuit, trumpIsSuit) {
			best = p
		}
	}
	return best.Seat, true
}

func beats(c, best Card, lead Suit, trumpSuit Suit, trumpIsSuit bool) bool {
	cardIsTrump := trumpIsSuit && c.Suit == trumpSuit
	bestIsTrump := trumpIsSuit && best.Suit == trumpSuit

	switch {
	case cardIsTrump && !bestIsTrump:
		return true
	case cardIsTrump && bestIsTrump:
		return RankValue(c.Rank) > RankValue(best.Rank)
	case bestIsTrump:
		return false
	case c.Suit == best.Suit:
		return RankValue(c.Rank) > RankValue(best.Rank)
	case c.Suit == lead && best.Suit != lead:
		return true
	default:
		return false
	}
}
