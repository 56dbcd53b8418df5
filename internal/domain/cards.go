package domain

// Suit identifies one of the four card suits.
type Suit string

const (
	SuitClub    Suit = "club"
	SuitDiamond Suit = "diamond"
	SuitHeart   Suit = "heart"
	SuitSpade   Suit = "spade"
)

// Suits lists all suits in canonical order.
var Suits = [4]Suit{SuitClub, SuitDiamond, SuitHeart, SuitSpade}

// Ranks lists all rank tokens in ascending order of strength.
var Ranks = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "j", "q", "k", "a"}

// Card is a single playing card. Equality is by (rank, suit).
type Card struct {
	Rank string `json:"rank"`
	Suit Suit   `json:"suit"`
}

var rankValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
	"8": 8, "9": 9, "10": 10, "j": 11, "q": 12, "k": 13, "a": 14,
}

// RankValue returns the comparison value of a rank token.
// Unrecognized tokens rank as 0, the lowest; comparison stays total.
func RankValue(rank string) int {
	return rankValues[rank]
}

// Trump designates what outranks the lead suit in a trick: one of the
// four suits, a non-suit mode, or empty when not yet chosen.
type Trump string

const (
	TrumpNone     Trump = ""
	TrumpClub     Trump = Trump(SuitClub)
	TrumpDiamond  Trump = Trump(SuitDiamond)
	TrumpHeart    Trump = Trump(SuitHeart)
	TrumpSpade    Trump = Trump(SuitSpade)
	TrumpStandard Trump = "STANDARD"
	TrumpSers     Trump = "SERS"
	TrumpNers     Trump = "NERS"
)

// Valid reports whether t is an accepted trump designator.
func (t Trump) Valid() bool {
	switch t {
	case TrumpClub, TrumpDiamond, TrumpHeart, TrumpSpade, TrumpStandard, TrumpSers, TrumpNers:
		return true
	}
	return false
}

// TrumpSuit returns the suit when t designates one. Non-suit modes
// have no trump suit, so a trick under them is decided by lead suit alone.
func (t Trump) TrumpSuit() (Suit, bool) {
	switch t {
	case TrumpClub, TrumpDiamond, TrumpHeart, TrumpSpade:
		return Suit(t), true
	}
	return "", false
}
