package domain

import (
	"reflect"
	"testing"
)

func TestRemoveCard(t *testing.T) {
	hand := []Card{
		{Rank: "2", Suit: SuitSpade},
		{Rank: "j", Suit: SuitHeart},
		{Rank: "a", Suit: SuitDiamond},
	}

	got, ok := RemoveCard(hand, Card{Rank: "j", Suit: SuitHeart})
	if !ok {
		t.Fatalf("expected removal to succeed")
	}
	want := []Card{{Rank: "2", Suit: SuitSpade}, {Rank: "a", Suit: SuitDiamond}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RemoveCard() = %v, want %v", got, want)
	}
	if len(hand) != 3 {
		t.Fatalf("input hand mutated, len = %d", len(hand))
	}
}

func TestRemoveCardNotHeld(t *testing.T) {
	hand := []Card{{Rank: "2", Suit: SuitSpade}}
	got, ok := RemoveCard(hand, Card{Rank: "3", Suit: SuitSpade})
	if ok {
		t.Fatalf("expected removal to fail for a card not held")
	}
	if !reflect.DeepEqual(got, hand) {
		t.Fatalf("hand changed on failed removal: %v", got)
	}
}

func TestRemoveCardFromEmptyHand(t *testing.T) {
	if _, ok := RemoveCard(nil, Card{Rank: "2", Suit: SuitClub}); ok {
		t.Fatalf("removal from empty hand must fail")
	}
}

func TestAppendCards(t *testing.T) {
	hand := []Card{{Rank: "5", Suit: SuitClub}}
	pending := []Card{{Rank: "6", Suit: SuitClub}, {Rank: "7", Suit: SuitClub}}

	got := AppendCards(hand, pending)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] != hand[0] || got[1] != pending[0] || got[2] != pending[1] {
		t.Fatalf("unexpected order: %v", got)
	}
}
