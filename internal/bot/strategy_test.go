package bot

import (
	"testing"

	"hokm/internal/domain"
)

func card(rank string, suit domain.Suit) domain.Card {
	return domain.Card{Rank: rank, Suit: suit}
}

func TestGreedyChooseCard(t *testing.T) {
	hand := []domain.Card{
		card("4", domain.SuitClub),
		card("9", domain.SuitHeart),
		card("k", domain.SuitHeart),
		card("a", domain.SuitSpade),
	}

	tests := []struct {
		name  string
		plays []domain.Play
		want  domain.Card
	}{
		{
			name:  "leads with first card",
			plays: nil,
			want:  card("4", domain.SuitClub),
		},
		{
			name: "follows lead with highest matching card",
			plays: []domain.Play{
				{Seat: 0, Card: card("2", domain.SuitHeart)},
			},
			want: card("k", domain.SuitHeart),
		},
		{
			name: "no matching suit falls back to first card",
			plays: []domain.Play{
				{Seat: 0, Card: card("2", domain.SuitDiamond)},
			},
			want: card("4", domain.SuitClub),
		},
	}

	brain := GreedyBrain{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := brain.ChooseCard(tt.plays, hand); got != tt.want {
				t.Fatalf("ChooseCard() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGreedyChooseTrump(t *testing.T) {
	hand := []domain.Card{
		card("2", domain.SuitHeart),
		card("3", domain.SuitHeart),
		card("4", domain.SuitHeart),
		card("a", domain.SuitSpade),
		card("k", domain.SuitClub),
	}
	if got := (GreedyBrain{}).ChooseTrump(hand); got != domain.TrumpHeart {
		t.Fatalf("ChooseTrump() = %s, want heart", got)
	}

	// Tie between club and spade resolves to canonical order.
	tied := []domain.Card{
		card("2", domain.SuitSpade),
		card("3", domain.SuitClub),
	}
	if got := (GreedyBrain{}).ChooseTrump(tied); got != domain.TrumpClub {
		t.Fatalf("ChooseTrump() tie = %s, want club", got)
	}
}

func TestIdentities(t *testing.T) {
	if got := ID(2); got != "bot_2" {
		t.Fatalf("ID(2) = %s, want bot_2", got)
	}
	if !IsBot("bot_0") {
		t.Fatalf("IsBot(bot_0) = false")
	}
	if IsBot("user-1") {
		t.Fatalf("IsBot(user-1) = true")
	}
	p := Player(3)
	if p.Kind != domain.PlayerBot || !p.Connected || p.ID != "bot_3" {
		t.Fatalf("unexpected bot player: %+v", p)
	}
}
