package domain

import "testing"

func play(seat int, rank string, suit Suit) Play {
	return Play{Seat: seat, Card: Card{Rank: rank, Suit: suit}}
}

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name  string
		plays []Play
		trump Trump
		want  int
	}{
		{
			name: "highest lead suit wins without trump",
			plays: []Play{
				play(0, "10", SuitHeart),
				play(1, "k", SuitHeart),
				play(2, "2", SuitHeart),
				play(3, "a", SuitHeart),
			},
			trump: TrumpNone,
			want:  3,
		},
		{
			name: "lone trump beats higher lead cards",
			plays: []Play{
				play(0, "a", SuitHeart),
				play(1, "2", SuitSpade),
				play(2, "3", SuitHeart),
				play(3, "4", SuitHeart),
			},
			trump: TrumpSpade,
			want:  1,
		},
		{
			name: "trump beats all non-trump lead cards",
			plays: []Play{
				play(0, "2", SuitClub),
				play(1, "3", SuitClub),
				play(2, "4", SuitDiamond),
				play(3, "5", SuitClub),
			},
			trump: TrumpDiamond,
			want:  2,
		},
		{
			name: "higher trump beats lower trump",
			plays: []Play{
				play(0, "9", SuitHeart),
				play(1, "3", SuitSpade),
				play(2, "j", SuitSpade),
				play(3, "a", SuitHeart),
			},
			trump: TrumpSpade,
			want:  2,
		},
		{
			name: "off-suit non-trump never wins",
			plays: []Play{
				play(0, "5", SuitClub),
				play(1, "a", SuitHeart),
				play(2, "a", SuitDiamond),
				play(3, "6", SuitClub),
			},
			trump: TrumpNone,
			want:  3,
		},
		{
			name: "non-suit mode decides by lead suit",
			plays: []Play{
				play(0, "7", SuitDiamond),
				play(1, "a", SuitSpade),
				play(2, "8", SuitDiamond),
				play(3, "2", SuitDiamond),
			},
			trump: TrumpSers,
			want:  2,
		},
		{
			name: "unknown rank token ranks lowest",
			plays: []Play{
				play(0, "x", SuitHeart),
				play(1, "2", SuitHeart),
				play(2, "3", SuitSpade),
				play(3, "4", SuitClub),
			},
			trump: TrumpNone,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TrickWinner(tt.plays, tt.trump)
			if !ok {
				t.Fatalf("TrickWinner() ok = false, want winner")
			}
			if got != tt.want {
				t.Fatalf("TrickWinner() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTrickWinnerEmpty(t *testing.T) {
	if seat, ok := TrickWinner(nil, TrumpHeart); ok || seat != -1 {
		t.Fatalf("TrickWinner(nil) = (%d, %t), want (-1, false)", seat, ok)
	}
}
