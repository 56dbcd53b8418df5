package domain

import "testing"

func TestTeamForSeat(t *testing.T) {
	tests := []struct {
		seat int
		want Team
	}{
		{0, TeamA},
		{1, TeamA},
		{2, TeamB},
		{3, TeamB},
	}
	for _, tt := range tests {
		if got := TeamForSeat(tt.seat); got != tt.want {
			t.Errorf("TeamForSeat(%d) = %s, want %s", tt.seat, got, tt.want)
		}
	}
}

func TestTrumpValid(t *testing.T) {
	valid := []Trump{TrumpClub, TrumpDiamond, TrumpHeart, TrumpSpade, TrumpStandard, TrumpSers, TrumpNers}
	for _, tr := range valid {
		if !tr.Valid() {
			t.Errorf("Trump(%q).Valid() = false, want true", tr)
		}
	}
	for _, tr := range []Trump{"x", "", "hearts", "standard"} {
		if tr.Valid() {
			t.Errorf("Trump(%q).Valid() = true, want false", tr)
		}
	}
}

func TestEffectiveTrump(t *testing.T) {
	room := &Room{TrumpMode: TrumpStandard}
	if got := room.EffectiveTrump(); got != TrumpStandard {
		t.Fatalf("EffectiveTrump() = %s, want configured mode while unset", got)
	}
	room.Trump = TrumpHeart
	if got := room.EffectiveTrump(); got != TrumpHeart {
		t.Fatalf("EffectiveTrump() = %s, want chosen trump", got)
	}
}

func TestSettlement(t *testing.T) {
	players := [NumSeats]Player{
		{ID: "u0", Kind: PlayerHuman},
		{ID: "bot_1", Kind: PlayerBot},
		{ID: "u2", Kind: PlayerHuman},
		{ID: "u3", Kind: PlayerHuman},
	}

	room := &Room{WinnerTeam: TeamA}
	changes := room.Settlement(players, 100)

	want := map[string]int64{"u0": 100, "bot_1": 100, "u2": -100, "u3": -100}
	for id, amount := range want {
		if got := changes[id]; got != amount {
			t.Errorf("settlement[%s] = %d, want %d", id, got, amount)
		}
	}

	unfinished := &Room{}
	if got := unfinished.Settlement(players, 100); got != nil {
		t.Fatalf("settlement before finish = %v, want nil", got)
	}
}

func TestScoresAdd(t *testing.T) {
	var s TeamScores
	s.Add(TeamA)
	s.Add(TeamB)
	s.Add(TeamB)
	if s.TeamA != 1 || s.TeamB != 2 {
		t.Fatalf("scores = %+v, want {1 2}", s)
	}
	if s.For(TeamA) != 1 || s.For(TeamB) != 2 {
		t.Fatalf("For() mismatch: %+v", s)
	}
}
