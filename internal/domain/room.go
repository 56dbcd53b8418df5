package domain

import "time"

// Phase is the lifecycle stage of a room. Transitions are monotonic
// within one game; only a fresh deal restarts the cycle.
type Phase string

const (
	// PhaseWaiting is the pre-deal state where seats fill.
	PhaseWaiting Phase = "waiting"
	// PhaseChoosingHakim means hands are dealt but trump is not picked.
	PhaseChoosingHakim Phase = "choosing_hakim"
	// PhasePlaying is the active trick-taking state.
	PhasePlaying Phase = "playing"
	// PhaseFinished is terminal; one team reached the target.
	PhaseFinished Phase = "finished"
)

const (
	// NumSeats is the fixed seat count of a room.
	NumSeats = 4
	// PendingPerSeat is the reserve dealt per seat and withheld until
	// trump is chosen.
	PendingPerSeat = 8
	// OpeningHandSize is the hand dealt before trump is chosen.
	OpeningHandSize = 5
	// DefaultTargetTricks is used when a room is created without an
	// explicit target.
	DefaultTargetTricks = 7
)

// Team identifies one of the two fixed partnerships.
type Team string

const (
	TeamA Team = "team_a"
	TeamB Team = "team_b"
)

// TeamForSeat maps a seat to its team: seats 0 and 1 form team A,
// seats 2 and 3 form team B. This parity pairing (rather than the
// opposite-seat pairing of table Hokm) matches the observed score rule
// and is kept as-is.
func TeamForSeat(seat int) Team {
	if seat <= 1 {
		return TeamA
	}
	return TeamB
}

// PlayerKind classifies a seat occupant.
type PlayerKind string

const (
	PlayerEmpty PlayerKind = "empty"
	PlayerHuman PlayerKind = "human"
	PlayerBot   PlayerKind = "bot"
)

// Player is a seat occupant.
type Player struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"display_name"`
	Kind        PlayerKind `json:"kind"`
	Connected   bool       `json:"connected"`
}

// Occupied reports whether the seat holds a human or a bot.
func (p Player) Occupied() bool {
	return p.Kind == PlayerHuman || p.Kind == PlayerBot
}

// TeamScores tracks tricks won per team. Counts never decrease.
type TeamScores struct {
	TeamA int `json:"team_a"`
	TeamB int `json:"team_b"`
}

// For returns the count for a team.
func (s TeamScores) For(t Team) int {
	if t == TeamA {
		return s.TeamA
	}
	return s.TeamB
}

// Add increments a team's count.
func (s *TeamScores) Add(t Team) {
	if t == TeamA {
		s.TeamA++
	} else {
		s.TeamB++
	}
}

// Room is the aggregate state of one Hokm session.
type Room struct {
	TargetTricks int   `json:"target_tricks"`
	TrumpMode    Trump `json:"trump_mode"` // configured at creation
	Trump        Trump `json:"trump"`      // chosen by the hakim, empty until then

	Phase       Phase `json:"phase"`
	HakimSeat   int   `json:"hakim_seat"`
	CurrentTurn int   `json:"current_turn"`

	Scores          TeamScores `json:"scores"`
	LastTrickWinner int        `json:"last_trick_winner"` // -1 before any trick resolves
	WinnerTeam      Team       `json:"winner_team"`       // set once finished

	// Deck holds undealt residual cards and Pending the per-seat
	// reserves; both only carry cards during choosing_hakim.
	Deck    []Card         `json:"deck,omitempty"`
	Pending map[int][]Card `json:"pending,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

// EffectiveTrump is the designator used for trick evaluation: the
// chosen trump, falling back to the configured mode while unset.
func (r *Room) EffectiveTrump() Trump {
	if r.Trump != TrumpNone {
		return r.Trump
	}
	return r.TrumpMode
}

// Settlement computes end-of-game wallet changes: each winning-team
// occupant gains baseBet, each losing-team occupant loses it. Callers
// filter out bot identities before applying.
func (r *Room) Settlement(players [NumSeats]Player, baseBet int64) map[string]int64 {
	if r.WinnerTeam == "" {
		return nil
	}
	changes := make(map[string]int64, NumSeats)
	for seat, p := range players {
		if !p.Occupied() {
			continue
		}
		if TeamForSeat(seat) == r.WinnerTeam {
			changes[p.ID] = baseBet
		} else {
			changes[p.ID] = -baseBet
		}
	}
	return changes
}
