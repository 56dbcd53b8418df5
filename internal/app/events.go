package app

import "hokm/internal/domain"

// EventKind identifies emitted state-machine events for adapter dispatch.
type EventKind string

const (
	EventPlayerJoined EventKind = "player_joined"
	EventPlayerKicked EventKind = "player_kicked"
	EventDealStarted  EventKind = "deal_started"
	EventHandDealt    EventKind = "hand_dealt"
	EventTrumpSet     EventKind = "trump_set"
	EventCardPlayed   EventKind = "card_played"
	EventTrickWon     EventKind = "trick_won"
	EventGameEnded    EventKind = "game_ended"
)

// Event is a state-machine event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	Seat   int           `json:"seat"`
	Player domain.Player `json:"player"`
}

type PlayerKickedPayload struct {
	Seat        int           `json:"seat"`
	Replacement domain.Player `json:"replacement"`
}

type DealStartedPayload struct {
	HakimSeat   int          `json:"hakim_seat"`
	CurrentTurn int          `json:"current_turn"`
	Phase       domain.Phase `json:"phase"`
}

// HandDealtPayload is delivered privately to its owner.
type HandDealtPayload struct {
	Owner string        `json:"owner"`
	Seat  int           `json:"seat"`
	Hand  []domain.Card `json:"hand"`
}

type TrumpSetPayload struct {
	Trump       domain.Trump `json:"trump"`
	CurrentTurn int          `json:"current_turn"`
}

type CardPlayedPayload struct {
	Seat     int         `json:"seat"`
	Card     domain.Card `json:"card"`
	NextTurn int         `json:"next_turn"`
}

type TrickWonPayload struct {
	WinnerSeat int               `json:"winner_seat"`
	Team       domain.Team       `json:"team"`
	Scores     domain.TeamScores `json:"scores"`
}

type GameEndedPayload struct {
	WinnerTeam domain.Team       `json:"winner_team"`
	Scores     domain.TeamScores `json:"scores"`
}
