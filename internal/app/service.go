package app

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"hokm/internal/bot"
	"hokm/internal/domain"
	"hokm/internal/ports"
)

// Service runs the room state machine over a State Store. It performs
// the whole load-compute-persist sequence of each operation; callers
// must serialize operations per room (the Nakama match loop does, and
// the in-memory store locks per room for anyone else).
type Service struct {
	store ports.StateStore
	rng   *rand.Rand
}

// NewService constructs a Service with the provided rng or a
// time-seeded default.
func NewService(store ports.StateStore, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{store: store, rng: rng}
}

// Snapshot is the read-only view returned by GetState.
type Snapshot struct {
	Room    domain.Room                    `json:"room"`
	Players [domain.NumSeats]domain.Player `json:"players"`
	Hands   map[string][]domain.Card       `json:"hands"`
	Trick   []domain.Play                  `json:"trick"`
}

// PlayOutcome reports what a play resolved.
type PlayOutcome struct {
	TrickWinner int         // seat, or -1 while the trick is still open
	Finished    bool        // the game ended on this play
	WinnerTeam  domain.Team // set when Finished
}

func (s *Service) loadRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.store.LoadRoom(ctx, roomID)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, storeErr("load room", err)
	}
	return room, nil
}

// CreateRoom allocates a waiting room with four empty seats and an
// empty trick. Nothing is shuffled yet.
func (s *Service) CreateRoom(ctx context.Context, roomID string, targetTricks int, trumpMode domain.Trump) (*domain.Room, error) {
	if roomID == "" {
		return nil, ErrBadRequest
	}
	if targetTricks <= 0 {
		targetTricks = domain.DefaultTargetTricks
	}
	if trumpMode == domain.TrumpNone {
		trumpMode = domain.TrumpStandard
	}
	if !trumpMode.Valid() {
		return nil, ErrInvalidTrump
	}

	room := &domain.Room{
		TargetTricks:    targetTricks,
		TrumpMode:       trumpMode,
		Phase:           domain.PhaseWaiting,
		HakimSeat:       -1,
		CurrentTurn:     0,
		LastTrickWinner: -1,
		CreatedAt:       time.Now().UTC(),
	}

	for seat := 0; seat < domain.NumSeats; seat++ {
		if err := s.store.SavePlayer(ctx, roomID, seat, domain.Player{Kind: domain.PlayerEmpty}); err != nil {
			return nil, storeErr("save player", err)
		}
	}
	if err := s.store.SaveTrick(ctx, roomID, nil); err != nil {
		return nil, storeErr("save trick", err)
	}
	if err := s.store.SaveRoom(ctx, roomID, room); err != nil {
		return nil, storeErr("save room", err)
	}
	return room, nil
}

// JoinRoom seats the identity at the first empty seat, else reclaims
// the first disconnected human seat. A connected human occupant is
// never overwritten. Joining again from the same identity only
// refreshes the connection flag.
func (s *Service) JoinRoom(ctx context.Context, roomID, identity, displayName string) (int, []Event, error) {
	if identity == "" {
		return -1, nil, ErrBadRequest
	}
	if _, err := s.loadRoom(ctx, roomID); err != nil {
		return -1, nil, err
	}
	players, err := s.store.LoadPlayers(ctx, roomID)
	if err != nil {
		return -1, nil, storeErr("load players", err)
	}

	seat := -1
	for i, p := range players {
		if p.Kind == domain.PlayerHuman && p.ID == identity {
			seat = i
			break
		}
	}
	if seat == -1 {
		for i, p := range players {
			if p.Kind == domain.PlayerEmpty {
				seat = i
				break
			}
		}
	}
	if seat == -1 {
		for i, p := range players {
			if p.Kind == domain.PlayerHuman && !p.Connected {
				seat = i
				break
			}
		}
	}
	if seat == -1 {
		return -1, nil, ErrRoomFull
	}

	player := domain.Player{
		ID:          identity,
		DisplayName: displayName,
		Kind:        domain.PlayerHuman,
		Connected:   true,
	}
	if err := s.store.SavePlayer(ctx, roomID, seat, player); err != nil {
		return -1, nil, storeErr("save player", err)
	}

	events := []Event{{
		Kind:    EventPlayerJoined,
		Payload: PlayerJoinedPayload{Seat: seat, Player: player},
	}}
	return seat, events, nil
}

// KickPlayer replaces the seat occupant with a connected bot and
// clears that bot's hand. Usable at any phase; the phase is untouched
// and no re-deal happens.
func (s *Service) KickPlayer(ctx context.Context, roomID string, seat int) ([]Event, error) {
	if seat < 0 || seat >= domain.NumSeats {
		return nil, ErrSlotNotFound
	}
	if _, err := s.loadRoom(ctx, roomID); err != nil {
		return nil, err
	}

	replacement := bot.Player(seat)
	if err := s.store.SavePlayer(ctx, roomID, seat, replacement); err != nil {
		return nil, storeErr("save player", err)
	}
	if err := s.store.SaveHand(ctx, roomID, replacement.ID, []domain.Card{}); err != nil {
		return nil, storeErr("save hand", err)
	}

	return []Event{{
		Kind:    EventPlayerKicked,
		Payload: PlayerKickedPayload{Seat: seat, Replacement: replacement},
	}}, nil
}

// MarkDisconnected clears the connection flag of the seat held by
// userID, freeing it for reclaim on a later join. Unknown identities
// are ignored.
func (s *Service) MarkDisconnected(ctx context.Context, roomID, userID string) error {
	players, err := s.store.LoadPlayers(ctx, roomID)
	if err != nil {
		return storeErr("load players", err)
	}
	for seat, p := range players {
		if p.Kind == domain.PlayerHuman && p.ID == userID {
			p.Connected = false
			if err := s.store.SavePlayer(ctx, roomID, seat, p); err != nil {
				return storeErr("save player", err)
			}
			return nil
		}
	}
	return nil
}

// StartDeal fills empty seats with bots, shuffles a fresh deck and
// deals it: one card per seat round-robin for the pending reserve
// rounds, then the opening hands the same way. The hakim is drawn
// uniformly; scores and the trick reset. Calling this on a dealt room
// re-deals and discards prior hands.
func (s *Service) StartDeal(ctx context.Context, roomID string) ([]Event, error) {
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	players, err := s.store.LoadPlayers(ctx, roomID)
	if err != nil {
		return nil, storeErr("load players", err)
	}

	var events []Event
	for seat, p := range players {
		if p.Occupied() {
			continue
		}
		players[seat] = bot.Player(seat)
		if err := s.store.SavePlayer(ctx, roomID, seat, players[seat]); err != nil {
			return nil, storeErr("save player", err)
		}
		events = append(events, Event{
			Kind:    EventPlayerJoined,
			Payload: PlayerJoinedPayload{Seat: seat, Player: players[seat]},
		})
	}

	deck := domain.BuildDeck()
	domain.Shuffle(deck, s.rng)

	pending := make(map[int][]domain.Card, domain.NumSeats)
	idx := 0
	for round := 0; round < domain.PendingPerSeat; round++ {
		for seat := 0; seat < domain.NumSeats; seat++ {
			pending[seat] = append(pending[seat], deck[idx])
			idx++
		}
	}

	hands := make([][]domain.Card, domain.NumSeats)
	for round := 0; round < domain.OpeningHandSize; round++ {
		for seat := 0; seat < domain.NumSeats; seat++ {
			hands[seat] = append(hands[seat], deck[idx])
			idx++
		}
	}

	for seat := 0; seat < domain.NumSeats; seat++ {
		owner := players[seat].ID
		if err := s.store.SaveHand(ctx, roomID, owner, hands[seat]); err != nil {
			return nil, storeErr("save hand", err)
		}
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Owner: owner, Seat: seat, Hand: hands[seat]},
			Recipients: []string{owner},
		})
	}

	room.Deck = deck[idx:]
	room.Pending = pending
	room.HakimSeat = s.rng.Intn(domain.NumSeats)
	room.CurrentTurn = room.HakimSeat
	room.Phase = domain.PhaseChoosingHakim
	room.Trump = domain.TrumpNone
	room.Scores = domain.TeamScores{}
	room.LastTrickWinner = -1
	room.WinnerTeam = ""
	room.FinishedAt = time.Time{}

	if err := s.store.SaveTrick(ctx, roomID, nil); err != nil {
		return nil, storeErr("save trick", err)
	}
	if err := s.store.SaveRoom(ctx, roomID, room); err != nil {
		return nil, storeErr("save room", err)
	}

	events = append(events, Event{
		Kind: EventDealStarted,
		Payload: DealStartedPayload{
			HakimSeat:   room.HakimSeat,
			CurrentTurn: room.CurrentTurn,
			Phase:       room.Phase,
		},
	})
	return events, nil
}

// SetTrump fixes the trump for the deal and releases every seat's
// pending reserve into its hand. The hakim keeps the lead; the turn
// does not move.
func (s *Service) SetTrump(ctx context.Context, roomID string, trump domain.Trump) ([]Event, error) {
	if !trump.Valid() {
		return nil, ErrInvalidTrump
	}
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	players, err := s.store.LoadPlayers(ctx, roomID)
	if err != nil {
		return nil, storeErr("load players", err)
	}

	var events []Event
	for seat, p := range players {
		reserve := room.Pending[seat]
		if !p.Occupied() || len(reserve) == 0 {
			continue
		}
		hand, _, err := s.store.LoadHand(ctx, roomID, p.ID)
		if err != nil {
			return nil, storeErr("load hand", err)
		}
		hand = domain.AppendCards(hand, reserve)
		if err := s.store.SaveHand(ctx, roomID, p.ID, hand); err != nil {
			return nil, storeErr("save hand", err)
		}
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Owner: p.ID, Seat: seat, Hand: hand},
			Recipients: []string{p.ID},
		})
	}

	room.Trump = trump
	room.Pending = nil
	room.Phase = domain.PhasePlaying
	if err := s.store.SaveRoom(ctx, roomID, room); err != nil {
		return nil, storeErr("save room", err)
	}

	events = append(events, Event{
		Kind:    EventTrumpSet,
		Payload: TrumpSetPayload{Trump: trump, CurrentTurn: room.CurrentTurn},
	})
	return events, nil
}

// PlayCard removes the card from the seat's hand and appends it to the
// current trick. Hand membership is the only legality check. The turn
// advances by one, except that a completed trick forces it to the
// winner's seat; the winning team scores, and the game finishes the
// instant a team reaches the target.
func (s *Service) PlayCard(ctx context.Context, roomID string, seat int, card domain.Card) (PlayOutcome, []Event, error) {
	outcome := PlayOutcome{TrickWinner: -1}

	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return outcome, nil, err
	}
	players, err := s.store.LoadPlayers(ctx, roomID)
	if err != nil {
		return outcome, nil, storeErr("load players", err)
	}
	if seat < 0 || seat >= domain.NumSeats || !players[seat].Occupied() {
		return outcome, nil, ErrSlotNotFound
	}

	owner := players[seat].ID
	hand, found, err := s.store.LoadHand(ctx, roomID, owner)
	if err != nil {
		return outcome, nil, storeErr("load hand", err)
	}
	if !found {
		return outcome, nil, ErrHandNotFound
	}
	hand, removed := domain.RemoveCard(hand, card)
	if !removed {
		return outcome, nil, ErrCardNotInHand
	}
	if err := s.store.SaveHand(ctx, roomID, owner, hand); err != nil {
		return outcome, nil, storeErr("save hand", err)
	}

	plays, err := s.store.LoadTrick(ctx, roomID)
	if err != nil {
		return outcome, nil, storeErr("load trick", err)
	}
	plays = append(plays, domain.Play{Seat: seat, Card: card, PlayedAt: time.Now().UTC()})
	room.CurrentTurn = (room.CurrentTurn + 1) % domain.NumSeats

	var events []Event

	if len(plays) == domain.TrickSize {
		winner, _ := domain.TrickWinner(plays, room.EffectiveTrump())
		team := domain.TeamForSeat(winner)

		if err := s.store.SaveTrick(ctx, roomID, nil); err != nil {
			return outcome, nil, storeErr("save trick", err)
		}
		room.Scores.Add(team)
		room.LastTrickWinner = winner
		room.CurrentTurn = winner
		outcome.TrickWinner = winner

		events = append(events,
			Event{Kind: EventCardPlayed, Payload: CardPlayedPayload{Seat: seat, Card: card, NextTurn: room.CurrentTurn}},
			Event{Kind: EventTrickWon, Payload: TrickWonPayload{WinnerSeat: winner, Team: team, Scores: room.Scores}},
		)

		if room.Scores.For(team) >= room.TargetTricks && room.Phase != domain.PhaseFinished {
			room.Phase = domain.PhaseFinished
			room.WinnerTeam = team
			room.FinishedAt = time.Now().UTC()
			outcome.Finished = true
			outcome.WinnerTeam = team
			events = append(events, Event{
				Kind:    EventGameEnded,
				Payload: GameEndedPayload{WinnerTeam: team, Scores: room.Scores},
			})
		}
	} else {
		if err := s.store.SaveTrick(ctx, roomID, plays); err != nil {
			return outcome, nil, storeErr("save trick", err)
		}
		events = append(events, Event{
			Kind:    EventCardPlayed,
			Payload: CardPlayedPayload{Seat: seat, Card: card, NextTurn: room.CurrentTurn},
		})
	}

	if err := s.store.SaveRoom(ctx, roomID, room); err != nil {
		return outcome, nil, storeErr("save room", err)
	}
	return outcome, events, nil
}

// BotPlay selects a card for the bot at the seat with the greedy
// policy and plays it with the same contract as a human play.
func (s *Service) BotPlay(ctx context.Context, roomID string, seat int) (PlayOutcome, []Event, error) {
	outcome := PlayOutcome{TrickWinner: -1}

	players, err := s.store.LoadPlayers(ctx, roomID)
	if err != nil {
		return outcome, nil, storeErr("load players", err)
	}
	if seat < 0 || seat >= domain.NumSeats || !players[seat].Occupied() {
		return outcome, nil, ErrSlotNotFound
	}

	hand, found, err := s.store.LoadHand(ctx, roomID, players[seat].ID)
	if err != nil {
		return outcome, nil, storeErr("load hand", err)
	}
	if !found {
		return outcome, nil, ErrBotNoHand
	}
	if len(hand) == 0 {
		return outcome, nil, ErrBotNoCards
	}

	plays, err := s.store.LoadTrick(ctx, roomID)
	if err != nil {
		return outcome, nil, storeErr("load trick", err)
	}

	card := bot.GreedyBrain{}.ChooseCard(plays, hand)
	return s.PlayCard(ctx, roomID, seat, card)
}

// GetState returns a read-only snapshot of the room, its seats, the
// hands of occupied seats and the in-progress trick.
func (s *Service) GetState(ctx context.Context, roomID string) (*Snapshot, error) {
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	players, err := s.store.LoadPlayers(ctx, roomID)
	if err != nil {
		return nil, storeErr("load players", err)
	}
	trick, err := s.store.LoadTrick(ctx, roomID)
	if err != nil {
		return nil, storeErr("load trick", err)
	}

	hands := make(map[string][]domain.Card)
	for _, p := range players {
		if !p.Occupied() {
			continue
		}
		hand, found, err := s.store.LoadHand(ctx, roomID, p.ID)
		if err != nil {
			return nil, storeErr("load hand", err)
		}
		if found {
			hands[p.ID] = hand
		}
	}

	return &Snapshot{Room: *room, Players: players, Hands: hands, Trick: trick}, nil
}
