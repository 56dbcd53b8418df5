package store

import (
	"context"
	"sync"

	"hokm/internal/domain"
	"hokm/internal/ports"
)

// Memory is an in-process StateStore. Each room record carries its own
// lock so operations on different rooms never contend; values are
// copied on the way in and out so callers cannot alias stored state.
type Memory struct {
	mu    sync.RWMutex
	rooms map[string]*roomRecord
}

type roomRecord struct {
	mu      sync.Mutex
	room    domain.Room
	players [domain.NumSeats]domain.Player
	hands   map[string][]domain.Card
	trick   []domain.Play
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{rooms: make(map[string]*roomRecord)}
}

func (m *Memory) get(roomID string) (*roomRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.rooms[roomID]
	return rec, ok
}

func (m *Memory) getOrCreate(roomID string) *roomRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.rooms[roomID]
	if !ok {
		rec = &roomRecord{hands: make(map[string][]domain.Card)}
		for i := range rec.players {
			rec.players[i] = domain.Player{Kind: domain.PlayerEmpty}
		}
		m.rooms[roomID] = rec
	}
	return rec
}

// LoadRoom returns a copy of the room aggregate, or ports.ErrNotFound.
func (m *Memory) LoadRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	rec, ok := m.get(roomID)
	if !ok {
		return nil, ports.ErrNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	room := rec.room
	room.Deck = copyCards(rec.room.Deck)
	room.Pending = copyPending(rec.room.Pending)
	return &room, nil
}

func (m *Memory) SaveRoom(ctx context.Context, roomID string, room *domain.Room) error {
	rec := m.getOrCreate(roomID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.room = *room
	rec.room.Deck = copyCards(room.Deck)
	rec.room.Pending = copyPending(room.Pending)
	return nil
}

func (m *Memory) LoadPlayers(ctx context.Context, roomID string) ([domain.NumSeats]domain.Player, error) {
	var players [domain.NumSeats]domain.Player
	rec, ok := m.get(roomID)
	if !ok {
		for i := range players {
			players[i] = domain.Player{Kind: domain.PlayerEmpty}
		}
		return players, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.players, nil
}

func (m *Memory) SavePlayer(ctx context.Context, roomID string, seat int, player domain.Player) error {
	rec := m.getOrCreate(roomID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.players[seat] = player
	return nil
}

func (m *Memory) LoadHand(ctx context.Context, roomID, owner string) ([]domain.Card, bool, error) {
	rec, ok := m.get(roomID)
	if !ok {
		return nil, false, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	hand, ok := rec.hands[owner]
	if !ok {
		return nil, false, nil
	}
	return copyCards(hand), true, nil
}

func (m *Memory) SaveHand(ctx context.Context, roomID, owner string, cards []domain.Card) error {
	rec := m.getOrCreate(roomID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.hands[owner] = copyCards(cards)
	return nil
}

func (m *Memory) LoadTrick(ctx context.Context, roomID string) ([]domain.Play, error) {
	rec, ok := m.get(roomID)
	if !ok {
		return nil, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]domain.Play, len(rec.trick))
	copy(out, rec.trick)
	return out, nil
}

func (m *Memory) SaveTrick(ctx context.Context, roomID string, plays []domain.Play) error {
	rec := m.getOrCreate(roomID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.trick = make([]domain.Play, len(plays))
	copy(rec.trick, plays)
	return nil
}

// Delete removes a room and all of its records.
func (m *Memory) Delete(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, roomID)
}

func copyCards(cards []domain.Card) []domain.Card {
	if cards == nil {
		return nil
	}
	out := make([]domain.Card, len(cards))
	copy(out, cards)
	return out
}

func copyPending(pending map[int][]domain.Card) map[int][]domain.Card {
	if pending == nil {
		return nil
	}
	out := make(map[int][]domain.Card, len(pending))
	for seat, cards := range pending {
		out[seat] = copyCards(cards)
	}
	return out
}

var _ ports.StateStore = (*Memory)(nil)
