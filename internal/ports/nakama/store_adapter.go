package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"hokm/internal/domain"
	"hokm/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	roomCollection   = "hokm_rooms"
	playerCollection = "hokm_players"
	handCollection   = "hokm_hands"
	trickCollection  = "hokm_tricks"
)

// StorageIO is the slice of runtime.NakamaModule the state store needs.
type StorageIO interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// NakamaStateStore implements ports.StateStore over Nakama storage.
// Records are server-owned; the match loop is the only writer per room,
// so writes use last-write-wins versions.
type NakamaStateStore struct {
	nk StorageIO
}

// NewNakamaStateStore creates a storage-backed state store.
func NewNakamaStateStore(nk StorageIO) *NakamaStateStore {
	return &NakamaStateStore{nk: nk}
}

type playersRecord struct {
	Players [domain.NumSeats]domain.Player `json:"players"`
}

type handRecord struct {
	Cards []domain.Card `json:"cards"`
}

type trickRecord struct {
	Plays []domain.Play `json:"plays"`
}

func (s *NakamaStateStore) readObject(ctx context.Context, collection, key string) ([]byte, bool, error) {
	objects, err := s.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: collection, Key: key},
	})
	if err != nil {
		return nil, false, fmt.Errorf("storage read %s/%s: %w", collection, key, err)
	}
	if len(objects) == 0 {
		return nil, false, nil
	}
	return []byte(objects[0].Value), true, nil
}

func (s *NakamaStateStore) writeObject(ctx context.Context, collection, key string, record interface{}) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, key, err)
	}
	_, err = s.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      collection,
			Key:             key,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("storage write %s/%s: %w", collection, key, err)
	}
	return nil
}

// LoadRoom returns the room aggregate, or ports.ErrNotFound.
func (s *NakamaStateStore) LoadRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	data, found, err := s.readObject(ctx, roomCollection, roomID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ports.ErrNotFound
	}
	var room domain.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("unmarshal room %s: %w", roomID, err)
	}
	return &room, nil
}

func (s *NakamaStateStore) SaveRoom(ctx context.Context, roomID string, room *domain.Room) error {
	return s.writeObject(ctx, roomCollection, roomID, room)
}

// LoadPlayers returns all four seats; a room with no player record yet
// comes back with every seat empty.
func (s *NakamaStateStore) LoadPlayers(ctx context.Context, roomID string) ([domain.NumSeats]domain.Player, error) {
	var record playersRecord
	data, found, err := s.readObject(ctx, playerCollection, roomID)
	if err != nil {
		return record.Players, err
	}
	if !found {
		return record.Players, nil
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record.Players, fmt.Errorf("unmarshal players %s: %w", roomID, err)
	}
	return record.Players, nil
}

func (s *NakamaStateStore) SavePlayer(ctx context.Context, roomID string, seat int, player domain.Player) error {
	if seat < 0 || seat >= domain.NumSeats {
		return fmt.Errorf("seat %d out of range", seat)
	}
	players, err := s.LoadPlayers(ctx, roomID)
	if err != nil {
		return err
	}
	players[seat] = player
	return s.writeObject(ctx, playerCollection, roomID, playersRecord{Players: players})
}

func handKey(roomID, owner string) string {
	return roomID + ":" + owner
}

// LoadHand distinguishes a dealt-but-empty hand (found, zero cards)
// from an owner with no ledger entry at all.
func (s *NakamaStateStore) LoadHand(ctx context.Context, roomID, owner string) ([]domain.Card, bool, error) {
	data, found, err := s.readObject(ctx, handCollection, handKey(roomID, owner))
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	var record handRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false, fmt.Errorf("unmarshal hand %s/%s: %w", roomID, owner, err)
	}
	return record.Cards, true, nil
}

func (s *NakamaStateStore) SaveHand(ctx context.Context, roomID, owner string, cards []domain.Card) error {
	if cards == nil {
		cards = []domain.Card{}
	}
	return s.writeObject(ctx, handCollection, handKey(roomID, owner), handRecord{Cards: cards})
}

func (s *NakamaStateStore) LoadTrick(ctx context.Context, roomID string) ([]domain.Play, error) {
	data, found, err := s.readObject(ctx, trickCollection, roomID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var record trickRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshal trick %s: %w", roomID, err)
	}
	return record.Plays, nil
}

func (s *NakamaStateStore) SaveTrick(ctx context.Context, roomID string, plays []domain.Play) error {
	return s.writeObject(ctx, trickCollection, roomID, trickRecord{Plays: plays})
}

var _ ports.StateStore = (*NakamaStateStore)(nil)
