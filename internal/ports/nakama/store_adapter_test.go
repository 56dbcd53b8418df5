package nakama

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"hokm/internal/domain"
	"hokm/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// fakeStorage implements StorageIO over a plain map.
type fakeStorage struct {
	objects  map[string]string
	readErr  error
	writeErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string]string)}
}

func storageKey(collection, key string) string {
	return collection + "/" + key
}

func (f *fakeStorage) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	var out []*api.StorageObject
	for _, r := range reads {
		if value, ok := f.objects[storageKey(r.Collection, r.Key)]; ok {
			out = append(out, &api.StorageObject{Collection: r.Collection, Key: r.Key, Value: value})
		}
	}
	return out, nil
}

func (f *fakeStorage) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	var acks []*api.StorageObjectAck
	for _, w := range writes {
		f.objects[storageKey(w.Collection, w.Key)] = w.Value
		acks = append(acks, &api.StorageObjectAck{Collection: w.Collection, Key: w.Key})
	}
	return acks, nil
}

func TestStateStore_RoomRoundTrip(t *testing.T) {
	store := NewNakamaStateStore(newFakeStorage())
	ctx := context.Background()

	if _, err := store.LoadRoom(ctx, "room-1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("LoadRoom on empty storage = %v, want ports.ErrNotFound", err)
	}

	room := &domain.Room{
		TargetTricks:    7,
		TrumpMode:       domain.TrumpStandard,
		Trump:           domain.TrumpHeart,
		Phase:           domain.PhasePlaying,
		HakimSeat:       2,
		CurrentTurn:     3,
		Scores:          domain.TeamScores{TeamA: 4, TeamB: 2},
		LastTrickWinner: 1,
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.SaveRoom(ctx, "room-1", room); err != nil {
		t.Fatalf("SaveRoom error: %v", err)
	}

	loaded, err := store.LoadRoom(ctx, "room-1")
	if err != nil {
		t.Fatalf("LoadRoom error: %v", err)
	}
	if !reflect.DeepEqual(loaded, room) {
		t.Fatalf("LoadRoom = %+v, want %+v", loaded, room)
	}
}

func TestStateStore_PlayersDefaultEmpty(t *testing.T) {
	store := NewNakamaStateStore(newFakeStorage())
	ctx := context.Background()

	players, err := store.LoadPlayers(ctx, "room-1")
	if err != nil {
		t.Fatalf("LoadPlayers error: %v", err)
	}
	for seat, p := range players {
		if p.Kind != domain.PlayerEmpty {
			t.Fatalf("seat %d = %v, want empty", seat, p.Kind)
		}
	}

	human := domain.Player{ID: "user-1", DisplayName: "Player", Kind: domain.PlayerHuman, Connected: true}
	if err := store.SavePlayer(ctx, "room-1", 2, human); err != nil {
		t.Fatalf("SavePlayer error: %v", err)
	}

	players, err = store.LoadPlayers(ctx, "room-1")
	if err != nil {
		t.Fatalf("LoadPlayers error: %v", err)
	}
	if players[2] != human {
		t.Fatalf("seat 2 = %+v, want %+v", players[2], human)
	}
	if players[0].Kind != domain.PlayerEmpty || players[3].Kind != domain.PlayerEmpty {
		t.Fatal("other seats should stay empty")
	}

	if err := store.SavePlayer(ctx, "room-1", 4, human); err == nil {
		t.Fatal("SavePlayer with out-of-range seat should fail")
	}
}

func TestStateStore_HandFoundSemantics(t *testing.T) {
	store := NewNakamaStateStore(newFakeStorage())
	ctx := context.Background()

	if _, found, err := store.LoadHand(ctx, "room-1", "user-1"); err != nil || found {
		t.Fatalf("LoadHand before deal = found %t err %v, want not found", found, err)
	}

	cards := []domain.Card{{Rank: "a", Suit: domain.SuitHeart}, {Rank: "2", Suit: domain.SuitSpade}}
	if err := store.SaveHand(ctx, "room-1", "user-1", cards); err != nil {
		t.Fatalf("SaveHand error: %v", err)
	}
	loaded, found, err := store.LoadHand(ctx, "room-1", "user-1")
	if err != nil || !found {
		t.Fatalf("LoadHand = found %t err %v, want found", found, err)
	}
	if !reflect.DeepEqual(loaded, cards) {
		t.Fatalf("LoadHand = %v, want %v", loaded, cards)
	}

	// A played-out hand stays found with zero cards.
	if err := store.SaveHand(ctx, "room-1", "user-1", nil); err != nil {
		t.Fatalf("SaveHand error: %v", err)
	}
	loaded, found, err = store.LoadHand(ctx, "room-1", "user-1")
	if err != nil || !found {
		t.Fatalf("LoadHand after emptying = found %t err %v, want found", found, err)
	}
	if len(loaded) != 0 {
		t.Fatalf("LoadHand after emptying = %v, want no cards", loaded)
	}

	// Hands are scoped per room.
	if _, found, _ := store.LoadHand(ctx, "room-2", "user-1"); found {
		t.Fatal("hand leaked across rooms")
	}
}

func TestStateStore_TrickRoundTrip(t *testing.T) {
	store := NewNakamaStateStore(newFakeStorage())
	ctx := context.Background()

	plays, err := store.LoadTrick(ctx, "room-1")
	if err != nil {
		t.Fatalf("LoadTrick error: %v", err)
	}
	if len(plays) != 0 {
		t.Fatalf("LoadTrick on empty storage = %v, want empty", plays)
	}

	want := []domain.Play{
		{Seat: 0, Card: domain.Card{Rank: "a", Suit: domain.SuitHeart}, PlayedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		{Seat: 1, Card: domain.Card{Rank: "2", Suit: domain.SuitSpade}, PlayedAt: time.Date(2025, 6, 1, 12, 0, 1, 0, time.UTC)},
	}
	if err := store.SaveTrick(ctx, "room-1", want); err != nil {
		t.Fatalf("SaveTrick error: %v", err)
	}
	plays, err = store.LoadTrick(ctx, "room-1")
	if err != nil {
		t.Fatalf("LoadTrick error: %v", err)
	}
	if !reflect.DeepEqual(plays, want) {
		t.Fatalf("LoadTrick = %v, want %v", plays, want)
	}
}

func TestStateStore_PropagatesStorageErrors(t *testing.T) {
	storage := newFakeStorage()
	storage.readErr = errors.New("backend down")
	store := NewNakamaStateStore(storage)

	if _, err := store.LoadRoom(context.Background(), "room-1"); err == nil || errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("LoadRoom with failing backend = %v, want wrapped backend error", err)
	}

	storage.readErr = nil
	storage.writeErr = errors.New("backend down")
	if err := store.SaveTrick(context.Background(), "room-1", nil); err == nil {
		t.Fatal("SaveTrick with failing backend should error")
	}
}
