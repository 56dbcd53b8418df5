package ports

import (
	"context"
	"errors"

	"hokm/internal/domain"
)

// ErrNotFound is returned by a StateStore when a room has no record.
var ErrNotFound = errors.New("not found")

// StateStore persists the per-room aggregates of the game state
// machine. All methods are scoped by room id. Implementations must
// provide read-your-writes consistency per room; serialization of
// whole operations is the caller's responsibility (one match loop per
// room, or a per-room lock).
type StateStore interface {
	// LoadRoom returns the room aggregate, or ErrNotFound.
	LoadRoom(ctx context.Context, roomID string) (*domain.Room, error)
	SaveRoom(ctx context.Context, roomID string, room *domain.Room) error

	// LoadPlayers returns all four seats; an unoccupied seat comes
	// back with Kind PlayerEmpty.
	LoadPlayers(ctx context.Context, roomID string) ([domain.NumSeats]domain.Player, error)
	SavePlayer(ctx context.Context, roomID string, seat int, player domain.Player) error

	// LoadHand returns the hand held by owner and whether a ledger
	// entry exists at all; a dealt-but-empty hand is found with zero
	// cards.
	LoadHand(ctx context.Context, roomID, owner string) ([]domain.Card, bool, error)
	SaveHand(ctx context.Context, roomID, owner string, cards []domain.Card) error

	LoadTrick(ctx context.Context, roomID string) ([]domain.Play, error)
	SaveTrick(ctx context.Context, roomID string, plays []domain.Play) error
}
