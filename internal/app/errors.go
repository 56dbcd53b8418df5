package app

import (
	"errors"
	"fmt"
)

// Operation errors. All are terminal for the single operation that
// raised them; there are no internal retries and no rollback of writes
// already made.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrRoomNotFound  = errors.New("room not found")
	ErrSlotNotFound  = errors.New("slot not found")
	ErrRoomFull      = errors.New("room full")
	ErrHandNotFound  = errors.New("hand not found")
	ErrCardNotInHand = errors.New("card not in hand")
	ErrInvalidTrump  = errors.New("invalid trump")
	ErrBotNoHand     = errors.New("bot has no hand")
	ErrBotNoCards    = errors.New("bot has no cards")

	// ErrStore wraps opaque failures from the State Store collaborator.
	ErrStore = errors.New("store failure")
)

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}
