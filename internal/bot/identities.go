package bot

import (
	"fmt"
	"strings"

	"hokm/internal/domain"
)

const idPrefix = "bot_"

// ID returns the synthetic identity for a bot occupying the seat.
func ID(seat int) string {
	return fmt.Sprintf("%s%d", idPrefix, seat)
}

// DisplayName returns the advertised name for a bot seat.
func DisplayName(seat int) string {
	return fmt.Sprintf("Bot %d", seat+1)
}

// IsBot reports whether the identity belongs to a bot seat.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, idPrefix)
}

// Player builds the seat occupant record for a bot at the seat.
func Player(seat int) domain.Player {
	return domain.Player{
		ID:          ID(seat),
		DisplayName: DisplayName(seat),
		Kind:        domain.PlayerBot,
		Connected:   true,
	}
}
