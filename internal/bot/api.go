package bot

import "hokm/internal/domain"

// Brain is the decision policy a bot seat plays with.
type Brain interface {
	// ChooseCard selects the card to play given the plays already in
	// the current trick. The hand is never empty when called.
	ChooseCard(plays []domain.Play, hand []domain.Card) domain.Card

	// ChooseTrump selects a trump for a bot hakim from its opening hand.
	ChooseTrump(hand []domain.Card) domain.Trump
}
