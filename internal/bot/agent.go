package bot

import "hokm/internal/domain"

// Agent binds a bot identity at a seat to its decision policy.
type Agent struct {
	ID    string
	Seat  int
	Brain Brain
}

// NewAgent creates an agent for the given seat with the default brain.
func NewAgent(seat int) *Agent {
	return &Agent{
		ID:    ID(seat),
		Seat:  seat,
		Brain: GreedyBrain{},
	}
}

// ChooseCard proxies to the agent's brain.
func (a *Agent) ChooseCard(plays []domain.Play, hand []domain.Card) domain.Card {
	return a.Brain.ChooseCard(plays, hand)
}

// ChooseTrump proxies to the agent's brain.
func (a *Agent) ChooseTrump(hand []domain.Card) domain.Trump {
	return a.Brain.ChooseTrump(hand)
}
