package systems

import (
	"fmt"

	cfg "github.com/automoto/duel/config"
)

// Tally counts finished matches in memory.
type Tally struct {
	PlayerWins int
	BotWins    int
	Ties       int
}

// Add counts one outcome. Ongoing is ignored.
func (r *Tally) Add(outcome cfg.Outcome) {
	switch outcome {
	case cfg.OutcomePlayer:
		r.PlayerWins++
	case cfg.OutcomeBot:
		r.BotWins++
	case cfg.OutcomeTie:
		r.Ties++
	}
}

func (r Tally) String() string {
	return fmt.Sprintf("P1 %d  P2 %d  Tie %d", r.PlayerWins, r.BotWins, r.Ties)
}
