package factory

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/yohamta/donburi"
)

// CreateMatch creates the match singleton in the playing state.
func CreateMatch(w donburi.World, difficulty cfg.BotDifficulty) *donburi.Entry {
	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{
		State:      cfg.MatchStatePlaying,
		Outcome:    cfg.OutcomeOngoing,
		Timer:      cfg.Match.Countdown,
		Difficulty: difficulty,
	})
	return match
}
