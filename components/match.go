package components

import (
	cfg "github.com/automoto/duel/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State      cfg.MatchStateID
	Outcome    cfg.Outcome
	Timer      int // countdown value
	Difficulty cfg.BotDifficulty
	Frames     int // simulation steps since the last reset
	Round      int // incremented on every reset
}

var Match = donburi.NewComponentType[MatchData]()

// Finished reports whether the match has ended.
func (m *MatchData) Finished() bool {
	return m.State == cfg.MatchStateFinished
}
