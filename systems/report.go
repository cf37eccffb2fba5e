package systems

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/automoto/duel/components"
)

// MatchReport is a snapshot of a match for logs and the clipboard.
type MatchReport struct {
	Round      int
	Frames     int
	Difficulty string
	Timer      int
	Outcome    string
	Result     string

	PlayerHealth int
	BotHealth    int
	PlayerX      float64
	BotX         float64
	InContact    bool
	Pending      int
}

// Report captures the current state of m.
func Report(m *Match) MatchReport {
	data := m.Data()
	return MatchReport{
		Round:        data.Round,
		Frames:       data.Frames,
		Difficulty:   data.Difficulty.String(),
		Timer:        data.Timer,
		Outcome:      data.Outcome.String(),
		Result:       data.Outcome.Text(),
		PlayerHealth: components.Health.Get(m.player).Current,
		BotHealth:    components.Health.Get(m.bot).Current,
		PlayerX:      components.Object.Get(m.player).X,
		BotX:         components.Object.Get(m.bot).X,
		InContact:    BodiesInContact(m.player, m.bot),
		Pending:      m.sched.Pending(),
	}
}

func (r MatchReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- duel match report ---\n")
	fmt.Fprintf(&b, "round=%d frames=%d difficulty=%s timer=%d\n", r.Round, r.Frames, r.Difficulty, r.Timer)
	fmt.Fprintf(&b, "player hp=%d x=%.0f | bot hp=%d x=%.0f | contact=%v pending=%d\n",
		r.PlayerHealth, r.PlayerX, r.BotHealth, r.BotX, r.InContact, r.Pending)
	if r.Result != "" {
		fmt.Fprintf(&b, "outcome=%s (%s)\n", r.Outcome, r.Result)
	} else {
		fmt.Fprintf(&b, "outcome=%s\n", r.Outcome)
	}
	return b.String()
}

// CopyReport puts the current report on the system clipboard.
func CopyReport(m *Match) error {
	if clipboard.Unsupported {
		return fmt.Errorf("copy report: clipboard unsupported on this system")
	}
	if err := clipboard.WriteAll(Report(m).String()); err != nil {
		return fmt.Errorf("copy report: %w", err)
	}
	return nil
}
