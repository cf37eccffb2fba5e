package term

import (
	"fmt"

	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/systems"
	"github.com/gdamore/tcell/v2"
)

// StatusLine is the terminal HUD: health, countdown and result on one row.
type StatusLine struct {
	PlayerPercent int
	BotPercent    int
	Timer         int
	Result        string
	Difficulty    cfg.BotDifficulty
	Note          string
}

// NewStatusLine creates a status line for a fresh match.
func NewStatusLine() *StatusLine {
	return &StatusLine{
		PlayerPercent: 100,
		BotPercent:    100,
		Timer:         cfg.Match.Countdown,
		Difficulty:    cfg.StartDifficulty,
	}
}

// Observers keeps the line in sync with a match.
func (l *StatusLine) Observers() systems.Observers {
	return systems.Observers{
		PlayerHealth: func(p int) { l.PlayerPercent = p },
		BotHealth:    func(p int) { l.BotPercent = p },
		Timer: func(v int) {
			if v == cfg.Match.Countdown {
				l.Result = ""
			}
			l.Timer = v
		},
		Result: func(o cfg.Outcome) { l.Result = o.Text() },
	}
}

// String renders the line without styling.
func (l *StatusLine) String() string {
	s := fmt.Sprintf("P1 %3d%%  |  %2d  |  P2 %3d%% (%s)", l.PlayerPercent, l.Timer, l.BotPercent, l.Difficulty)
	if l.Result != "" {
		s += "  |  " + l.Result + " - r to play again"
	}
	if l.Note != "" {
		s += "  |  " + l.Note
	}
	return s
}

// Draw writes the line on the top row.
func (l *StatusLine) Draw(s *Surface) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	if l.Result != "" {
		style = style.Foreground(tcell.ColorYellow)
	}
	s.DrawText(0, 0, l.String(), style)
}
