package config

// MatchStateID is the lifecycle state of a match
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota
	MatchStateFinished
)

// Outcome is the result of a match
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomePlayer
	OutcomeBot
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayer:
		return "player"
	case OutcomeBot:
		return "bot"
	case OutcomeTie:
		return "tie"
	default:
		return "ongoing"
	}
}

// Text is the result line shown when a match ends.
func (o Outcome) Text() string {
	switch o {
	case OutcomePlayer:
		return "Player 1 Wins"
	case OutcomeBot:
		return "Player 2 Wins"
	case OutcomeTie:
		return "Tie"
	default:
		return ""
	}
}

// HorizontalKey records which horizontal direction was pressed last
type HorizontalKey int

const (
	KeyNone HorizontalKey = iota
	KeyLeft
	KeyRight
)
