package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
)

// Autopilot drives the player from the match state so a match can run with
// nobody at the keyboard. It walks into hitbox range and swings at a fixed
// rhythm.
type Autopilot struct {
	m *Match

	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
	frame    int

	// SwingEvery is the number of frames between attack presses.
	SwingEvery int
	// Idle keeps the player still. The bot still fights.
	Idle bool
}

// NewAutopilot creates an autopilot for the player of m.
func NewAutopilot(m *Match) *Autopilot {
	return &Autopilot{m: m, SwingEvery: 12}
}

// Plan decides this frame's actions. Call it once before every Update.
func (a *Autopilot) Plan() {
	a.previous = a.current
	a.current = [cfg.ActionCount]bool{}
	a.frame++
	if a.Idle || a.m.Finished() {
		return
	}

	player := components.Object.Get(a.m.player)
	bot := components.Object.Get(a.m.bot)
	reach := cfg.Fighter.HitboxWidth + components.Fighter.Get(a.m.player).HitboxOffset.X
	dx := bot.X - player.X

	switch {
	case dx > reach-bot.W:
		a.current[cfg.ActionMoveRight] = true
	case dx < -bot.W+cfg.Fighter.WalkSpeed:
		a.current[cfg.ActionMoveLeft] = true
	}

	inReach := dx <= reach && dx+bot.W >= 0
	if inReach && a.SwingEvery > 0 && a.frame%a.SwingEvery == 0 {
		a.current[cfg.ActionAttack] = true
	}
}

func (a *Autopilot) Pressed(action cfg.ActionID) bool {
	return a.current[action]
}

func (a *Autopilot) JustPressed(action cfg.ActionID) bool {
	return a.current[action] && !a.previous[action]
}
