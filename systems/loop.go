package systems

import (
	"time"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/yohamta/donburi"
)

// Update fires every due delayed event and then advances the match one
// frame. Hosts call it once per tick.
func (m *Match) Update(input InputProvider) {
	now := m.clock.Now()
	m.sched.RunDue(now)
	m.Step(now, input)
}

// Step advances the match one frame at now. Difficulty and reset commands
// are honored even after the match has finished; everything else is frozen
// until then.
func (m *Match) Step(now time.Time, input InputProvider) {
	if input == nil {
		input = NoInput{}
	}
	if m.handleCommands(input) {
		// The match was rebuilt; the reset state is this frame's state.
		return
	}

	data := m.Data()
	if data.Finished() {
		return
	}

	m.handleTriggers(input)

	UpdateFighter(m.player)
	m.UpdateBot(now)
	ApplyPlayerMovement(m.player, input)

	ResolveFrame(m.player, m.bot, &m.observers)

	if components.Health.Get(m.player).Defeated() || components.Health.Get(m.bot).Defeated() {
		m.End(DetermineOutcome(m.player, m.bot))
	}
	data.Frames++
}

// handleCommands applies difficulty and reset keys. It reports whether the
// match was reset.
func (m *Match) handleCommands(input InputProvider) bool {
	switch {
	case input.JustPressed(cfg.ActionDifficultyEasy):
		m.SetDifficulty(cfg.DifficultyEasy)
	case input.JustPressed(cfg.ActionDifficultyNormal):
		m.SetDifficulty(cfg.DifficultyNormal)
	case input.JustPressed(cfg.ActionDifficultyHard):
		m.SetDifficulty(cfg.DifficultyHard)
	case input.JustPressed(cfg.ActionReset):
		m.Reset()
	default:
		return false
	}
	return true
}

// handleTriggers applies the key-down actions for both fighters. When left
// and right go down on the same frame, right wins.
func (m *Match) handleTriggers(input InputProvider) {
	player := components.Fighter.Get(m.player)
	if input.JustPressed(cfg.ActionMoveLeft) {
		player.LastHorizontalKey = cfg.KeyLeft
	}
	if input.JustPressed(cfg.ActionMoveRight) {
		player.LastHorizontalKey = cfg.KeyRight
	}
	if input.JustPressed(cfg.ActionJump) {
		Jump(m.player)
	}
	if input.JustPressed(cfg.ActionAttack) {
		m.Attack(m.player)
	}

	// The bot's arrow keys only record direction; its movement comes from
	// the strafe roll.
	bot := components.Fighter.Get(m.bot)
	if input.JustPressed(cfg.ActionBotLeft) {
		bot.LastHorizontalKey = cfg.KeyLeft
	}
	if input.JustPressed(cfg.ActionBotRight) {
		bot.LastHorizontalKey = cfg.KeyRight
	}
	if input.JustPressed(cfg.ActionBotJump) {
		Jump(m.bot)
	}
	if input.JustPressed(cfg.ActionBotAttack) {
		m.Attack(m.bot)
	}
}

// ApplyPlayerMovement sets the player's horizontal velocity for the next
// frame. A held key only moves the player when it was also the most recent
// horizontal key pressed.
func ApplyPlayerMovement(player *donburi.Entry, input InputProvider) {
	fighter := components.Fighter.Get(player)
	physics := components.Physics.Get(player)

	physics.Velocity.X = 0
	switch {
	case input.Pressed(cfg.ActionMoveLeft) && fighter.LastHorizontalKey == cfg.KeyLeft:
		physics.Velocity.X = -cfg.Fighter.WalkSpeed
	case input.Pressed(cfg.ActionMoveRight) && fighter.LastHorizontalKey == cfg.KeyRight:
		physics.Velocity.X = cfg.Fighter.WalkSpeed
	}
}
