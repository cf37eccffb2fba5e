package systems

import (
	"time"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/shared/gamemath"
)

// UpdateBot runs the bot's decision step and then its physics.
//
// Each tick the bot may pick a new strafe direction at random. Once its
// cooldown has passed and the player is within range it swings; the cooldown
// restarts even when the swing was ignored because one was already running.
func (m *Match) UpdateBot(now time.Time) {
	bot := components.Bot.Get(m.bot)
	obj := components.Object.Get(m.bot)
	physics := components.Physics.Get(m.bot)

	if m.rng.Float64() < cfg.Bot.StrafeChance {
		if m.rng.Float64() > 0.5 {
			physics.Velocity.X = bot.Speed
		} else {
			physics.Velocity.X = -bot.Speed
		}
	}

	if now.Sub(bot.LastAttack) >= bot.AttackCooldown {
		target := components.Object.Get(m.player)
		if gamemath.Abs(target.X-obj.X) < bot.AttackRange {
			m.Attack(m.bot)
			bot.LastAttack = now
		}
	}

	UpdateFighter(m.bot)

	obj.X = gamemath.ClampX(obj.X, obj.W, float64(cfg.C.Width))
	obj.Update()
}
