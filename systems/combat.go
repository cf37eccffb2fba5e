package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
)

// TestCollision reports whether the attacker's hitbox overlaps the
// defender's body. It is not symmetric.
func TestCollision(attacker, defender *donburi.Entry) bool {
	hitbox := components.Fighter.Get(attacker).Hitbox
	body := components.Object.Get(defender).Box()
	return hitbox.Overlaps(body)
}

// ResolveFrame applies the flat per-frame hit for every fighter that is
// attacking with its hitbox on the opponent. A landed hit ends the swing.
func ResolveFrame(player, bot *donburi.Entry, obs *Observers) {
	if hitOpponent(player, bot) {
		takeDamage(bot, cfg.Fighter.FlatDamage)
		obs.botHealth(healthPercent(bot))
	}
	if hitOpponent(bot, player) {
		takeDamage(player, cfg.Fighter.FlatDamage)
		obs.playerHealth(healthPercent(player))
	}
}

func hitOpponent(attacker, defender *donburi.Entry) bool {
	fighter := components.Fighter.Get(attacker)
	if !fighter.IsAttacking || !TestCollision(attacker, defender) {
		return false
	}
	fighter.IsAttacking = false
	return true
}

// DetermineOutcome compares remaining health. Equal health, including both
// fighters at or below zero with the same value, is a tie.
func DetermineOutcome(player, bot *donburi.Entry) cfg.Outcome {
	p := components.Health.Get(player).Current
	b := components.Health.Get(bot).Current
	switch {
	case p > b:
		return cfg.OutcomePlayer
	case b > p:
		return cfg.OutcomeBot
	default:
		return cfg.OutcomeTie
	}
}

// BodiesInContact reports whether the two fighter bodies touch. The arena
// space narrows the candidates before the exact rectangle test.
func BodiesInContact(a, b *donburi.Entry) bool {
	objA := components.Object.Get(a)
	objB := components.Object.Get(b)
	if objA.Space == nil {
		return objA.Box().Overlaps(objB.Box())
	}

	check := objA.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvFighter) {
		if o == objB.Object {
			return objA.Box().Overlaps(objB.Box())
		}
	}
	return false
}
