package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateFighter advances one fighter by a single tick.
//
// The hitbox is placed from the position at the start of the tick, so it
// trails the body by one frame while moving.
func UpdateFighter(entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)
	fighter := components.Fighter.Get(entry)

	fighter.Hitbox = gamemath.NewBox(
		obj.X+fighter.HitboxOffset.X, obj.Y,
		cfg.Fighter.HitboxWidth, cfg.Fighter.HitboxHeight,
	)

	obj.X += physics.Velocity.X
	obj.Y += physics.Velocity.Y

	physics.Velocity.Y = gamemath.ApplyGravity(obj.Y, obj.H, physics.Velocity.Y,
		cfg.Arena.Gravity, float64(cfg.C.Height))

	obj.X = gamemath.ClampX(obj.X, obj.W, float64(cfg.C.Width))
	obj.Update()
}

// Jump gives the fighter an upward kick. It is not restricted to grounded
// fighters.
func Jump(entry *donburi.Entry) {
	components.Physics.Get(entry).Velocity.Y = cfg.Fighter.JumpSpeed
}

// takeDamage lowers health by amount and returns the new value. Health may
// go negative.
func takeDamage(entry *donburi.Entry, amount int) int {
	health := components.Health.Get(entry)
	health.Current -= amount
	return health.Current
}

// healthPercent maps a fighter's health onto 0..100 for the HUD.
func healthPercent(entry *donburi.Entry) int {
	health := components.Health.Get(entry)
	if health.Max <= 0 {
		return 0
	}
	return health.Current * 100 / health.Max
}

// resetFighter returns a fighter to its spawn state.
func resetFighter(entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	fighter := components.Fighter.Get(entry)
	health := components.Health.Get(entry)

	obj.X = fighter.Spawn.X
	obj.Y = fighter.Spawn.Y
	obj.Update()

	components.Physics.Get(entry).Velocity = gamemath.Vector2{}
	health.Current = health.Max

	fighter.IsAttacking = false
	fighter.AttackWindow = 0
	fighter.LastHorizontalKey = cfg.KeyNone
	fighter.Hitbox = gamemath.NewBox(
		obj.X+fighter.HitboxOffset.X, obj.Y,
		cfg.Fighter.HitboxWidth, cfg.Fighter.HitboxHeight,
	)
}
