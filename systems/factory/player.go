package factory

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/shared/gamemath"
	"github.com/automoto/duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the keyboard-controlled fighter.
func CreatePlayer(w donburi.World, space *resolv.Space) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	initFighter(player, space, cfg.Spawn.Player, tags.ResolvPlayer)
	return player
}

// initFighter sets the components shared by both fighters.
func initFighter(entry *donburi.Entry, space *resolv.Space, spawn cfg.SpawnPoint, resolvTag string) {
	obj := resolv.NewObject(spawn.X, spawn.Y, cfg.Fighter.Width, cfg.Fighter.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Fighter.Width, cfg.Fighter.Height))
	obj.AddTags(tags.ResolvFighter, resolvTag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	components.Physics.SetValue(entry, components.PhysicsData{})
	components.Health.SetValue(entry, components.HealthData{
		Current: cfg.Fighter.Health,
		Max:     cfg.Fighter.Health,
	})
	components.Fighter.SetValue(entry, components.FighterData{
		HitboxOffset: gamemath.Vector2{X: spawn.HitboxOffsetX},
		Hitbox: gamemath.NewBox(spawn.X+spawn.HitboxOffsetX, spawn.Y,
			cfg.Fighter.HitboxWidth, cfg.Fighter.HitboxHeight),
		Spawn: gamemath.Vector2{X: spawn.X, Y: spawn.Y},
		Color: spawn.Color,
	})
}
