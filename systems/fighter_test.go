package systems

import (
	"testing"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/stretchr/testify/assert"
)

func TestUpdateFighterClampsToArena(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player := m.Player()

	place(player, -10, 0)
	UpdateFighter(player)
	assert.Equal(t, 0.0, components.Object.Get(player).X)

	place(player, 1000, 0)
	UpdateFighter(player)
	assert.Equal(t, float64(cfg.C.Width)-cfg.Fighter.Width, components.Object.Get(player).X)
}

func TestUpdateFighterGravity(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player := m.Player()
	physics := components.Physics.Get(player)

	place(player, 0, 0)
	UpdateFighter(player)
	assert.InDelta(t, 0.7, physics.Velocity.Y, 1e-9)
	assert.Equal(t, 0.0, components.Object.Get(player).Y)

	UpdateFighter(player)
	assert.InDelta(t, 1.4, physics.Velocity.Y, 1e-9)
	assert.InDelta(t, 0.7, components.Object.Get(player).Y, 1e-9)
}

func TestUpdateFighterStopsOnFloor(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player := m.Player()
	physics := components.Physics.Get(player)

	floorY := float64(cfg.C.Height) - cfg.Fighter.Height
	place(player, 0, floorY-5)
	physics.Velocity.Y = 10

	UpdateFighter(player)
	assert.Equal(t, 0.0, physics.Velocity.Y)
	assert.Equal(t, floorY+5, components.Object.Get(player).Y, "the step that reaches the floor is not corrected")

	UpdateFighter(player)
	assert.Equal(t, 0.0, physics.Velocity.Y)
	assert.Equal(t, floorY+5, components.Object.Get(player).Y)
}

func TestUpdateFighterHitboxTrailsBody(t *testing.T) {
	m, _, _ := newTestMatch(t)
	bot := m.Bot()
	fighter := components.Fighter.Get(bot)

	place(bot, 300, 426)
	components.Physics.Get(bot).Velocity.X = 15
	UpdateFighter(bot)

	assert.Equal(t, 315.0, components.Object.Get(bot).X)
	assert.Equal(t, 250.0, fighter.Hitbox.Position.X, "offset applied to the pre-move position")
	assert.Equal(t, 426.0, fighter.Hitbox.Position.Y)
	assert.Equal(t, cfg.Fighter.HitboxWidth, fighter.Hitbox.Width)
	assert.Equal(t, cfg.Fighter.HitboxHeight, fighter.Hitbox.Height)
}

func TestJumpWorksInMidAir(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player := m.Player()

	place(player, 0, 100)
	Jump(player)
	assert.Equal(t, cfg.Fighter.JumpSpeed, components.Physics.Get(player).Velocity.Y)
}
