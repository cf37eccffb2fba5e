package systems

import (
	"testing"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestCollisionIsDirectional(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player, bot := m.Player(), m.Bot()

	place(player, 0, 0)
	place(bot, 90, 0)
	components.Fighter.Get(player).Hitbox = gamemath.NewBox(0, 0, 100, 50)
	components.Fighter.Get(bot).Hitbox = gamemath.NewBox(500, 0, 100, 50)

	assert.True(t, TestCollision(player, bot))
	assert.False(t, TestCollision(bot, player))
}

func TestCollisionTouchingEdgesCount(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player, bot := m.Player(), m.Bot()

	place(bot, 100, 0)
	components.Fighter.Get(player).Hitbox = gamemath.NewBox(0, 0, 100, 50)
	assert.True(t, TestCollision(player, bot))

	place(bot, 100.5, 0)
	assert.False(t, TestCollision(player, bot))
}

func TestResolveFrameAppliesFlatDamage(t *testing.T) {
	m, _, rec := newTestMatch(t)
	player, bot := m.Player(), m.Bot()

	place(player, 0, 0)
	place(bot, 90, 0)
	pf := components.Fighter.Get(player)
	pf.Hitbox = gamemath.NewBox(0, 0, 100, 50)
	pf.IsAttacking = true
	components.Fighter.Get(bot).Hitbox = gamemath.NewBox(500, 0, 100, 50)

	ResolveFrame(player, bot, &m.observers)

	assert.Equal(t, 90, components.Health.Get(bot).Current)
	assert.Equal(t, 100, components.Health.Get(player).Current)
	assert.False(t, pf.IsAttacking, "a landed hit ends the swing")
	assert.Equal(t, 90, rec.botHealth[len(rec.botHealth)-1])

	// A second frame with no swing does nothing.
	ResolveFrame(player, bot, &m.observers)
	assert.Equal(t, 90, components.Health.Get(bot).Current)
}

func TestResolveFrameNeedsAttack(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player, bot := m.Player(), m.Bot()

	place(player, 0, 0)
	place(bot, 90, 0)
	components.Fighter.Get(player).Hitbox = gamemath.NewBox(0, 0, 100, 50)

	ResolveFrame(player, bot, nil)
	assert.Equal(t, 100, components.Health.Get(bot).Current)
}

func TestResolveFrameBothDirections(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player, bot := m.Player(), m.Bot()

	place(player, 0, 0)
	place(bot, 40, 0)
	pf := components.Fighter.Get(player)
	bf := components.Fighter.Get(bot)
	pf.Hitbox = gamemath.NewBox(0, 0, 100, 50)
	bf.Hitbox = gamemath.NewBox(-10, 0, 100, 50)
	pf.IsAttacking = true
	bf.IsAttacking = true

	ResolveFrame(player, bot, nil)
	assert.Equal(t, 90, components.Health.Get(bot).Current)
	assert.Equal(t, 90, components.Health.Get(player).Current)
	assert.False(t, pf.IsAttacking)
	assert.False(t, bf.IsAttacking)
}

func TestDetermineOutcome(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player, bot := m.Player(), m.Bot()
	ph := components.Health.Get(player)
	bh := components.Health.Get(bot)

	tests := []struct {
		name   string
		player int
		bot    int
		want   cfg.Outcome
	}{
		{"player ahead", 80, 20, cfg.OutcomePlayer},
		{"bot ahead", 10, 30, cfg.OutcomeBot},
		{"equal", 50, 50, cfg.OutcomeTie},
		{"both defeated equally", -10, -10, cfg.OutcomeTie},
		{"less negative wins", -10, -20, cfg.OutcomePlayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ph.Current = tt.player
			bh.Current = tt.bot
			assert.Equal(t, tt.want, DetermineOutcome(player, bot))
		})
	}
}

func TestBodiesInContact(t *testing.T) {
	m, _, _ := newTestMatch(t)
	player, bot := m.Player(), m.Bot()

	place(player, 100, 426)
	place(bot, 140, 426)
	assert.True(t, BodiesInContact(player, bot))
	assert.True(t, BodiesInContact(bot, player))

	place(bot, 600, 426)
	assert.False(t, BodiesInContact(player, bot))
}
