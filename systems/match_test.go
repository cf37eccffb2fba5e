package systems

import (
	"testing"
	"time"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchStartsFresh(t *testing.T) {
	m, _, rec := newTestMatch(t)

	assert.Equal(t, cfg.DifficultyNormal, m.Difficulty())
	assert.Equal(t, cfg.Match.Countdown, m.Timer())
	assert.False(t, m.Finished())
	assert.Equal(t, cfg.OutcomeOngoing, m.Outcome())
	assert.Equal(t, []int{100}, rec.playerHealth)
	assert.Equal(t, []int{100}, rec.botHealth)
	assert.Equal(t, []int{60}, rec.timer)

	bot := m.BotData()
	assert.Equal(t, 10.0, bot.Speed)
	assert.Equal(t, 2*time.Second, bot.AttackCooldown)
	assert.Equal(t, 10, bot.AttackDamage)
	assert.Equal(t, 100.0, bot.AttackRange)
}

func TestChangeDifficultyHardResets(t *testing.T) {
	m, clock, _ := newTestMatch(t)

	place(m.Player(), 300, 426)
	place(m.Bot(), 700, 426)
	components.Health.Get(m.Player()).Current = 40
	components.Health.Get(m.Bot()).Current = 70
	clock.Advance(5 * time.Second)
	m.Update(NoInput{})
	require.Equal(t, 55, m.Timer())

	require.NoError(t, m.ChangeDifficulty("hard"))

	bot := m.BotData()
	assert.Equal(t, 15.0, bot.Speed)
	assert.Equal(t, time.Second, bot.AttackCooldown)
	assert.Equal(t, 30, bot.AttackDamage)
	assert.True(t, bot.LastAttack.IsZero())
	assert.Equal(t, cfg.DifficultyHard, m.Difficulty())

	assert.Equal(t, 100, components.Health.Get(m.Player()).Current)
	assert.Equal(t, 100, components.Health.Get(m.Bot()).Current)
	assert.Equal(t, 60, m.Timer())
	assert.Equal(t, gamemath.Vector2{X: 0, Y: 0}, components.Object.Get(m.Player()).Position())
	assert.Equal(t, gamemath.Vector2{X: 400, Y: 100}, components.Object.Get(m.Bot()).Position())
	assert.Equal(t, 1, m.Data().Round)
}

func TestChangeDifficultyUnknownIsNoOp(t *testing.T) {
	m, _, rec := newTestMatch(t)
	components.Health.Get(m.Player()).Current = 50
	before := *m.BotData()
	timerCalls := len(rec.timer)

	err := m.ChangeDifficulty("extreme")
	require.Error(t, err)
	assert.ErrorIs(t, err, cfg.ErrInvalidDifficulty)

	assert.Equal(t, before, *m.BotData())
	assert.Equal(t, 50, components.Health.Get(m.Player()).Current)
	assert.Equal(t, cfg.DifficultyNormal, m.Difficulty())
	assert.Len(t, rec.timer, timerCalls, "no reset happened")
}

func TestCountdownEndsInTie(t *testing.T) {
	m, clock, rec := newTestMatch(t)
	// Keep the fighters apart so nobody lands a hit.
	m.BotData().AttackRange = 0

	for i := 0; i < 59; i++ {
		clock.Advance(time.Second)
		m.Update(NoInput{})
	}
	require.False(t, m.Finished())
	require.Equal(t, 1, m.Timer())

	clock.Advance(time.Second)
	m.Update(NoInput{})

	assert.True(t, m.Finished())
	assert.Equal(t, cfg.OutcomeTie, m.Outcome())
	assert.Equal(t, 0, m.Timer())
	assert.Equal(t, []cfg.Outcome{cfg.OutcomeTie}, rec.results)
	assert.Equal(t, 0, rec.timer[len(rec.timer)-1])

	// The clock does not run past zero.
	clock.Advance(10 * time.Second)
	m.Update(NoInput{})
	assert.Equal(t, 0, m.Timer())
	assert.Len(t, rec.results, 1)
}

func TestCountdownCatchesUpAfterStall(t *testing.T) {
	m, clock, rec := newTestMatch(t)

	clock.Advance(3500 * time.Millisecond)
	m.Update(NoInput{})

	assert.Equal(t, 57, m.Timer())
	assert.Equal(t, []int{60, 59, 58, 57}, rec.timer)
}

func TestPlayerAttackRestartsWindow(t *testing.T) {
	m, clock, _ := newTestMatch(t)
	sched := m.Scheduler()
	fighter := components.Fighter.Get(m.Player())

	m.Attack(m.Player())
	require.True(t, fighter.IsAttacking)

	clock.Advance(60 * time.Millisecond)
	sched.RunDue(clock.Now())
	m.Attack(m.Player())

	clock.Advance(60 * time.Millisecond)
	sched.RunDue(clock.Now())
	assert.True(t, fighter.IsAttacking, "second press restarted the window")

	clock.Advance(40 * time.Millisecond)
	sched.RunDue(clock.Now())
	assert.False(t, fighter.IsAttacking)
}

func TestPlayerAttackDealsNoDelayedDamage(t *testing.T) {
	m, clock, _ := newTestMatch(t)
	place(m.Player(), 0, 0)
	place(m.Bot(), 90, 0)
	components.Fighter.Get(m.Player()).Hitbox = gamemath.NewBox(0, 0, 100, 50)

	m.Attack(m.Player())
	clock.Advance(time.Second)
	m.Scheduler().RunDue(clock.Now())

	assert.Equal(t, 100, components.Health.Get(m.Bot()).Current)
}

func TestBotAttackIgnoredWhileSwinging(t *testing.T) {
	m, _, _ := newTestMatch(t)
	pending := m.Scheduler().Pending()

	m.Attack(m.Bot())
	m.Attack(m.Bot())

	assert.True(t, components.Fighter.Get(m.Bot()).IsAttacking)
	assert.Equal(t, pending+1, m.Scheduler().Pending())
}

func TestBotAttackDamagesWhenWindowCloses(t *testing.T) {
	m, clock, rec := newTestMatch(t)
	place(m.Player(), 0, 0)
	place(m.Bot(), 90, 0)
	components.Fighter.Get(m.Bot()).Hitbox = gamemath.NewBox(40, 0, 100, 50)

	m.Attack(m.Bot())
	clock.Advance(99 * time.Millisecond)
	m.Scheduler().RunDue(clock.Now())
	assert.Equal(t, 100, components.Health.Get(m.Player()).Current)

	clock.Advance(time.Millisecond)
	m.Scheduler().RunDue(clock.Now())
	assert.Equal(t, 90, components.Health.Get(m.Player()).Current)
	assert.False(t, components.Fighter.Get(m.Bot()).IsAttacking)
	assert.Equal(t, 90, rec.playerHealth[len(rec.playerHealth)-1])
}

func TestBotAttackMissesWhenOutOfReach(t *testing.T) {
	m, clock, _ := newTestMatch(t)
	place(m.Player(), 0, 0)
	components.Fighter.Get(m.Bot()).Hitbox = gamemath.NewBox(600, 0, 100, 50)

	m.Attack(m.Bot())
	clock.Advance(time.Second)
	m.Scheduler().RunDue(clock.Now())
	assert.Equal(t, 100, components.Health.Get(m.Player()).Current)
}

func TestResetDropsPendingBotSwing(t *testing.T) {
	m, clock, _ := newTestMatch(t)
	place(m.Player(), 0, 0)
	place(m.Bot(), 90, 0)
	components.Fighter.Get(m.Bot()).Hitbox = gamemath.NewBox(40, 0, 100, 50)

	m.Attack(m.Bot())
	m.Reset()

	// Put the fighters back where the stale swing would have landed.
	place(m.Player(), 0, 0)
	components.Fighter.Get(m.Bot()).Hitbox = gamemath.NewBox(40, 0, 100, 50)
	clock.Advance(200 * time.Millisecond)
	m.Scheduler().RunDue(clock.Now())

	assert.Equal(t, 100, components.Health.Get(m.Player()).Current)
	assert.Equal(t, 1, m.Scheduler().Pending(), "only the countdown is left")
}

func TestEndIsReportedOnce(t *testing.T) {
	m, _, rec := newTestMatch(t)

	m.End(cfg.OutcomeBot)
	m.End(cfg.OutcomePlayer)

	assert.Equal(t, cfg.OutcomeBot, m.Outcome())
	assert.Equal(t, []cfg.Outcome{cfg.OutcomeBot}, rec.results)
	assert.False(t, m.Countdown().Running())
}

func TestBotSwingHitsTwiceWhenContactHolds(t *testing.T) {
	m, clock, rec := newTestMatch(t)
	m.SetDifficulty(cfg.DifficultyNormal)
	preset, ok := cfg.Preset(cfg.DifficultyNormal)
	require.True(t, ok)

	floor := float64(cfg.C.Height) - cfg.Fighter.Height
	place(m.Player(), 0, floor)
	place(m.Bot(), 90, floor)
	// Hold the cooldown so the only swing is the one started here.
	m.BotData().LastAttack = clock.Now()

	m.Attack(m.Bot())
	m.Update(NoInput{})
	require.Equal(t, 100-cfg.Fighter.FlatDamage, components.Health.Get(m.Player()).Current)
	require.False(t, components.Fighter.Get(m.Bot()).IsAttacking)

	clock.Advance(cfg.Fighter.AttackWindow)
	m.Update(NoInput{})

	want := 100 - cfg.Fighter.FlatDamage - preset.AttackDamage
	assert.Equal(t, want, components.Health.Get(m.Player()).Current)
	assert.Equal(t, want, rec.playerHealth[len(rec.playerHealth)-1])
}

func TestEndDropsPendingBotSwing(t *testing.T) {
	m, clock, rec := newTestMatch(t)
	place(m.Player(), 0, 0)
	place(m.Bot(), 90, 0)
	components.Fighter.Get(m.Bot()).Hitbox = gamemath.NewBox(40, 0, 100, 50)

	m.Attack(m.Bot())
	m.End(cfg.OutcomeBot)
	updates := len(rec.playerHealth)

	clock.Advance(time.Second)
	m.Update(NoInput{})

	assert.Equal(t, 100, components.Health.Get(m.Player()).Current)
	assert.False(t, components.Fighter.Get(m.Bot()).IsAttacking)
	assert.Len(t, rec.playerHealth, updates)
	assert.Zero(t, m.Scheduler().Pending())
}

func TestSwingDueWithLastTickDoesNotLandAfterTie(t *testing.T) {
	m, clock, rec := newTestMatch(t)

	clock.Advance(59*time.Second + 900*time.Millisecond)
	m.Scheduler().RunDue(clock.Now())
	require.Equal(t, 1, m.Timer())

	place(m.Player(), 0, 0)
	place(m.Bot(), 90, 0)
	components.Fighter.Get(m.Bot()).Hitbox = gamemath.NewBox(40, 0, 100, 50)
	m.Attack(m.Bot())
	updates := len(rec.playerHealth)

	// The last countdown tick and the swing are due at the same instant;
	// the tick was scheduled first and ends the match.
	clock.Advance(100 * time.Millisecond)
	m.Update(NoInput{})

	require.True(t, m.Finished())
	assert.Equal(t, cfg.OutcomeTie, m.Outcome())
	assert.Equal(t, []cfg.Outcome{cfg.OutcomeTie}, rec.results)
	assert.Equal(t, 100, components.Health.Get(m.Player()).Current)
	assert.Len(t, rec.playerHealth, updates)

	r := Report(m)
	assert.Equal(t, r.PlayerHealth, r.BotHealth)
}
