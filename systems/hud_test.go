package systems

import (
	"strings"
	"testing"
	"time"

	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/timers"
	"github.com/stretchr/testify/assert"
)

func TestHUDFollowsObservers(t *testing.T) {
	hud := NewHUD()
	obs := hud.Observers()

	obs.BotHealth(70)
	obs.Timer(42)
	assert.Equal(t, 70, hud.BotPercent)
	assert.Equal(t, 42, hud.Timer)

	_, bot := hud.ShownPercents()
	assert.Equal(t, float32(100), bot, "bar has not moved yet")

	hud.Update(0.1)
	_, bot = hud.ShownPercents()
	assert.Less(t, bot, float32(100))
	assert.Greater(t, bot, float32(70))

	hud.Update(1)
	_, bot = hud.ShownPercents()
	assert.Equal(t, float32(70), bot)
}

func TestHUDResultClearsOnNewCountdown(t *testing.T) {
	hud := NewHUD()
	obs := hud.Observers()

	obs.Result(cfg.OutcomePlayer)
	assert.Equal(t, "Player 1 Wins", hud.Result)

	obs.Timer(cfg.Match.Countdown)
	assert.Empty(t, hud.Result)
}

func TestHUDNegativeHealthBottomsOut(t *testing.T) {
	hud := NewHUD()
	hud.Observers().PlayerHealth(-20)
	hud.Update(1)

	player, _ := hud.ShownPercents()
	assert.Equal(t, float32(0), player)
	assert.Equal(t, -20, hud.PlayerPercent)
}

func TestJoinFansOut(t *testing.T) {
	var a, b recorder
	obs := Join(a.observers(), Observers{}, b.observers())

	obs.Timer(3)
	obs.Result(cfg.OutcomeTie)

	assert.Equal(t, []int{3}, a.timer)
	assert.Equal(t, []int{3}, b.timer)
	assert.Equal(t, []cfg.Outcome{cfg.OutcomeTie}, b.results)
}

func TestMatchClockStopAndRestart(t *testing.T) {
	sched := timers.NewScheduler()
	c := NewMatchClock(sched, 3, time.Second)
	var ticks []int
	expired := 0
	c.OnTick = func(v int) { ticks = append(ticks, v) }
	c.OnExpire = func() { expired++ }

	c.Start(epoch)
	sched.RunDue(epoch.Add(time.Second))
	c.Stop()
	sched.RunDue(epoch.Add(time.Hour))
	assert.Equal(t, []int{2}, ticks)
	assert.False(t, c.Running())

	c.Start(epoch.Add(time.Hour))
	sched.RunDue(epoch.Add(2 * time.Hour))
	assert.Equal(t, []int{2, 2, 1, 0}, ticks)
	assert.Equal(t, 1, expired)
	assert.Equal(t, 0, c.Value())
}

func TestReportDescribesMatch(t *testing.T) {
	m, _, _ := newTestMatch(t)
	m.End(cfg.OutcomeTie)

	r := Report(m)
	assert.Equal(t, "normal", r.Difficulty)
	assert.Equal(t, "tie", r.Outcome)
	assert.Equal(t, 100, r.PlayerHealth)

	s := r.String()
	assert.True(t, strings.Contains(s, "difficulty=normal"))
	assert.True(t, strings.Contains(s, "outcome=tie (Tie)"))
}

func TestTallyAdd(t *testing.T) {
	var r Tally
	r.Add(cfg.OutcomePlayer)
	r.Add(cfg.OutcomeBot)
	r.Add(cfg.OutcomeBot)
	r.Add(cfg.OutcomeOngoing)
	assert.Equal(t, Tally{PlayerWins: 1, BotWins: 2}, r)
	assert.Equal(t, "P1 1  P2 2  Tie 0", r.String())
}
