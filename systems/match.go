package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/systems/factory"
	"github.com/automoto/duel/timers"
	"github.com/yohamta/donburi"
)

// MatchOptions configures NewMatch. Nil fields fall back to the config
// globals and the wall clock.
type MatchOptions struct {
	Clock      timers.Clock
	Difficulty *cfg.BotDifficulty
	Seed       *int64
	Observers  Observers
}

// Match owns one duel: the two fighters, the countdown and every delayed
// event. All methods must be called from the goroutine that drives Update.
type Match struct {
	world donburi.World

	player *donburi.Entry
	bot    *donburi.Entry
	state  *donburi.Entry
	space  *donburi.Entry

	clock     timers.Clock
	sched     *timers.Scheduler
	countdown *MatchClock
	rng       *rand.Rand

	observers Observers
}

// NewMatch builds the arena and both fighters in w and starts the countdown.
func NewMatch(w donburi.World, opts MatchOptions) *Match {
	clock := opts.Clock
	if clock == nil {
		clock = timers.SystemClock{}
	}
	seed := cfg.Bot.Seed
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	difficulty := cfg.StartDifficulty
	if opts.Difficulty != nil {
		difficulty = *opts.Difficulty
	}
	if _, ok := cfg.Preset(difficulty); !ok {
		log.Printf("Warning: unknown difficulty %d, using %s", int(difficulty), cfg.StartDifficulty)
		difficulty = cfg.StartDifficulty
	}

	space := factory.CreateArena(w)
	spaceData := components.Space.Get(space)

	m := &Match{
		world:     w,
		space:     space,
		player:    factory.CreatePlayer(w, spaceData),
		bot:       factory.CreateBot(w, spaceData, difficulty),
		state:     factory.CreateMatch(w, difficulty),
		clock:     clock,
		sched:     timers.NewScheduler(),
		rng:       rand.New(rand.NewSource(seed)),
		observers: opts.Observers,
	}

	m.countdown = NewMatchClock(m.sched, cfg.Match.Countdown, cfg.Match.TickInterval)
	m.countdown.OnTick = m.onTick
	m.countdown.OnExpire = func() {
		m.End(DetermineOutcome(m.player, m.bot))
	}
	m.countdown.Start(clock.Now())
	m.publish()

	return m
}

func (m *Match) Player() *donburi.Entry { return m.player }
func (m *Match) Bot() *donburi.Entry { return m.bot }
func (m *Match) World() donburi.World { return m.world }
func (m *Match) Scheduler() *timers.Scheduler { return m.sched }
func (m *Match) Countdown() *MatchClock { return m.countdown }
func (m *Match) Data() *components.MatchData { return components.Match.Get(m.state) }
func (m *Match) BotData() *components.BotData { return components.Bot.Get(m.bot) }
func (m *Match) SetObservers(obs Observers) { m.observers = obs; m.publish() }
func (m *Match) Difficulty() cfg.BotDifficulty { return m.Data().Difficulty }
func (m *Match) Finished() bool { return m.Data().Finished() }
func (m *Match) Outcome() cfg.Outcome { return m.Data().Outcome }
func (m *Match) Timer() int { return m.Data().Timer }
func (m *Match) Health(e *donburi.Entry) int { return components.Health.Get(e).Current }

// Attack starts a swing for either fighter. The bot's swing carries its own
// delayed damage check; the player's swing only opens the hit window.
func (m *Match) Attack(entry *donburi.Entry) {
	if entry.HasComponent(components.Bot) {
		m.botAttack(entry)
		return
	}
	m.playerAttack(entry)
}

// playerAttack opens the hit window. Pressing again mid-swing restarts the
// window.
func (m *Match) playerAttack(entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	fighter.IsAttacking = true

	m.sched.Cancel(fighter.AttackWindow)
	fighter.AttackWindow = m.sched.After(m.clock.Now(), cfg.Fighter.AttackWindow, func(time.Time) {
		f := components.Fighter.Get(entry)
		f.IsAttacking = false
		f.AttackWindow = 0
	})
}

// botAttack is ignored while a swing is in progress. When the window closes
// the bot hits for its preset damage if its hitbox is still on the player.
func (m *Match) botAttack(entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	if fighter.IsAttacking {
		return
	}
	fighter.IsAttacking = true

	fighter.AttackWindow = m.sched.After(m.clock.Now(), cfg.Fighter.AttackWindow, func(time.Time) {
		if !m.Finished() && TestCollision(entry, m.player) {
			takeDamage(m.player, components.Bot.Get(entry).AttackDamage)
			m.observers.playerHealth(healthPercent(m.player))
		}
		f := components.Fighter.Get(entry)
		f.IsAttacking = false
		f.AttackWindow = 0
	})
}

// End finishes the match with the given outcome. Later calls are ignored
// until the next reset.
func (m *Match) End(outcome cfg.Outcome) {
	data := m.Data()
	if data.Finished() {
		return
	}
	data.State = cfg.MatchStateFinished
	data.Outcome = outcome
	m.countdown.Stop()
	m.endSwing(m.player)
	m.endSwing(m.bot)

	log.Printf("Match %d finished after %d frames: %s (player %d, bot %d)",
		data.Round, data.Frames, outcome,
		m.Health(m.player), m.Health(m.bot))
	m.observers.result(outcome)
}

// endSwing drops a fighter's open hit window so nothing lands after the
// result is in.
func (m *Match) endSwing(entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	m.sched.Cancel(fighter.AttackWindow)
	fighter.AttackWindow = 0
	fighter.IsAttacking = false
}

// Reset puts both fighters back on their spawns at full health, drops every
// pending event and restarts the countdown.
func (m *Match) Reset() {
	m.sched.CancelAll()

	resetFighter(m.player)
	resetFighter(m.bot)

	data := m.Data()
	data.State = cfg.MatchStatePlaying
	data.Outcome = cfg.OutcomeOngoing
	data.Frames = 0
	data.Round++

	m.countdown.Start(m.clock.Now())
	m.publish()
}

// ChangeDifficulty applies the named preset and resets the match. An
// unknown name leaves everything untouched.
func (m *Match) ChangeDifficulty(name string) error {
	d, err := cfg.ParseDifficulty(name)
	if err != nil {
		log.Printf("Warning: %v", err)
		return err
	}
	m.SetDifficulty(d)
	return nil
}

// SetDifficulty applies a preset and resets the match. The bot may attack
// immediately afterwards.
func (m *Match) SetDifficulty(d cfg.BotDifficulty) {
	preset, ok := cfg.Preset(d)
	if !ok {
		log.Printf("Warning: ignoring unknown difficulty %d", int(d))
		return
	}

	bot := m.BotData()
	bot.Speed = preset.Speed
	bot.AttackCooldown = preset.AttackCooldown
	bot.AttackDamage = preset.AttackDamage
	bot.Difficulty = d
	bot.LastAttack = time.Time{}

	m.Data().Difficulty = d
	log.Printf("Difficulty set to %s", d)
	m.Reset()
}

func (m *Match) onTick(value int) {
	m.Data().Timer = value
	m.observers.timer(value)
}

// publish pushes the full display state to the observers.
func (m *Match) publish() {
	data := m.Data()
	data.Timer = m.countdown.Value()
	m.observers.playerHealth(healthPercent(m.player))
	m.observers.botHealth(healthPercent(m.bot))
	m.observers.timer(data.Timer)
}
