package systems

import (
	"testing"
	"time"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/timers"
	"github.com/yohamta/donburi"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// calmBot turns off the random strafe so positions stay where tests put them.
func calmBot(t *testing.T) {
	t.Helper()
	prev := cfg.Bot.StrafeChance
	cfg.Bot.StrafeChance = 0
	t.Cleanup(func() { cfg.Bot.StrafeChance = prev })
}

type recorder struct {
	playerHealth []int
	botHealth    []int
	timer        []int
	results      []cfg.Outcome
}

func (r *recorder) observers() Observers {
	return Observers{
		PlayerHealth: func(p int) { r.playerHealth = append(r.playerHealth, p) },
		BotHealth:    func(p int) { r.botHealth = append(r.botHealth, p) },
		Timer:        func(v int) { r.timer = append(r.timer, v) },
		Result:       func(o cfg.Outcome) { r.results = append(r.results, o) },
	}
}

func newTestMatch(t *testing.T) (*Match, *timers.ManualClock, *recorder) {
	t.Helper()
	calmBot(t)
	clock := timers.NewManualClock(epoch)
	rec := &recorder{}
	seed := int64(7)
	m := NewMatch(donburi.NewWorld(), MatchOptions{
		Clock:     clock,
		Seed:      &seed,
		Observers: rec.observers(),
	})
	return m, clock, rec
}

// place moves a fighter body and keeps the space in sync.
func place(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Y = y
	obj.Update()
}

// keys is a scripted InputProvider.
type keys struct {
	held     map[cfg.ActionID]bool
	previous map[cfg.ActionID]bool
}

func newKeys() *keys {
	return &keys{held: map[cfg.ActionID]bool{}, previous: map[cfg.ActionID]bool{}}
}

// frame replaces the held set, remembering the last one for edge detection.
func (k *keys) frame(actions ...cfg.ActionID) *keys {
	k.previous = k.held
	k.held = map[cfg.ActionID]bool{}
	for _, a := range actions {
		k.held[a] = true
	}
	return k
}

func (k *keys) Pressed(a cfg.ActionID) bool     { return k.held[a] }
func (k *keys) JustPressed(a cfg.ActionID) bool { return k.held[a] && !k.previous[a] }
