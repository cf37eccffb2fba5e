package systems

import (
	"time"

	"github.com/automoto/duel/timers"
)

// MatchClock counts the match down once per interval on a scheduler.
// Each tick is scheduled from the previous tick's due time so a late
// RunDue catches up without drifting.
type MatchClock struct {
	sched    *timers.Scheduler
	interval time.Duration
	start    int
	value    int
	token    timers.Token

	OnTick   func(value int)
	OnExpire func()
}

// NewMatchClock creates a stopped clock.
func NewMatchClock(sched *timers.Scheduler, start int, interval time.Duration) *MatchClock {
	return &MatchClock{
		sched:    sched,
		interval: interval,
		start:    start,
		value:    start,
	}
}

// Start sets the value back to the starting count and schedules the first
// tick one interval after now. A running clock is restarted.
func (c *MatchClock) Start(now time.Time) {
	c.Stop()
	c.value = c.start
	c.token = c.sched.After(now, c.interval, c.tick)
}

// Stop cancels the pending tick. The current value is kept.
func (c *MatchClock) Stop() {
	if c.token != 0 {
		c.sched.Cancel(c.token)
		c.token = 0
	}
}

// Running reports whether a tick is pending.
func (c *MatchClock) Running() bool {
	return c.token != 0 && c.sched.IsPending(c.token)
}

// Value returns the remaining count.
func (c *MatchClock) Value() int { return c.value }

func (c *MatchClock) tick(at time.Time) {
	c.token = 0
	if c.value <= 0 {
		return
	}

	c.value--
	if c.OnTick != nil {
		c.OnTick(c.value)
	}

	if c.value == 0 {
		if c.OnExpire != nil {
			c.OnExpire()
		}
		return
	}
	c.token = c.sched.At(at.Add(c.interval), c.tick)
}
