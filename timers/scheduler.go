package timers

import "time"

// Token identifies a scheduled event so it can be cancelled. The zero Token
// never refers to a live event.
type Token uint64

// Func is a delayed callback. at is the time the event was due, which may be
// earlier than the time RunDue was called with.
type Func func(at time.Time)

type event struct {
	token Token
	due   time.Time
	fn    Func
}

// Scheduler holds delayed callbacks and fires them from RunDue. It does no
// locking: the owner calls it from the same goroutine that mutates the state
// the callbacks touch.
type Scheduler struct {
	next   Token
	events []event
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules fn to run once due has been reached.
func (s *Scheduler) At(due time.Time, fn Func) Token {
	s.next++
	s.events = append(s.events, event{token: s.next, due: due, fn: fn})
	return s.next
}

// After schedules fn to run d after now.
func (s *Scheduler) After(now time.Time, d time.Duration, fn Func) Token {
	return s.At(now.Add(d), fn)
}

// Cancel drops a pending event. It reports whether the event was still pending.
func (s *Scheduler) Cancel(tok Token) bool {
	if tok == 0 {
		return false
	}
	for i, ev := range s.events {
		if ev.token == tok {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending event.
func (s *Scheduler) CancelAll() {
	s.events = s.events[:0]
}

// Pending returns the number of events waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.events)
}

// IsPending reports whether tok is still waiting to fire.
func (s *Scheduler) IsPending(tok Token) bool {
	for _, ev := range s.events {
		if ev.token == tok {
			return true
		}
	}
	return false
}

// RunDue fires every event due at or before now, earliest first; events with
// the same due time fire in scheduling order. Events scheduled by a callback
// fire in the same call if they are already due. Returns the number fired.
func (s *Scheduler) RunDue(now time.Time) int {
	fired := 0
	for {
		idx := s.earliestDue(now)
		if idx < 0 {
			return fired
		}
		ev := s.events[idx]
		s.events = append(s.events[:idx], s.events[idx+1:]...)
		ev.fn(ev.due)
		fired++
	}
}

func (s *Scheduler) earliestDue(now time.Time) int {
	best := -1
	for i, ev := range s.events {
		if ev.due.After(now) {
			continue
		}
		if best < 0 || ev.due.Before(s.events[best].due) ||
			(ev.due.Equal(s.events[best].due) && ev.token < s.events[best].token) {
			best = i
		}
	}
	return best
}

// NextDue returns the due time of the earliest pending event.
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.events) == 0 {
		return time.Time{}, false
	}
	due := s.events[0].due
	for _, ev := range s.events[1:] {
		if ev.due.Before(due) {
			due = ev.due
		}
	}
	return due, true
}
