package systems

import cfg "github.com/automoto/duel/config"

// Observers receives match state changes for display. Any callback may be
// nil.
type Observers struct {
	PlayerHealth func(percent int)
	BotHealth    func(percent int)
	Timer        func(value int)
	Result       func(outcome cfg.Outcome)
}

func (o *Observers) playerHealth(percent int) {
	if o != nil && o.PlayerHealth != nil {
		o.PlayerHealth(percent)
	}
}

func (o *Observers) botHealth(percent int) {
	if o != nil && o.BotHealth != nil {
		o.BotHealth(percent)
	}
}

func (o *Observers) timer(value int) {
	if o != nil && o.Timer != nil {
		o.Timer(value)
	}
}

func (o *Observers) result(outcome cfg.Outcome) {
	if o != nil && o.Result != nil {
		o.Result(outcome)
	}
}

// Join fans every callback out to each of the given observers in order.
func Join(all ...Observers) Observers {
	return Observers{
		PlayerHealth: func(p int) {
			for i := range all {
				all[i].playerHealth(p)
			}
		},
		BotHealth: func(p int) {
			for i := range all {
				all[i].botHealth(p)
			}
		},
		Timer: func(v int) {
			for i := range all {
				all[i].timer(v)
			}
		},
		Result: func(o cfg.Outcome) {
			for i := range all {
				all[i].result(o)
			}
		},
	}
}
