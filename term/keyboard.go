package term

import (
	"sync"
	"time"

	cfg "github.com/automoto/duel/config"
	"github.com/gdamore/tcell/v2"
)

// DefaultHold is how long a key counts as held after its last key event.
// Terminals report presses and auto-repeat but never releases.
const DefaultHold = 150 * time.Millisecond

var runeBindings = map[rune]cfg.ActionID{
	'a': cfg.ActionMoveLeft,
	'A': cfg.ActionMoveLeft,
	'd': cfg.ActionMoveRight,
	'D': cfg.ActionMoveRight,
	'w': cfg.ActionJump,
	'W': cfg.ActionJump,
	' ': cfg.ActionAttack,
	'0': cfg.ActionBotAttack,
	'1': cfg.ActionDifficultyEasy,
	'2': cfg.ActionDifficultyNormal,
	'3': cfg.ActionDifficultyHard,
	'r': cfg.ActionReset,
	'R': cfg.ActionReset,
}

var keyBindings = map[tcell.Key]cfg.ActionID{
	tcell.KeyLeft:   cfg.ActionBotLeft,
	tcell.KeyRight:  cfg.ActionBotRight,
	tcell.KeyUp:     cfg.ActionBotJump,
	tcell.KeyF1:     cfg.ActionToggleDebug,
	tcell.KeyF2:     cfg.ActionCopyReport,
	tcell.KeyEscape: cfg.ActionMenuBack,
}

// Keyboard turns terminal key events into per-frame action state. Key
// events arrive on the polling goroutine and frames are taken on the game
// loop, so access is locked.
type Keyboard struct {
	mu       sync.Mutex
	hold     time.Duration
	until    [cfg.ActionCount]time.Time
	pending  [cfg.ActionCount]bool
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
}

// NewKeyboard creates a keyboard that treats a key as held for hold after
// each event.
func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{hold: hold}
}

// ActionFor maps a key event to an action.
func ActionFor(ev *tcell.EventKey) (cfg.ActionID, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeBindings[ev.Rune()]
		return a, ok
	}
	a, ok := keyBindings[ev.Key()]
	return a, ok
}

// HandleKey records a key event received at now. It reports whether the key
// is bound.
func (k *Keyboard) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	action, ok := ActionFor(ev)
	if !ok {
		return false
	}
	k.Press(action, now)
	return true
}

// Press marks action as held until now plus the hold time.
func (k *Keyboard) Press(action cfg.ActionID, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.until[action] = now.Add(k.hold)
	k.pending[action] = true
}

// Frame takes the action state for the frame starting at now. A key pressed
// and expired between two frames still shows up for one frame.
func (k *Keyboard) Frame(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.previous = k.current
	for a := range k.current {
		k.current[a] = k.pending[a] || now.Before(k.until[a])
		k.pending[a] = false
	}
}

func (k *Keyboard) Pressed(action cfg.ActionID) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.current[action]
}

func (k *Keyboard) JustPressed(action cfg.ActionID) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.current[action] && !k.previous[action]
}
