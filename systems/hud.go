package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	hudBarWidth   = 300
	hudBarHeight  = 18
	hudMargin     = 16
	hudBarSeconds = 0.25 // health bar slide duration
)

// healthBar eases the displayed width toward the last reported percentage.
type healthBar struct {
	target float32
	shown  float32
	tween  *gween.Tween
}

func newHealthBar() *healthBar {
	return &healthBar{target: 100, shown: 100}
}

func (b *healthBar) set(percent int) {
	p := float32(percent)
	if p < 0 {
		p = 0
	}
	if p == b.target {
		return
	}
	b.target = p
	b.tween = gween.New(b.shown, p, hudBarSeconds, ease.OutQuad)
}

func (b *healthBar) update(dt float32) {
	if b.tween == nil {
		return
	}
	cur, done := b.tween.Update(dt)
	b.shown = cur
	if done {
		b.shown = b.target
		b.tween = nil
	}
}

// HUD shows both health bars, the countdown and the final result.
type HUD struct {
	player *healthBar
	bot    *healthBar

	PlayerPercent int
	BotPercent    int
	Timer         int
	Result        string
	Difficulty    cfg.BotDifficulty
	Status        string // transient line under the timer, e.g. "report copied"
}

// NewHUD creates a HUD showing full health and the starting countdown.
func NewHUD() *HUD {
	return &HUD{
		player:        newHealthBar(),
		bot:           newHealthBar(),
		PlayerPercent: 100,
		BotPercent:    100,
		Timer:         cfg.Match.Countdown,
		Difficulty:    cfg.StartDifficulty,
	}
}

// Observers returns callbacks that keep the HUD in sync with a match.
// A new countdown clears the result line.
func (h *HUD) Observers() Observers {
	return Observers{
		PlayerHealth: func(p int) {
			h.PlayerPercent = p
			h.player.set(p)
		},
		BotHealth: func(p int) {
			h.BotPercent = p
			h.bot.set(p)
		},
		Timer: func(v int) {
			if v == cfg.Match.Countdown {
				h.Result = ""
			}
			h.Timer = v
		},
		Result: func(o cfg.Outcome) {
			h.Result = o.Text()
		},
	}
}

// Update advances the bar animations by dt seconds.
func (h *HUD) Update(dt float32) {
	h.player.update(dt)
	h.bot.update(dt)
}

// ShownPercents returns the bar widths currently on screen.
func (h *HUD) ShownPercents() (player, bot float32) {
	return h.player.shown, h.bot.shown
}

// Draw renders the HUD over the arena.
func (h *HUD) Draw(screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := screen.Bounds().Dy()

	drawBar(screen, hudMargin, hudMargin, h.player.shown, cfg.BarRed)
	drawBar(screen, width-hudMargin-hudBarWidth, hudMargin, h.bot.shown, cfg.BarBlue)

	if !fonts.Loaded(fonts.Bold) {
		return
	}

	timer := fmt.Sprintf("%d", h.Timer)
	text.Draw(screen, timer, fonts.Bold.Get(), int(width)/2-len(timer)*6, hudMargin+hudBarHeight, cfg.White)

	small := fonts.Small.Get()
	text.Draw(screen, "P1", small, hudMargin, hudMargin*2+hudBarHeight+4, cfg.White)
	text.Draw(screen, "P2 "+h.Difficulty.String(), small,
		int(width)-hudMargin-hudBarWidth, hudMargin*2+hudBarHeight+4, cfg.White)
	if h.Status != "" {
		text.Draw(screen, h.Status, small, int(width)/2-len(h.Status)*3, hudMargin*3+hudBarHeight, cfg.BrightGreen)
	}

	if h.Result == "" {
		return
	}
	vector.FillRect(screen, 0, float32(height)/2-50, width, 90, cfg.BlackOverlay, false)
	titleX := int(width)/2 - len(h.Result)*11
	text.Draw(screen, h.Result, fonts.Title.Get(), titleX, height/2+5, cfg.Yellow)
	hint := "press R to play again"
	text.Draw(screen, hint, small, int(width)/2-len(hint)*3, height/2+30, cfg.White)
}

func drawBar(screen *ebiten.Image, x, y, percent float32, fill color.Color) {
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, cfg.DarkGray, false)
	vector.FillRect(screen, x, y, hudBarWidth*percent/100, hudBarHeight, fill, false)
}
