package systems

import (
	"image/color"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

// DrawSurface is what a host draws the arena onto. Coordinates are world
// units, one per pixel of the default viewport.
type DrawSurface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
}

// DrawMatch clears the surface and draws both fighters. A fighter in the
// middle of a swing also shows its hitbox.
func DrawMatch(m *Match, s DrawSurface) {
	s.Clear()
	drawFighter(m.player, s)
	drawFighter(m.bot, s)
}

func drawFighter(entry *donburi.Entry, s DrawSurface) {
	obj := components.Object.Get(entry)
	fighter := components.Fighter.Get(entry)

	s.FillRect(obj.X, obj.Y, obj.W, obj.H, fighter.Color)
	if fighter.IsAttacking {
		hb := fighter.Hitbox
		s.FillRect(hb.Position.X, hb.Position.Y, hb.Width, hb.Height, cfg.Green)
	}
}

// DrawContactOverlay outlines both bodies and both hitboxes. Bodies turn
// yellow while they touch.
func DrawContactOverlay(m *Match, s DrawSurface) {
	outline := cfg.White
	if BodiesInContact(m.player, m.bot) {
		outline = cfg.Yellow
	}
	for _, entry := range []*donburi.Entry{m.player, m.bot} {
		box := components.Object.Get(entry).Box()
		strokeRect(s, box.Position.X, box.Position.Y, box.Width, box.Height, outline)

		hb := components.Fighter.Get(entry).Hitbox
		strokeRect(s, hb.Position.X, hb.Position.Y, hb.Width, hb.Height, cfg.BrightOrange)
	}
}

func strokeRect(s DrawSurface, x, y, w, h float64, c color.Color) {
	const t = 1
	s.FillRect(x, y, w, t, c)
	s.FillRect(x, y+h-t, w, t, c)
	s.FillRect(x, y, t, h, c)
	s.FillRect(x+w-t, y, t, h, c)
}

// ScreenSurface draws onto an ebiten image.
type ScreenSurface struct {
	Image *ebiten.Image
}

func (s ScreenSurface) Clear() {
	s.Image.Fill(cfg.Black)
}

func (s ScreenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.Image, float32(x), float32(y), float32(w), float32(h), c, false)
}
