package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMatch returns the system that advances m from the polled
// keyboard state.
func NewUpdateMatch(m *Match) ecs.System {
	return func(e *ecs.ECS) {
		m.Update(GetInput(e))
	}
}

// NewUpdateHUD returns the system that animates the HUD at the game's tick
// rate.
func NewUpdateHUD(h *HUD) ecs.System {
	return func(e *ecs.ECS) {
		h.Update(1 / float32(ebiten.TPS()))
	}
}

// NewDrawMatch returns the renderer for the arena.
func NewDrawMatch(m *Match) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		DrawMatch(m, ScreenSurface{Image: screen})
	}
}

// NewDrawOverlay returns the renderer for the contact overlay. It draws
// only while enabled reports true.
func NewDrawOverlay(m *Match, enabled func() bool) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if enabled() {
			DrawContactOverlay(m, ScreenSurface{Image: screen})
		}
	}
}

// NewDrawHUD returns the renderer for h.
func NewDrawHUD(h *HUD) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		h.Draw(screen)
	}
}
