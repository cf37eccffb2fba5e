package factory

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateArena creates the collision space and the solid floor strip just
// below the viewport. The space is one cell taller than the viewport so the
// floor has cells to live in.
func CreateArena(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(cfg.C.Width, cfg.C.Height+cfg.Arena.CellSize, cfg.Arena.CellSize, cfg.Arena.CellSize)
	components.Space.Set(space, spaceData)

	CreateWall(w, spaceData, 0, float64(cfg.C.Height), float64(cfg.C.Width), cfg.Arena.WallWidth)

	return space
}
