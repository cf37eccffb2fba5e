package factory

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/components"
	"github.com/automoto/duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWall adds a solid rectangle to the arena space.
func CreateWall(w donburi.World, space *resolv.Space, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	space.Add(obj)

	return wall
}
