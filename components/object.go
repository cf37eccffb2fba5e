package components

import (
	"github.com/automoto/duel/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a fighter's body in the arena space. X/Y is the top-left
// corner in world coordinates; W/H are the body dimensions.
type ObjectData struct {
	*resolv.Object
}

// Box returns the body rectangle.
func (o *ObjectData) Box() gamemath.BoundingBox {
	return gamemath.NewBox(o.X, o.Y, o.W, o.H)
}

// Position returns the top-left corner of the body.
func (o *ObjectData) Position() gamemath.Vector2 {
	return gamemath.Vector2{X: o.X, Y: o.Y}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the arena collision space (singleton).
var Space = donburi.NewComponentType[resolv.Space]()
