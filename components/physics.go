package components

import (
	"github.com/automoto/duel/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is a fighter's velocity, applied once per simulation tick.
type PhysicsData struct {
	Velocity gamemath.Vector2
}

var Physics = donburi.NewComponentType[PhysicsData]()
