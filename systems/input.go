package systems

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputProvider is the per-frame action state a match reads. Hosts other
// than ebiten supply their own.
type InputProvider interface {
	Pressed(action cfg.ActionID) bool
	JustPressed(action cfg.ActionID) bool
}

// NoInput is an InputProvider with nothing held.
type NoInput struct{}

func (NoInput) Pressed(cfg.ActionID) bool     { return false }
func (NoInput) JustPressed(cfg.ActionID) bool { return false }

// UpdateInput polls the keyboard into the input singleton.
// Must run BEFORE the match system in the system order.
func UpdateInput(e *ecs.ECS) {
	input := GetInput(e)

	var next [cfg.ActionCount]bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				next[actionID] = true
			}
		}
	}
	input.Advance(next)
}

// GetInput returns the input singleton, creating it on first use.
func GetInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e.World)
	}
	return components.Input.Get(entry)
}
