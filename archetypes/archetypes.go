package archetypes

import (
	"github.com/automoto/duel/components"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Physics,
		components.Health,
	)
	Bot = newArchetype(
		tags.Bot,
		tags.Fighter,
		components.Fighter,
		components.Bot,
		components.Object,
		components.Physics,
		components.Health,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
