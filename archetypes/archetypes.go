package archetypes

import (
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	Paddle = newArchetype(
		tags.Paddle,
		components.Paddle,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
		components.Audio,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
