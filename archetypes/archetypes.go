package archetypes

import (
	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Monster = newArchetype(
		tags.Monster,
		components.Monster,
		components.Transform,
		components.Motion,
		components.MotorInput,
		components.Jump,
		components.Animator,
	)
	Clock = newArchetype(
		tags.Clock,
		components.Clock,
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
