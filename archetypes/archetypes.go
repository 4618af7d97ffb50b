package archetypes

import (
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Transform,
		components.Velocity,
		components.Object,
		components.Health,
		components.Stamina,
		components.Weapon,
		components.AttackState,
		components.Animation,
		components.Souls,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.AI,
		components.Transform,
		components.Velocity,
		components.Object,
		components.Health,
		components.Animation,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	AttackEffect = newArchetype(
		tags.AttackEffect,
		components.AttackEffect,
	)
	DeathMarker = newArchetype(
		tags.DeathMarker,
		components.DeathMarker,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
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
