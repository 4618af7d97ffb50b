package factory

import (
	"github.com/automoto/ashgrave/archetypes"
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnAttackEffect creates the short flash shown where an enemy attack landed.
func SpawnAttackEffect(ecs *ecs.ECS, source donburi.Entity, pos gamemath.Vec3) *donburi.Entry {
	effect := archetypes.AttackEffect.Spawn(ecs)

	lifetime := cfg.Combat.AttackEffectLifetime
	components.AttackEffect.SetValue(effect, components.AttackEffectData{
		Source:   source,
		Position: pos,
		Lifetime: lifetime,
		Alpha:    1,
		Fade:     gween.New(1, 0, float32(lifetime), ease.OutQuad),
	})

	recordSpawn(ecs, effect, components.KindAttackEffect, pos)
	return effect
}
