package factory

import (
	"github.com/automoto/ashgrave/archetypes"
	"github.com/automoto/ashgrave/components"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox spawns a hitbox entity. Its object spans the full radius so
// the broadphase returns every actor the narrow check could accept.
func CreateHitbox(ecs *ecs.ECS, data components.HitboxData) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)
	components.Hitbox.SetValue(hitbox, data)

	newObject(ecs, hitbox, data.Center, 2*data.Radius, tags.ResolvHitbox)

	recordSpawn(ecs, hitbox, components.KindHitbox, data.Center)
	return hitbox
}
