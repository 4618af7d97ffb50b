package factory

import (
	"github.com/automoto/ashgrave/archetypes"
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeathMarker drops the player's souls where they died. The object
// spans the pickup radius so any player close enough shares a cell with it.
func CreateDeathMarker(ecs *ecs.ECS, pos gamemath.Vec3, souls int) *donburi.Entry {
	marker := archetypes.DeathMarker.Spawn(ecs)
	components.DeathMarker.SetValue(marker, components.DeathMarkerData{
		Souls:    souls,
		Position: pos,
	})

	newObject(ecs, marker, pos, 2*cfg.Souls.PickupRadius, tags.ResolvMarker)

	recordSpawn(ecs, marker, components.KindDeathMarker, pos)
	return marker
}
