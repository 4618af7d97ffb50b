package systems

import (
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/systems/factory"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSoulRecovery returns dropped souls to a player standing on their
// death marker.
func UpdateSoulRecovery(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || components.Health.Get(playerEntry).IsDead() {
		return
	}
	obj := components.Object.Get(playerEntry).Object
	if obj == nil {
		return
	}
	check := obj.Check(0, 0, tags.ResolvMarker)
	if check == nil {
		return
	}

	playerPos := components.Transform.Get(playerEntry).Position
	souls := components.Souls.Get(playerEntry)
	for _, o := range check.ObjectsByTags(tags.ResolvMarker) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		marker := components.DeathMarker.Get(entry)
		if gamemath.HorizontalDistance(playerPos, marker.Position) > cfg.Souls.PickupRadius {
			continue
		}
		souls.Count += marker.Souls
		logger.Log.WithField("souls", marker.Souls).Info("souls recovered")
		factory.Destroy(ecs, entry, components.KindDeathMarker)
	}
}
