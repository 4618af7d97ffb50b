package factory

import (
	"github.com/automoto/ashgrave/components"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateEventLog returns the singleton per-tick event log.
func GetOrCreateEventLog(ecs *ecs.ECS) *components.EventLogData {
	if _, ok := components.EventLog.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.EventLog))
		components.EventLog.SetValue(ent, components.EventLogData{})
	}

	ent, _ := components.EventLog.First(ecs.World)
	return components.EventLog.Get(ent)
}

func recordSpawn(ecs *ecs.ECS, e *donburi.Entry, kind components.EntityKind, pos gamemath.Vec3) {
	log := GetOrCreateEventLog(ecs)
	log.Spawns = append(log.Spawns, components.SpawnEvent{Entity: e.Entity(), Kind: kind, Position: pos})
}

// Destroy removes an entity from the space and the world and records the
// despawn. Invalid entries are ignored.
func Destroy(ecs *ecs.ECS, e *donburi.Entry, kind components.EntityKind) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	log := GetOrCreateEventLog(ecs)
	log.Despawns = append(log.Despawns, components.DespawnEvent{Entity: e.Entity(), Kind: kind})
	ecs.World.Remove(e.Entity())
}
