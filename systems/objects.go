package systems

import (
	"github.com/automoto/ashgrave/components"
	"github.com/automoto/ashgrave/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors actor positions into the collision space. Hitboxes
// and markers do not move and are placed once at spawn.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Transform) {
			continue
		}
		obj := components.Object.Get(e)
		factory.PlaceObject(obj.Object, components.Transform.Get(e).Position)
	}
}
