package systems

import (
	"github.com/automoto/ashgrave/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion integrates velocity into position. Hosts with their own
// physics leave it out and call Place instead.
func UpdateMotion(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT
	for e := range components.Velocity.Iter(ecs.World) {
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(components.Velocity.Get(e).Scale(dt))
	}
}
