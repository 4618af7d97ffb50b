package systems

import (
	"github.com/automoto/ashgrave/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{})
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}

// UpdateClock counts ticks. The host sets DT before each update.
func UpdateClock(ecs *ecs.ECS) {
	GetOrCreateClock(ecs).Tick++
}
