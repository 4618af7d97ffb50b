package factory

import (
	"github.com/automoto/ashgrave/archetypes"
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the broadphase grid over the ground plane, centred on
// the world origin.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	extent := int(2 * cfg.World.HalfExtent)
	spaceData := resolv.NewSpace(extent, extent, cfg.World.CellSize, cfg.World.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

// GetSpace returns the world's space, creating it on first use.
func GetSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = CreateSpace(ecs)
	}
	return components.Space.Get(entry)
}

// newObject creates a square ground-plane object of side size centred on pos
// and adds it to the space.
func newObject(ecs *ecs.ECS, owner *donburi.Entry, pos gamemath.Vec3, size float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(0, 0, size, size, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = owner
	PlaceObject(obj, pos)
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(owner, components.ObjectData{Object: obj})
	return obj
}

// PlaceObject moves obj so its centre sits over pos on the ground plane.
// Positions beyond the world extent are clamped to its edge.
func PlaceObject(obj *resolv.Object, pos gamemath.Vec3) {
	limit := 2*cfg.World.HalfExtent - obj.W
	obj.X = gamemath.Clamp(pos.X+cfg.World.HalfExtent-obj.W/2, 0, limit)
	obj.Y = gamemath.Clamp(pos.Z+cfg.World.HalfExtent-obj.H/2, 0, limit)
	obj.Update()
}
