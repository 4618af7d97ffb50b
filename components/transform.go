package components

import (
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64 // heading in radians, see gamemath.YawForward
}

// Forward is the unit facing vector on the ground plane.
func (t *TransformData) Forward() gamemath.Vec3 {
	return gamemath.YawForward(t.Yaw)
}

// VelocityData: horizontal parts belong to AI and input, vertical to physics.
type VelocityData struct {
	gamemath.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
var Velocity = donburi.NewComponentType[VelocityData]()
