package components

import (
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	Owner    donburi.Entity // The entity that created this hitbox
	Faction  cfg.Faction    // Owner's side; the hitbox only damages the other one
	Center   gamemath.Vec3
	Radius   float64
	Damage   float64
	Active   bool    // Cleared by the first hit
	Lifetime float64 // Seconds remaining
}

var Hitbox = donburi.NewComponentType[HitboxData]()
