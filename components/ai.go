package components

import (
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

type AIData struct {
	State       cfg.AIStateID
	Target      donburi.Entity
	HasTarget   bool
	StateTimer  float64 // seconds left in the current state; meaning depends on State
	AttackTimer float64 // seconds before the next attack may fire

	LastKnownPlayerPosition gamemath.Vec3
}

var AI = donburi.NewComponentType[AIData]()
