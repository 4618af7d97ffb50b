package netcomponents

import (
	cfg "github.com/automoto/ashgrave/config"
	"github.com/yohamta/donburi"
)

// NetActorData is the discrete part of an actor's state. It is synced
// without interpolation.
type NetActorData struct {
	Kind      string // "player" or "enemy"
	EnemyType string

	Health     float64
	MaxHealth  float64
	Stamina    float64
	MaxStamina float64

	Attacking bool
	AIState   cfg.AIStateID
	Animation cfg.AnimState

	LastSequence uint32 // Last input sequence applied, for client reconciliation
}

var NetActor = donburi.NewComponentType[NetActorData]()
