package components

import (
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

// EnemyData is copied from the type config at spawn so later tuning
// reloads only affect new enemies.
type EnemyData struct {
	TypeName       string
	DetectionRange float64
	AttackRange    float64
	MoveSpeed      float64
	AttackDamage   float64
	AttackCooldown float64
	SoulReward     int
}

// PatrolPathData holds waypoints an enemy walks between while patrolling.
type PatrolPathData struct {
	Name   string
	Points []gamemath.Vec3
	Index  int
	Speed  float64
}

// AttackEventData is queued on an enemy the tick its attack timer fires and
// consumed by the enemy attack system.
type AttackEventData struct{}

var Enemy = donburi.NewComponentType[EnemyData]()
var PatrolPath = donburi.NewComponentType[PatrolPathData]()
var AttackEvent = donburi.NewComponentType[AttackEventData]()
