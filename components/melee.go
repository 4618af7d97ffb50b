package components

import "github.com/yohamta/donburi"

// AttackStateData tracks one combined windup and cooldown window.
type AttackStateData struct {
	IsAttacking bool
	CanAttack   bool
	Timer       float64 // seconds until CanAttack returns
}

var AttackState = donburi.NewComponentType[AttackStateData]()
