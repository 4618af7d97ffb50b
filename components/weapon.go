package components

import "github.com/yohamta/donburi"

// WeaponData is fixed for the lifetime of the actor.
type WeaponData struct {
	Damage         float64
	AttackRange    float64
	AttackCooldown float64 // seconds
	StaminaCost    float64
}

var Weapon = donburi.NewComponentType[WeaponData]()
