package components

import (
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current float64
	Max     float64
}

// ApplyDamage lowers Current, never below zero, and reports whether the
// actor is now dead. Non-positive amounts change nothing.
func (h *HealthData) ApplyDamage(amount float64) bool {
	if amount > 0 {
		h.Current = gamemath.ClampUnit(h.Current-amount, h.Max)
	}
	return h.IsDead()
}

func (h *HealthData) IsDead() bool {
	return h.Current <= 0
}

// Restore refills health on respawn.
func (h *HealthData) Restore() {
	h.Current = h.Max
}

type StaminaData struct {
	Current   float64
	Max       float64
	RegenRate float64 // units per second
}

// Regen moves Current toward Max at RegenRate.
func (s *StaminaData) Regen(dt float64) {
	if dt <= 0 {
		return
	}
	s.Current = gamemath.ClampUnit(s.Current+s.RegenRate*dt, s.Max)
}

// TrySpend is the only way stamina is consumed. It subtracts exactly amount
// and returns true, or returns false without touching Current.
func (s *StaminaData) TrySpend(amount float64) bool {
	if amount < 0 || s.Current < amount {
		return false
	}
	s.Current -= amount
	return true
}

var Health = donburi.NewComponentType[HealthData]()
var Stamina = donburi.NewComponentType[StaminaData]()
