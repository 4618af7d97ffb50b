package components

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth_ApplyDamage(t *testing.T) {
	t.Run("clamps at zero and reports death", func(t *testing.T) {
		h := HealthData{Current: 30, Max: 100}
		assert.False(t, h.ApplyDamage(25))
		assert.Equal(t, 5.0, h.Current)

		assert.True(t, h.ApplyDamage(25))
		assert.Equal(t, 0.0, h.Current)
		assert.True(t, h.IsDead())
	})

	t.Run("non-positive damage is ignored", func(t *testing.T) {
		h := HealthData{Current: 40, Max: 100}
		h.ApplyDamage(-10)
		h.ApplyDamage(0)
		assert.Equal(t, 40.0, h.Current)
	})

	t.Run("restore refills", func(t *testing.T) {
		h := HealthData{Current: 0, Max: 100}
		h.Restore()
		assert.Equal(t, 100.0, h.Current)
	})
}

func TestStamina_TrySpend(t *testing.T) {
	t.Run("insufficient stamina is rejected without mutation", func(t *testing.T) {
		s := StaminaData{Current: 10, Max: 100}
		assert.False(t, s.TrySpend(15))
		assert.Equal(t, 10.0, s.Current)
	})

	t.Run("exact balance is spendable", func(t *testing.T) {
		s := StaminaData{Current: 15, Max: 100}
		assert.True(t, s.TrySpend(15))
		assert.Equal(t, 0.0, s.Current)
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		s := StaminaData{Current: 15, Max: 100}
		assert.False(t, s.TrySpend(-5))
		assert.Equal(t, 15.0, s.Current)
	})
}

func TestStamina_Regen(t *testing.T) {
	s := StaminaData{Current: 90, Max: 100, RegenRate: 20}
	s.Regen(0.25)
	assert.InDelta(t, 95.0, s.Current, 1e-9)
	s.Regen(1)
	assert.Equal(t, 100.0, s.Current)
}

func TestStats_StayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := HealthData{Current: 100, Max: 100}
	s := StaminaData{Current: 100, Max: 100, RegenRate: 20}

	for i := 0; i < 5000; i++ {
		switch rng.Intn(3) {
		case 0:
			h.ApplyDamage(rng.Float64()*40 - 5)
		case 1:
			before := s.Current
			amount := rng.Float64() * 60
			if s.TrySpend(amount) {
				assert.InDelta(t, before-amount, s.Current, 1e-9)
			} else {
				assert.Equal(t, before, s.Current)
			}
		case 2:
			s.Regen(rng.Float64() / 10)
		}

		assert.GreaterOrEqual(t, h.Current, 0.0)
		assert.LessOrEqual(t, h.Current, h.Max)
		assert.GreaterOrEqual(t, s.Current, 0.0)
		assert.LessOrEqual(t, s.Current, s.Max)
	}
}
