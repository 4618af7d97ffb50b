package components

import (
	"testing"

	cfg "github.com/automoto/ashgrave/config"
	"github.com/stretchr/testify/assert"
)

func TestAnimationData_Transitions(t *testing.T) {
	t.Run("timed state freezes until the timer elapses", func(t *testing.T) {
		var a AnimationData
		a.Reset()
		a.SetAnimation(cfg.AnimRoll, cfg.AnimationDef{Duration: 0.5})

		assert.Equal(t, cfg.AnimIdle, a.Previous)
		assert.True(t, a.Frozen())

		assert.False(t, a.Advance(0.25))
		assert.InDelta(t, 0.25, a.Remaining, 1e-6)
		assert.True(t, a.Frozen())

		assert.True(t, a.Advance(0.3))
		assert.False(t, a.Frozen())
		assert.False(t, a.Transitioning)
		assert.Zero(t, a.Remaining)
	})

	t.Run("zero duration is immediately interruptible", func(t *testing.T) {
		var a AnimationData
		a.Reset()
		a.SetAnimation(cfg.AnimWalk, cfg.AnimationDef{})

		assert.True(t, a.CanInterrupt)
		assert.False(t, a.Transitioning)
		assert.Nil(t, a.Timer)
	})

	t.Run("interruptible timed state never freezes", func(t *testing.T) {
		var a AnimationData
		a.Reset()
		a.SetAnimation(cfg.AnimJump, cfg.AnimationDef{Duration: 1, Interruptible: true})
		assert.True(t, a.Transitioning)
		assert.False(t, a.Frozen())
	})
}
