package components

import (
	cfg "github.com/automoto/ashgrave/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Current       cfg.AnimState
	Previous      cfg.AnimState
	CanInterrupt  bool
	Transitioning bool
	Remaining     float64      // seconds left on the transition timer
	Timer         *gween.Tween // counts Remaining down to zero; nil for untimed states
}

// SetAnimation commits a transition and restarts the timer for the new state.
func (a *AnimationData) SetAnimation(state cfg.AnimState, def cfg.AnimationDef) {
	a.Previous = a.Current
	a.Current = state
	a.CanInterrupt = def.Interruptible
	a.Remaining = def.Duration

	if def.Duration <= 0 {
		a.Timer = nil
		a.Transitioning = false
		a.CanInterrupt = true
		return
	}
	a.Timer = gween.New(float32(def.Duration), 0, float32(def.Duration), ease.Linear)
	a.Transitioning = true
}

// Advance runs the transition timer and reports whether it finished this call.
func (a *AnimationData) Advance(dt float64) bool {
	if !a.Transitioning || a.Timer == nil {
		return false
	}
	remaining, done := a.Timer.Update(float32(dt))
	a.Remaining = float64(remaining)
	if done {
		a.Remaining = 0
		a.Timer = nil
		a.Transitioning = false
		a.CanInterrupt = true
	}
	return done
}

// Frozen is true while a non-interruptible clip is still playing.
func (a *AnimationData) Frozen() bool {
	return !a.CanInterrupt && a.Transitioning
}

// Reset puts the controller back in an idle, interruptible state.
func (a *AnimationData) Reset() {
	*a = AnimationData{Current: cfg.AnimIdle, Previous: cfg.AnimIdle, CanInterrupt: true}
}

var Animation = donburi.NewComponentType[AnimationData]()
