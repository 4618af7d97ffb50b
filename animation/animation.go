// Package animation picks the clip an actor should be playing. The choice is
// re-derived every tick in priority order rather than looked up in a
// transition table.
package animation

import (
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
)

// Snapshot is the actor state the selector reads.
type Snapshot struct {
	Dead      bool
	Rolling   bool
	Parrying  bool
	Attacking bool
	Sprinting bool
	Velocity  gamemath.Vec3

	// SlashDuration is the owner's weapon cooldown.
	SlashDuration float64
}

// Update advances the controller's timer and commits a new state when the
// desired one differs. It reports whether a transition happened.
func Update(ctrl *components.AnimationData, s Snapshot, dt float64) bool {
	ctrl.Advance(dt)

	var next cfg.AnimState
	if s.Dead {
		next = cfg.AnimDeath
	} else if ctrl.Frozen() {
		return false
	} else {
		next = Desired(s)
	}

	if next == ctrl.Current {
		return false
	}
	ctrl.SetAnimation(next, cfg.Animation.Def(next, s.SlashDuration))
	return true
}

// Desired ranks the live (non-death) states.
func Desired(s Snapshot) cfg.AnimState {
	switch {
	case s.Dead:
		return cfg.AnimDeath
	case s.Rolling:
		return cfg.AnimRoll
	case s.Parrying:
		return cfg.AnimParry
	case s.Attacking:
		return cfg.AnimSlash
	case s.Velocity.Y > cfg.Animation.JumpThreshold:
		return cfg.AnimJump
	}
	return locomotion(s)
}

func locomotion(s Snapshot) cfg.AnimState {
	speed := s.Velocity.HorizontalLength()
	switch {
	case s.Sprinting && speed > cfg.Animation.RunThreshold:
		return cfg.AnimRun
	case speed > cfg.Animation.WalkThreshold:
		return cfg.AnimWalk
	}
	return cfg.AnimIdle
}
