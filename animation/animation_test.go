package animation

import (
	"testing"

	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

const dt = 0.1

func idle() *components.AnimationData {
	var a components.AnimationData
	a.Reset()
	return &a
}

func TestDesired_Priority(t *testing.T) {
	fast := gamemath.Vec3{X: 4, Y: 2}

	cases := []struct {
		name string
		snap Snapshot
		want cfg.AnimState
	}{
		{"death over everything", Snapshot{Dead: true, Rolling: true, Attacking: true, Velocity: fast}, cfg.AnimDeath},
		{"roll over parry", Snapshot{Rolling: true, Parrying: true}, cfg.AnimRoll},
		{"parry over slash", Snapshot{Parrying: true, Attacking: true}, cfg.AnimParry},
		{"slash over jump", Snapshot{Attacking: true, Velocity: fast}, cfg.AnimSlash},
		{"jump over locomotion", Snapshot{Velocity: fast, Sprinting: true}, cfg.AnimJump},
		{"jump threshold is strict", Snapshot{Velocity: gamemath.Vec3{Y: 1}}, cfg.AnimIdle},
		{"run needs sprint", Snapshot{Velocity: gamemath.Vec3{X: 4}}, cfg.AnimWalk},
		{"run needs speed", Snapshot{Sprinting: true, Velocity: gamemath.Vec3{X: 2}}, cfg.AnimWalk},
		{"run", Snapshot{Sprinting: true, Velocity: gamemath.Vec3{Z: 4}}, cfg.AnimRun},
		{"walk epsilon", Snapshot{Velocity: gamemath.Vec3{X: 0.05}}, cfg.AnimIdle},
		{"idle", Snapshot{}, cfg.AnimIdle},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Desired(tc.snap))
		})
	}
}

func TestUpdate_Commits(t *testing.T) {
	ctrl := idle()

	assert.False(t, Update(ctrl, Snapshot{}, dt))

	assert.True(t, Update(ctrl, Snapshot{Velocity: gamemath.Vec3{X: 1}}, dt))
	assert.Equal(t, cfg.AnimWalk, ctrl.Current)
	assert.Equal(t, cfg.AnimIdle, ctrl.Previous)
	assert.True(t, ctrl.CanInterrupt)
	assert.False(t, ctrl.Transitioning)

	assert.False(t, Update(ctrl, Snapshot{Velocity: gamemath.Vec3{X: 1}}, dt))
}

func TestUpdate_NonInterruptibleFreezes(t *testing.T) {
	ctrl := idle()

	assert.True(t, Update(ctrl, Snapshot{Rolling: true}, dt))
	assert.Equal(t, cfg.AnimRoll, ctrl.Current)
	assert.False(t, ctrl.CanInterrupt)
	assert.True(t, ctrl.Transitioning)
	assert.InDelta(t, cfg.Animation.RollDuration, ctrl.Remaining, 1e-6)

	// An attack during the roll waits for the roll clip to finish.
	attacking := Snapshot{Attacking: true, SlashDuration: 1.0}
	for i := 0; i < 5; i++ {
		assert.False(t, Update(ctrl, attacking, dt))
		assert.Equal(t, cfg.AnimRoll, ctrl.Current)
	}

	switched := false
	for i := 0; i < 5 && !switched; i++ {
		switched = Update(ctrl, attacking, dt)
	}
	assert.True(t, switched)
	assert.Equal(t, cfg.AnimSlash, ctrl.Current)
	assert.Equal(t, cfg.AnimRoll, ctrl.Previous)
	assert.InDelta(t, 1.0, ctrl.Remaining, 1e-6)
}

func TestUpdate_SlashFallsBackToNominalDuration(t *testing.T) {
	ctrl := idle()
	Update(ctrl, Snapshot{Attacking: true}, dt)
	assert.InDelta(t, cfg.Animation.SlashDuration, ctrl.Remaining, 1e-6)
}

func TestUpdate_DeathPreemptsFreeze(t *testing.T) {
	ctrl := idle()
	Update(ctrl, Snapshot{Parrying: true}, dt)
	is := assert.New(t)
	is.True(ctrl.Frozen())

	is.True(Update(ctrl, Snapshot{Dead: true, Parrying: true}, dt))
	is.Equal(cfg.AnimDeath, ctrl.Current)
	is.False(ctrl.CanInterrupt)

	// Death is sticky while health stays at zero.
	for i := 0; i < 40; i++ {
		is.False(Update(ctrl, Snapshot{Dead: true, Velocity: gamemath.Vec3{X: 5}}, dt))
		is.Equal(cfg.AnimDeath, ctrl.Current)
	}
}

func TestUpdate_JumpIsInterruptible(t *testing.T) {
	ctrl := idle()
	Update(ctrl, Snapshot{Velocity: gamemath.Vec3{Y: 3}}, dt)
	assert.Equal(t, cfg.AnimJump, ctrl.Current)
	assert.True(t, ctrl.Transitioning)

	assert.True(t, Update(ctrl, Snapshot{Attacking: true}, dt))
	assert.Equal(t, cfg.AnimSlash, ctrl.Current)
}
