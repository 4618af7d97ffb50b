// Package ai implements the enemy behaviour state machine. Step is a pure
// function of the brain, the enemy's stats and what it perceives this tick,
// so it can be driven without a world.
package ai

import (
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Perception is the read-only snapshot an enemy decides on.
type Perception struct {
	Position       gamemath.Vec3
	Velocity       gamemath.Vec3
	PlayerPosition gamemath.Vec3
	Player         donburi.Entity

	// Path is optional. When set, Patrol walks it.
	Path *components.PatrolPathData
}

// Outcome is what the enemy wants to do this tick.
type Outcome struct {
	Velocity gamemath.Vec3
	Attack   bool // the attack timer fired; combat decides whether it lands
	Previous cfg.AIStateID
}

// Changed reports whether the state switched during the step.
func (o Outcome) Changed(brain *components.AIData) bool {
	return o.Previous != brain.State
}

// NewBrain returns a brain in its initial state.
func NewBrain() components.AIData {
	return components.AIData{
		State:      cfg.AIIdle,
		StateTimer: cfg.Enemy.IdleDuration,
	}
}

// Step advances the brain by dt. Timers run down first, then distance is
// measured once and the current state's handler decides.
func Step(brain *components.AIData, enemy *components.EnemyData, in Perception, dt float64) Outcome {
	brain.StateTimer = countdown(brain.StateTimer, dt)
	brain.AttackTimer = countdown(brain.AttackTimer, dt)

	s := step{
		brain:    brain,
		enemy:    enemy,
		in:       in,
		distance: gamemath.Distance(in.Position, in.PlayerPosition),
		out:      Outcome{Velocity: in.Velocity, Previous: brain.State},
	}

	switch brain.State {
	case cfg.AIIdle:
		s.idle()
	case cfg.AIPatrol:
		s.patrol()
	case cfg.AIChase:
		s.chase()
	case cfg.AIAttack:
		s.attack()
	case cfg.AISearchLastKnown:
		s.search()
	case cfg.AIStunned:
		s.stunned()
	}
	return s.out
}

// Stun forces the brain into Stunned for duration seconds. Nothing in the
// combat rules calls it yet; it is the hook for stagger and parry ripostes.
func Stun(brain *components.AIData, duration float64) {
	brain.State = cfg.AIStunned
	brain.StateTimer = duration
}

func countdown(t, dt float64) float64 {
	t -= dt
	if t < 0 {
		return 0
	}
	return t
}

type step struct {
	brain    *components.AIData
	enemy    *components.EnemyData
	in       Perception
	distance float64
	out      Outcome
}

func (s *step) detects() bool {
	return s.distance <= s.enemy.DetectionRange
}

func (s *step) enter(state cfg.AIStateID, timer float64) {
	s.brain.State = state
	s.brain.StateTimer = timer
}

func (s *step) startChase() {
	s.brain.State = cfg.AIChase
	s.brain.Target = s.in.Player
	s.brain.HasTarget = true
	s.brain.LastKnownPlayerPosition = s.in.PlayerPosition
}

func (s *step) idle() {
	if s.detects() {
		s.startChase()
		return
	}
	if s.brain.StateTimer <= 0 {
		s.enter(cfg.AIPatrol, cfg.Enemy.PatrolDuration)
	}
}

func (s *step) patrol() {
	// Detection wins over the patrol timeout in the same tick.
	if s.detects() {
		s.startChase()
		return
	}
	if s.brain.StateTimer <= 0 {
		s.enter(cfg.AIIdle, cfg.Enemy.IdleDuration)
		if s.in.Path != nil {
			s.out.Velocity = gamemath.StopHorizontal(s.out.Velocity)
		}
		return
	}
	s.followPath()
}

func (s *step) followPath() {
	path := s.in.Path
	if path == nil || len(path.Points) == 0 {
		return
	}

	path.Index %= len(path.Points)
	target := path.Points[path.Index]
	if gamemath.HorizontalDistance(s.in.Position, target) <= cfg.Enemy.PatrolArriveDistance {
		path.Index = (path.Index + 1) % len(path.Points)
		target = path.Points[path.Index]
	}

	speed := path.Speed
	if speed <= 0 {
		speed = cfg.Enemy.PatrolSpeed
	}
	s.out.Velocity = gamemath.SteerToward(s.out.Velocity, s.in.Position, target, speed)
}

func (s *step) chase() {
	if s.distance <= s.enemy.DetectionRange*cfg.Enemy.ChaseRefreshMultiplier {
		s.brain.LastKnownPlayerPosition = s.in.PlayerPosition
		s.brain.Target = s.in.Player
		s.brain.HasTarget = true
	}

	switch {
	case s.distance <= s.enemy.AttackRange:
		s.brain.State = cfg.AIAttack
		s.brain.AttackTimer = s.enemy.AttackCooldown
		s.out.Velocity = gamemath.StopHorizontal(s.out.Velocity)
	case s.distance > s.enemy.DetectionRange*cfg.Enemy.LoseTrackMultiplier:
		s.enter(cfg.AISearchLastKnown, cfg.Enemy.SearchDuration)
	default:
		s.out.Velocity = gamemath.SteerToward(s.out.Velocity, s.in.Position, s.in.PlayerPosition, s.enemy.MoveSpeed)
	}
}

func (s *step) attack() {
	s.out.Velocity = gamemath.StopHorizontal(s.out.Velocity)

	if s.brain.AttackTimer <= 0 {
		s.out.Attack = true
		s.brain.State = cfg.AIChase
		s.brain.AttackTimer = s.enemy.AttackCooldown
		return
	}
	if s.distance > s.enemy.AttackRange*cfg.Enemy.AttackEscapeMultiplier {
		s.brain.State = cfg.AIChase
	}
}

func (s *step) search() {
	if s.detects() {
		s.startChase()
		return
	}

	lkp := s.brain.LastKnownPlayerPosition
	if gamemath.HorizontalDistance(s.in.Position, lkp) < cfg.Enemy.SearchArriveDistance || s.brain.StateTimer <= 0 {
		s.enter(cfg.AIIdle, cfg.Enemy.IdleDuration)
		s.out.Velocity = gamemath.StopHorizontal(s.out.Velocity)
		return
	}

	speed := s.enemy.MoveSpeed * cfg.Enemy.SearchSpeedMultiplier
	s.out.Velocity = gamemath.SteerToward(s.out.Velocity, s.in.Position, lkp, speed)
}

func (s *step) stunned() {
	s.out.Velocity = gamemath.StopHorizontal(s.out.Velocity)
	if s.brain.StateTimer <= 0 {
		s.enter(cfg.AIIdle, cfg.Enemy.StunRecoveryDuration)
	}
}
