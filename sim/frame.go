package sim

import (
	"sort"

	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/systems"
	"github.com/automoto/ashgrave/systems/factory"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
)

// Frame is the outcome of one tick.
type Frame struct {
	Tick     uint64
	Mode     cfg.GameMode
	Actors   []ActorState
	Hitboxes []HitboxState
	Spawns   []components.SpawnEvent
	Despawns []components.DespawnEvent
	Hits     []components.HitEvent
	HUD      HUD
}

// ActorState is the per-actor snapshot for rendering and sync.
type ActorState struct {
	Entity    donburi.Entity
	Kind      components.EntityKind
	EnemyType string // empty for the player
	Position  gamemath.Vec3
	Velocity  gamemath.Vec3
	Forward   gamemath.Vec3
	Yaw       float64

	Health     float64
	MaxHealth  float64
	Stamina    float64 // zero for enemies
	MaxStamina float64

	Attacking bool
	AIState   cfg.AIStateID // AIIdle for the player
	Animation cfg.AnimState
}

type HitboxState struct {
	Entity donburi.Entity
	Owner  donburi.Entity
	Center gamemath.Vec3
	Radius float64
	Active bool
}

// HUD is what the player's overlay shows. Changed is set when any value
// differs from the previous frame.
type HUD struct {
	Health     float64
	MaxHealth  float64
	Stamina    float64
	MaxStamina float64
	Souls      int
	Changed    bool
}

// Actor finds an actor's state in the frame.
func (f *Frame) Actor(entity donburi.Entity) (ActorState, bool) {
	for _, a := range f.Actors {
		if a.Entity == entity {
			return a, true
		}
	}
	return ActorState{}, false
}

func (s *Simulation) frame() *Frame {
	log := factory.GetOrCreateEventLog(s.ecs)
	f := &Frame{
		Tick:     systems.GetOrCreateClock(s.ecs).Tick,
		Mode:     s.Mode(),
		Spawns:   append([]components.SpawnEvent(nil), log.Spawns...),
		Despawns: append([]components.DespawnEvent(nil), log.Despawns...),
		Hits:     append([]components.HitEvent(nil), log.Hits...),
	}

	tags.Player.Each(s.ecs.World, func(e *donburi.Entry) {
		a := baseActor(e, components.KindPlayer)
		stamina := components.Stamina.Get(e)
		a.Stamina = stamina.Current
		a.MaxStamina = stamina.Max
		a.Attacking = components.AttackState.Get(e).IsAttacking
		f.Actors = append(f.Actors, a)
	})
	tags.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		a := baseActor(e, components.KindEnemy)
		a.EnemyType = components.Enemy.Get(e).TypeName
		a.AIState = components.AI.Get(e).State
		a.Attacking = a.AIState == cfg.AIAttack
		f.Actors = append(f.Actors, a)
	})
	sort.Slice(f.Actors, func(i, j int) bool { return f.Actors[i].Entity < f.Actors[j].Entity })

	components.Hitbox.Each(s.ecs.World, func(e *donburi.Entry) {
		h := components.Hitbox.Get(e)
		f.Hitboxes = append(f.Hitboxes, HitboxState{
			Entity: e.Entity(),
			Owner:  h.Owner,
			Center: h.Center,
			Radius: h.Radius,
			Active: h.Active,
		})
	})

	if id, ok := s.Player(); ok {
		player, _ := f.Actor(id)
		f.HUD = HUD{
			Health:     player.Health,
			MaxHealth:  player.MaxHealth,
			Stamina:    player.Stamina,
			MaxStamina: player.MaxStamina,
			Souls:      s.Souls(),
		}
	}
	f.HUD.Changed = !sameHUD(f.HUD, s.lastHUD)
	s.lastHUD = f.HUD
	return f
}

func sameHUD(a, b HUD) bool {
	a.Changed, b.Changed = false, false
	return a == b
}

func baseActor(e *donburi.Entry, kind components.EntityKind) ActorState {
	transform := components.Transform.Get(e)
	health := components.Health.Get(e)
	return ActorState{
		Entity:    e.Entity(),
		Kind:      kind,
		Position:  transform.Position,
		Velocity:  components.Velocity.Get(e).Vec3,
		Forward:   transform.Forward(),
		Yaw:       transform.Yaw,
		Health:    health.Current,
		MaxHealth: health.Max,
		Animation: components.Animation.Get(e).Current,
	}
}
