package systems

import (
	"github.com/automoto/ashgrave/combat"
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/systems/factory"
	"github.com/automoto/ashgrave/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes runs each hitbox's lifetime down and removes it once
// expired. A live, active hitbox then lands on at most one target.
func UpdateHitboxes(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT
	events := factory.GetOrCreateEventLog(ecs)

	var expired []*donburi.Entry
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		if combat.TickHitbox(hitbox, dt) {
			expired = append(expired, e)
			return
		}
		if !hitbox.Active {
			return
		}
		if target, ok := combat.SelectTarget(hitbox, hitboxCandidates(e)); ok {
			landHitbox(ecs, events, hitbox, target)
		}
	})

	for _, e := range expired {
		factory.Destroy(ecs, e, components.KindHitbox)
	}
}

// hitboxCandidates asks the space for live actors sharing a cell with the
// hitbox. SelectTarget does the exact range test.
func hitboxCandidates(e *donburi.Entry) []combat.Target {
	obj := components.Object.Get(e).Object
	if obj == nil {
		return nil
	}
	check := obj.Check(0, 0, tags.ResolvActor)
	if check == nil {
		return nil
	}

	var candidates []combat.Target
	for _, o := range check.ObjectsByTags(tags.ResolvActor) {
		actor, ok := o.Data.(*donburi.Entry)
		if !ok || !actor.Valid() || components.Health.Get(actor).IsDead() {
			continue
		}
		candidates = append(candidates, combat.Target{
			Entity:   actor.Entity(),
			Faction:  factionOf(actor),
			Position: components.Transform.Get(actor).Position,
		})
	}
	return candidates
}

func factionOf(e *donburi.Entry) cfg.Faction {
	if e.HasComponent(tags.Player) {
		return cfg.FactionPlayer
	}
	return cfg.FactionEnemy
}

func landHitbox(ecs *ecs.ECS, events *components.EventLogData, hitbox *components.HitboxData, target combat.Target) {
	entry := ecs.World.Entry(target.Entity)
	killed := combat.Land(hitbox, components.Health.Get(entry))

	events.Hits = append(events.Hits, components.HitEvent{
		Attacker: hitbox.Owner,
		Target:   target.Entity,
		Damage:   hitbox.Damage,
		Killed:   killed,
	})
	logger.Log.WithFields(logrus.Fields{
		"attacker": hitbox.Owner,
		"target":   target.Entity,
		"damage":   hitbox.Damage,
		"killed":   killed,
	}).Debug("hitbox landed")
}
