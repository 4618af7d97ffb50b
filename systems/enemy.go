package systems

import (
	"github.com/automoto/ashgrave/ai"
	"github.com/automoto/ashgrave/components"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		logger.Log.Debug("enemy ai skipped: no player")
		return
	}
	playerPos := components.Transform.Get(playerEntry).Position

	var attackers []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).IsDead() {
			return
		}

		brain := components.AI.Get(e)
		enemy := components.Enemy.Get(e)
		transform := components.Transform.Get(e)
		vel := components.Velocity.Get(e)

		if brain.HasTarget && !ecs.World.Valid(brain.Target) {
			logger.Log.WithField("entity", e.Entity()).Debug("enemy target gone")
			brain.HasTarget = false
			return
		}

		in := ai.Perception{
			Position:       transform.Position,
			Velocity:       vel.Vec3,
			PlayerPosition: playerPos,
			Player:         playerEntry.Entity(),
		}
		if e.HasComponent(components.PatrolPath) {
			in.Path = components.PatrolPath.Get(e)
		}

		out := ai.Step(brain, enemy, in, dt)
		vel.Vec3 = out.Velocity

		// Face the way we walk, or the player while squaring up to swing.
		if vel.HorizontalLength() > 0 {
			transform.Yaw = gamemath.YawOf(vel.Vec3)
		} else if brain.HasTarget {
			if toPlayer := playerPos.Sub(transform.Position); toPlayer.HorizontalLength() > 0 {
				transform.Yaw = gamemath.YawOf(toPlayer)
			}
		}

		if out.Changed(brain) {
			logger.Log.WithFields(logrus.Fields{
				"entity": e.Entity(),
				"type":   enemy.TypeName,
				"from":   out.Previous,
				"to":     brain.State,
			}).Debug("enemy state changed")
		}
		if out.Attack {
			attackers = append(attackers, e)
		}
	})

	for _, e := range attackers {
		if !e.HasComponent(components.AttackEvent) {
			donburi.Add(e, components.AttackEvent, &components.AttackEventData{})
		}
	}
}
