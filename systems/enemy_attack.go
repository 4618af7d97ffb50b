package systems

import (
	"github.com/automoto/ashgrave/combat"
	"github.com/automoto/ashgrave/components"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/systems/factory"
	"github.com/automoto/ashgrave/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyAttacks resolves the attacks the AI fired this tick. Range is
// measured again here, so a player who stepped away is not hit.
func UpdateEnemyAttacks(ecs *ecs.ECS) {
	var fired []*donburi.Entry
	components.AttackEvent.Each(ecs.World, func(e *donburi.Entry) {
		fired = append(fired, e)
	})
	if len(fired) == 0 {
		return
	}

	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	events := factory.GetOrCreateEventLog(ecs)

	for _, e := range fired {
		donburi.Remove[components.AttackEventData](e, components.AttackEvent)

		if !hasPlayer || components.Health.Get(e).IsDead() {
			continue
		}
		health := components.Health.Get(playerEntry)
		if health.IsDead() {
			continue
		}

		enemy := components.Enemy.Get(e)
		enemyPos := components.Transform.Get(e).Position
		playerPos := components.Transform.Get(playerEntry).Position
		if !combat.EnemyAttackLands(enemy, enemyPos, playerPos) {
			logger.Log.WithField("entity", e.Entity()).Debug("enemy attack out of range")
			continue
		}

		killed := health.ApplyDamage(enemy.AttackDamage)
		events.Hits = append(events.Hits, components.HitEvent{
			Attacker: e.Entity(),
			Target:   playerEntry.Entity(),
			Damage:   enemy.AttackDamage,
			Killed:   killed,
		})
		logger.Log.WithFields(logrus.Fields{
			"entity": e.Entity(),
			"type":   enemy.TypeName,
			"damage": enemy.AttackDamage,
			"health": health.Current,
		}).Debug("enemy attack landed")

		factory.SpawnAttackEffect(ecs, e.Entity(), playerPos)
	}
}
