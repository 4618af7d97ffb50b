package systems

import (
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/systems/factory"
	"github.com/automoto/ashgrave/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths despawns dead enemies, paying their soul reward, and moves
// the session to the death screen when the player dies.
func UpdateDeaths(ecs *ecs.ECS) {
	playerEntry, hasPlayer := tags.Player.First(ecs.World)

	var dead []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).IsDead() {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		enemy := components.Enemy.Get(e)
		if hasPlayer {
			components.Souls.Get(playerEntry).Count += enemy.SoulReward
		}
		logger.Log.WithFields(logrus.Fields{
			"entity": e.Entity(),
			"type":   enemy.TypeName,
			"souls":  enemy.SoulReward,
		}).Info("enemy killed")
		factory.Destroy(ecs, e, components.KindEnemy)
	}

	if hasPlayer && components.Health.Get(playerEntry).IsDead() {
		handlePlayerDeath(ecs, playerEntry)
	}
}

func handlePlayerDeath(ecs *ecs.ECS, e *donburi.Entry) {
	if err := ChangeMode(ecs, cfg.EventDie); err != nil {
		logger.Log.WithError(err).Debug("player death ignored")
		return
	}

	// Souls left from an earlier death are lost.
	var stale []*donburi.Entry
	tags.DeathMarker.Each(ecs.World, func(m *donburi.Entry) {
		stale = append(stale, m)
	})
	for _, m := range stale {
		factory.Destroy(ecs, m, components.KindDeathMarker)
	}

	souls := components.Souls.Get(e)
	pos := components.Transform.Get(e).Position
	if souls.Count > 0 {
		factory.CreateDeathMarker(ecs, pos, souls.Count)
	}
	logger.Log.WithFields(logrus.Fields{
		"souls":    souls.Count,
		"position": pos,
	}).Info("player died")
	souls.Count = 0
}
