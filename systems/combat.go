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

// UpdateAttacks runs attack timers, then turns the player's attack press
// into a hitbox when the attack is allowed.
func UpdateAttacks(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT

	components.AttackState.Each(ecs.World, func(e *donburi.Entry) {
		combat.TickAttack(components.AttackState.Get(e), dt)
	})

	var swings []components.HitboxData
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !components.PlayerInput.Get(e).Triggered(cfg.ActionAttack) {
			return
		}
		if components.Health.Get(e).IsDead() {
			return
		}

		state := components.AttackState.Get(e)
		stamina := components.Stamina.Get(e)
		weapon := components.Weapon.Get(e)
		if !combat.TryStartAttack(state, stamina, weapon) {
			logger.Log.WithFields(logrus.Fields{
				"entity":     e.Entity(),
				"stamina":    stamina.Current,
				"cost":       weapon.StaminaCost,
				"can_attack": state.CanAttack,
			}).Debug("attack rejected")
			return
		}

		transform := components.Transform.Get(e)
		swings = append(swings, combat.NewHitbox(e.Entity(), cfg.FactionPlayer, transform.Position, transform.Forward(), weapon))
	})

	for _, h := range swings {
		factory.CreateHitbox(ecs, h)
	}
}
