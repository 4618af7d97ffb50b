package systems

import (
	"github.com/automoto/ashgrave/animation"
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateAnimations(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		animation.Update(components.Animation.Get(e), animation.Snapshot{
			Dead:          components.Health.Get(e).IsDead(),
			Rolling:       player.Rolling,
			Parrying:      player.Parrying,
			Attacking:     components.AttackState.Get(e).IsAttacking,
			Sprinting:     player.Sprinting,
			Velocity:      components.Velocity.Get(e).Vec3,
			SlashDuration: components.Weapon.Get(e).AttackCooldown,
		}, dt)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		animation.Update(components.Animation.Get(e), animation.Snapshot{
			Dead:          components.Health.Get(e).IsDead(),
			Attacking:     components.AI.Get(e).State == cfg.AIAttack,
			Velocity:      components.Velocity.Get(e).Vec3,
			SlashDuration: components.Enemy.Get(e).AttackCooldown,
		}, dt)
	})
}
