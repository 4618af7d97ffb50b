package factory

import (
	"github.com/automoto/ashgrave/archetypes"
	"github.com/automoto/ashgrave/combat"
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec3, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	newObject(ecs, player, pos, cfg.Player.CollisionSize, tags.ResolvActor, tags.ResolvPlayer)

	components.Transform.SetValue(player, components.TransformData{Position: pos, Yaw: yaw})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Stamina.SetValue(player, components.StaminaData{
		Current:   cfg.Player.Stamina,
		Max:       cfg.Player.Stamina,
		RegenRate: cfg.Player.StaminaRegen,
	})
	components.Weapon.SetValue(player, components.WeaponData{
		Damage:         cfg.Weapon.Damage,
		AttackRange:    cfg.Weapon.AttackRange,
		AttackCooldown: cfg.Weapon.AttackCooldown,
		StaminaCost:    cfg.Weapon.StaminaCost,
	})
	components.AttackState.SetValue(player, combat.NewAttackState())
	components.Animation.Get(player).Reset()

	recordSpawn(ecs, player, components.KindPlayer, pos)
	return player
}
