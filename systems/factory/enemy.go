package factory

import (
	"fmt"

	"github.com/automoto/ashgrave/ai"
	"github.com/automoto/ashgrave/archetypes"
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type. A non-empty patrol path
// gives it waypoints to walk while patrolling.
func CreateEnemy(ecs *ecs.ECS, pos gamemath.Vec3, enemyTypeName string, patrol *components.PatrolPathData) (*donburi.Entry, error) {
	enemyType, err := cfg.EnemyType(enemyTypeName)
	if err != nil {
		return nil, fmt.Errorf("factory: enemy %q: %w", enemyTypeName, err)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	newObject(ecs, enemy, pos, enemyType.CollisionSize, tags.ResolvActor, tags.ResolvEnemy)

	components.Transform.SetValue(enemy, components.TransformData{Position: pos})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:       enemyType.Name,
		DetectionRange: enemyType.DetectionRange,
		AttackRange:    enemyType.AttackRange,
		MoveSpeed:      enemyType.MoveSpeed,
		AttackDamage:   enemyType.AttackDamage,
		AttackCooldown: enemyType.AttackCooldown,
		SoulReward:     enemyType.SoulReward,
	})
	components.AI.SetValue(enemy, ai.NewBrain())
	components.Animation.Get(enemy).Reset()

	if patrol != nil && len(patrol.Points) > 0 {
		donburi.Add(enemy, components.PatrolPath, patrol)
	}

	recordSpawn(ecs, enemy, components.KindEnemy, pos)
	return enemy, nil
}
