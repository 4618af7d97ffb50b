package config

import "errors"

// ErrUnknownEnemyType is returned when a spawn names an enemy type with no config entry.
var ErrUnknownEnemyType = errors.New("config: unknown enemy type")

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed           float64 `yaml:"move_speed"`
	SprintMultiplier    float64 `yaml:"sprint_multiplier"`
	SprintCostPerSecond float64 `yaml:"sprint_cost_per_second"`

	// Roll
	RollDuration        float64 `yaml:"roll_duration"`
	RollSpeedMultiplier float64 `yaml:"roll_speed_multiplier"`
	RollCost            float64 `yaml:"roll_cost"`

	// Parry
	ParryDuration float64 `yaml:"parry_duration"`
	ParryCost     float64 `yaml:"parry_cost"`

	// Stats
	Health       float64 `yaml:"health"`
	Stamina      float64 `yaml:"stamina"`
	StaminaRegen float64 `yaml:"stamina_regen"`

	// Collision footprint on the ground plane
	CollisionSize float64 `yaml:"collision_size"`
}

// WeaponConfig holds the default weapon every combat-capable actor spawns with.
type WeaponConfig struct {
	Damage         float64 `yaml:"damage"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	StaminaCost    float64 `yaml:"stamina_cost"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name           string  `yaml:"name"`
	Health         float64 `yaml:"health"`
	DetectionRange float64 `yaml:"detection_range"`
	AttackRange    float64 `yaml:"attack_range"`
	MoveSpeed      float64 `yaml:"move_speed"`
	AttackDamage   float64 `yaml:"attack_damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	SoulReward     int     `yaml:"soul_reward"`
	CollisionSize  float64 `yaml:"collision_size"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Default enemy type configurations. Overridden per type through
	// the top-level enemy_types key of a tuning file.
	Types map[string]EnemyTypeConfig `yaml:"-"`

	// AI behavior constants
	ChaseRefreshMultiplier float64 `yaml:"chase_refresh_multiplier"` // last known position refresh radius
	LoseTrackMultiplier    float64 `yaml:"lose_track_multiplier"`
	AttackEscapeMultiplier float64 `yaml:"attack_escape_multiplier"` // hysteresis on leaving Attack
	SearchSpeedMultiplier  float64 `yaml:"search_speed_multiplier"`
	SearchArriveDistance   float64 `yaml:"search_arrive_distance"`

	// State timers (seconds)
	IdleDuration         float64 `yaml:"idle_duration"`
	PatrolDuration       float64 `yaml:"patrol_duration"`
	SearchDuration       float64 `yaml:"search_duration"`
	StunRecoveryDuration float64 `yaml:"stun_recovery_duration"`

	// Patrol paths
	PatrolSpeed          float64 `yaml:"patrol_speed"`
	PatrolArriveDistance float64 `yaml:"patrol_arrive_distance"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	HitboxLifetime       float64 `yaml:"hitbox_lifetime"`        // seconds
	AttackEffectLifetime float64 `yaml:"attack_effect_lifetime"` // seconds
}

// SoulsConfig covers the soul reward and recovery loop.
type SoulsConfig struct {
	PickupRadius float64 `yaml:"pickup_radius"`
}

// WorldConfig sizes the collision space. Positions outside the half extent
// are clamped when mirrored into the space.
type WorldConfig struct {
	HalfExtent float64 `yaml:"half_extent"`
	CellSize   int     `yaml:"cell_size"`
}

var Player PlayerConfig
var Weapon WeaponConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Animation AnimationConfig
var Souls SoulsConfig
var World WorldConfig

// Enemy type names
const (
	EnemyBasicMelee = "BasicMelee"
	EnemyArcher     = "Archer"
	EnemyBoss       = "Boss"
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	Player = PlayerConfig{
		MoveSpeed:           5.0,
		SprintMultiplier:    1.5,
		SprintCostPerSecond: 10.0,

		RollDuration:        0.5,
		RollSpeedMultiplier: 2.0,
		RollCost:            20.0,

		ParryDuration: 0.5,
		ParryCost:     10.0,

		Health:       100,
		Stamina:      100,
		StaminaRegen: 20,

		CollisionSize: 1.0,
	}

	Weapon = WeaponConfig{
		Damage:         25,
		AttackRange:    2.0,
		AttackCooldown: 1.0,
		StaminaCost:    15,
	}

	basicMelee := EnemyTypeConfig{
		Name:           EnemyBasicMelee,
		Health:         50,
		DetectionRange: 8.0,
		AttackRange:    2.0,
		MoveSpeed:      3.0,
		AttackDamage:   20,
		AttackCooldown: 2.0,
		SoulReward:     50,
		CollisionSize:  1.0,
	}

	archer := EnemyTypeConfig{
		Name:           EnemyArcher,
		Health:         35,
		DetectionRange: 14.0,
		AttackRange:    9.0,
		MoveSpeed:      2.5,
		AttackDamage:   12,
		AttackCooldown: 2.5,
		SoulReward:     60,
		CollisionSize:  1.0,
	}

	boss := EnemyTypeConfig{
		Name:           EnemyBoss,
		Health:         400,
		DetectionRange: 12.0,
		AttackRange:    3.0,
		MoveSpeed:      2.0,
		AttackDamage:   45,
		AttackCooldown: 3.0,
		SoulReward:     1000,
		CollisionSize:  2.0,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			EnemyBasicMelee: basicMelee,
			EnemyArcher:     archer,
			EnemyBoss:       boss,
		},

		ChaseRefreshMultiplier: 1.5,
		LoseTrackMultiplier:    2.0,
		AttackEscapeMultiplier: 1.2,
		SearchSpeedMultiplier:  0.5,
		SearchArriveDistance:   1.0,

		IdleDuration:         2.0,
		PatrolDuration:       3.0,
		SearchDuration:       5.0,
		StunRecoveryDuration: 1.0,

		PatrolSpeed:          1.5,
		PatrolArriveDistance: 0.5,
	}

	Combat = CombatConfig{
		HitboxLifetime:       0.2,
		AttackEffectLifetime: 0.3,
	}

	Animation = AnimationConfig{
		RollDuration:  0.7,
		SlashDuration: 0.8,
		ParryDuration: 0.5,
		JumpDuration:  1.0,
		DeathDuration: 2.0,
		JumpThreshold: 1.0,
		WalkThreshold: 0.1,
		RunThreshold:  3.0,
	}

	Souls = SoulsConfig{
		PickupRadius: 1.5,
	}

	World = WorldConfig{
		HalfExtent: 1024,
		CellSize:   4,
	}
}

// EnemyType looks up a type by name.
func EnemyType(name string) (EnemyTypeConfig, error) {
	t, ok := Enemy.Types[name]
	if !ok {
		return EnemyTypeConfig{}, ErrUnknownEnemyType
	}
	return t, nil
}
