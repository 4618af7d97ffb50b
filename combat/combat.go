// Package combat holds the attack and hitbox rules shared by the player and
// enemies. Functions here mutate only the components passed to them.
package combat

import (
	"sort"

	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NewAttackState returns an actor's attack state at spawn: ready to swing.
func NewAttackState() components.AttackStateData {
	return components.AttackStateData{CanAttack: true}
}

// TryStartAttack gates an attack request. The guards run before the stamina
// spend so a rejected request never touches stamina.
func TryStartAttack(state *components.AttackStateData, stamina *components.StaminaData, weapon *components.WeaponData) bool {
	if !state.CanAttack || state.IsAttacking {
		return false
	}
	if !stamina.TrySpend(weapon.StaminaCost) {
		return false
	}
	state.IsAttacking = true
	state.CanAttack = false
	state.Timer = weapon.AttackCooldown
	return true
}

// TickAttack runs the combined windup and cooldown timer.
func TickAttack(state *components.AttackStateData, dt float64) {
	if state.Timer <= 0 {
		return
	}
	state.Timer -= dt
	if state.Timer <= 0 {
		state.Timer = 0
		state.CanAttack = true
		state.IsAttacking = false
	}
}

// NewHitbox places a hitbox half the weapon's reach in front of the owner.
func NewHitbox(owner donburi.Entity, faction cfg.Faction, position, forward gamemath.Vec3, weapon *components.WeaponData) components.HitboxData {
	return components.HitboxData{
		Owner:    owner,
		Faction:  faction,
		Center:   position.Add(forward.Scale(weapon.AttackRange / 2)),
		Radius:   weapon.AttackRange,
		Damage:   weapon.Damage,
		Active:   true,
		Lifetime: cfg.Combat.HitboxLifetime,
	}
}

// TickHitbox runs the lifetime down and reports whether the hitbox expired.
func TickHitbox(h *components.HitboxData, dt float64) bool {
	h.Lifetime -= dt
	return h.Lifetime <= 0
}

// Target is a live actor a hitbox may land on.
type Target struct {
	Entity   donburi.Entity
	Faction  cfg.Faction
	Position gamemath.Vec3
}

// SelectTarget picks the closest eligible target within the hitbox radius.
// Owners, allies and anything outside the radius are skipped. Equal
// distances resolve to the lower entity id so the choice is stable.
func SelectTarget(h *components.HitboxData, candidates []Target) (Target, bool) {
	eligible := make([]Target, 0, len(candidates))
	for _, c := range candidates {
		if c.Entity == h.Owner || c.Faction == h.Faction {
			continue
		}
		if gamemath.Distance(h.Center, c.Position) <= h.Radius {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return Target{}, false
	}

	sort.Slice(eligible, func(i, j int) bool {
		di := gamemath.Distance(h.Center, eligible[i].Position)
		dj := gamemath.Distance(h.Center, eligible[j].Position)
		if di != dj {
			return di < dj
		}
		return eligible[i].Entity < eligible[j].Entity
	})
	return eligible[0], true
}

// Land applies the hitbox's damage and deactivates it. It returns whether the
// target died.
func Land(h *components.HitboxData, health *components.HealthData) bool {
	h.Active = false
	return health.ApplyDamage(h.Damage)
}

// EnemyAttackLands re-measures range at the instant an enemy's attack fires.
func EnemyAttackLands(enemy *components.EnemyData, enemyPos, playerPos gamemath.Vec3) bool {
	return gamemath.Distance(enemyPos, playerPos) <= enemy.AttackRange
}
