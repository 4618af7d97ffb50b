package components

import (
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

// EntityKind labels spawn and despawn events for the host.
type EntityKind string

const (
	KindPlayer       EntityKind = "player"
	KindEnemy        EntityKind = "enemy"
	KindHitbox       EntityKind = "hitbox"
	KindAttackEffect EntityKind = "attack_effect"
	KindDeathMarker  EntityKind = "death_marker"
)

type SpawnEvent struct {
	Entity   donburi.Entity
	Kind     EntityKind
	Position gamemath.Vec3
}

type DespawnEvent struct {
	Entity donburi.Entity
	Kind   EntityKind
}

// HitEvent records damage dealt by a hitbox or an enemy attack.
type HitEvent struct {
	Attacker donburi.Entity
	Target   donburi.Entity
	Damage   float64
	Killed   bool
}

// EventLogData collects what happened during one tick. It is cleared at the
// start of the next tick.
type EventLogData struct {
	Spawns   []SpawnEvent
	Despawns []DespawnEvent
	Hits     []HitEvent
}

func (l *EventLogData) Reset() {
	l.Spawns = l.Spawns[:0]
	l.Despawns = l.Despawns[:0]
	l.Hits = l.Hits[:0]
}

var EventLog = donburi.NewComponentType[EventLogData]()
