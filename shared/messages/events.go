package messages

// HitEvent is broadcast when an attack connects
type HitEvent struct {
	AttackerID uint // NetworkId of attacker
	TargetID   uint // NetworkId of target
	Damage     float64
	Killed     bool
}

// SpawnEvent is broadcast when a new entity spawns
type SpawnEvent struct {
	NetworkID  uint
	EntityType string // "player", "enemy", "hitbox", "attack_effect", "death_marker"
	X, Y, Z    float64
}

// DespawnEvent is broadcast when an entity is removed
type DespawnEvent struct {
	NetworkID  uint
	EntityType string
}

// ModeChangeEvent is broadcast when the session enters a new mode
type ModeChangeEvent struct {
	Mode string // "playing", "paused", "death"
}
