package config

// AIStateID enumerates the enemy behaviour states.
type AIStateID int

const (
	AIIdle AIStateID = iota
	AIPatrol
	AIChase
	AIAttack
	AISearchLastKnown
	AIStunned
)

var aiStateNames = map[AIStateID]string{
	AIIdle:            "idle",
	AIPatrol:          "patrol",
	AIChase:           "chase",
	AIAttack:          "attack",
	AISearchLastKnown: "search_last_known",
	AIStunned:         "stunned",
}

func (s AIStateID) String() string {
	if n, ok := aiStateNames[s]; ok {
		return n
	}
	return "unknown"
}

// AnimState is the clip the presentation layer should play for an actor.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimRun
	AnimRoll
	AnimJump
	AnimSlash
	AnimParry
	AnimDeath
)

var animStateNames = map[AnimState]string{
	AnimIdle:  "idle",
	AnimWalk:  "walk",
	AnimRun:   "run",
	AnimRoll:  "roll",
	AnimJump:  "jump",
	AnimSlash: "slash",
	AnimParry: "parry",
	AnimDeath: "death",
}

func (s AnimState) String() string {
	if n, ok := animStateNames[s]; ok {
		return n
	}
	return "unknown"
}

// GameMode names the states of the session machine.
type GameMode = string

const (
	ModePlaying GameMode = "playing"
	ModePaused  GameMode = "paused"
	ModeDeath   GameMode = "death"
)

// Session machine events
const (
	EventPause   = "pause"
	EventResume  = "resume"
	EventDie     = "die"
	EventRespawn = "respawn"
)

// Faction decides who a hitbox may damage.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)
