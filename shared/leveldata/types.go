// Package leveldata reads encounter layouts from Tiled TMX maps. It has no
// dependencies on the ECS world; callers turn the result into entities.
package leveldata

import "github.com/yohamta/donburi/features/math"

// Encounter is everything a map places into the arena. Positions are in
// world units on the ground plane: X maps to world X and Y to world Z.
type Encounter struct {
	Name         string
	Width        float64
	Height       float64
	PlayerSpawns []PlayerSpawn
	EnemySpawns  []EnemySpawn
	PatrolPaths  map[string]PatrolPath
}

// PlayerSpawn is a respawn point. Index orders spawns placed by the designer.
type PlayerSpawn struct {
	Position math.Vec2
	Index    int
}

type EnemySpawn struct {
	Position  math.Vec2
	EnemyType string
	PathName  string // optional, a key into PatrolPaths
}

// PatrolPath is a named waypoint loop. Speed is zero when the map leaves it
// to the enemy config.
type PatrolPath struct {
	Name   string
	Points []math.Vec2
	Speed  float64
}
