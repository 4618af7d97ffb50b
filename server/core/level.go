package core

import (
	"fmt"
	"os"
	"path/filepath"

	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/shared/leveldata"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/features/math"
)

// LoadEncounter reads a TMX map from disk.
func LoadEncounter(path string) (*leveldata.Encounter, error) {
	enc, err := leveldata.LoadEncounter(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load encounter: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"name":    enc.Name,
		"enemies": len(enc.EnemySpawns),
		"paths":   len(enc.PatrolPaths),
		"spawns":  len(enc.PlayerSpawns),
	}).Info("encounter loaded")
	return enc, nil
}

// DefaultEncounter is the arena used when no map is given: one of each
// enemy type around the player, the melee one on a short patrol.
func DefaultEncounter() *leveldata.Encounter {
	return &leveldata.Encounter{
		Name:         "arena",
		Width:        64,
		Height:       64,
		PlayerSpawns: []leveldata.PlayerSpawn{{Position: math.Vec2{X: 0, Y: 0}}},
		EnemySpawns: []leveldata.EnemySpawn{
			{Position: math.Vec2{X: 10, Y: -10}, EnemyType: cfg.EnemyBasicMelee, PathName: "ring"},
			{Position: math.Vec2{X: -16, Y: -12}, EnemyType: cfg.EnemyArcher},
			{Position: math.Vec2{X: 0, Y: -30}, EnemyType: cfg.EnemyBoss},
		},
		PatrolPaths: map[string]leveldata.PatrolPath{
			"ring": {
				Name:   "ring",
				Points: []math.Vec2{{X: 10, Y: -10}, {X: 14, Y: -10}, {X: 14, Y: -14}, {X: 10, Y: -14}},
			},
		},
	}
}

// respawnPoint is where the player comes back after death.
func respawnPoint(enc *leveldata.Encounter) gamemath.Vec3 {
	if len(enc.PlayerSpawns) == 0 {
		return gamemath.Vec3{}
	}
	p := enc.PlayerSpawns[0].Position
	return gamemath.Vec3{X: p.X, Z: p.Y}
}
