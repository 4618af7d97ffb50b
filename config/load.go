package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the shape of a YAML override file. Every section is optional and
// only the keys present replace the current values.
type Tuning struct {
	Player     *PlayerConfig        `yaml:"player"`
	Weapon     *WeaponConfig        `yaml:"weapon"`
	Enemy      *EnemyConfig         `yaml:"enemy"`
	EnemyTypes map[string]yaml.Node `yaml:"enemy_types"`
	Combat     *CombatConfig        `yaml:"combat"`
	Animation  *AnimationConfig     `yaml:"animation"`
	Souls      *SoulsConfig         `yaml:"souls"`
	World      *WorldConfig         `yaml:"world"`
}

// ErrWorldChanged rejects a reload that resizes the world. The collision space
// is sized once when the simulation starts.
var ErrWorldChanged = errors.New("world section cannot change on reload")

// LoadFile overlays the tuning file at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config: apply %s: %w", path, err)
	}
	return nil
}

// ReloadFile is LoadFile for a running simulation: it refuses documents that
// change the world section and leaves everything as it was.
func ReloadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reload %s: %w", path, err)
	}
	if err := apply(data, true); err != nil {
		return fmt.Errorf("config: reload %s: %w", path, err)
	}
	return nil
}

// Apply overlays YAML tuning data. Nothing changes if the document is invalid.
func Apply(data []byte) error {
	return apply(data, false)
}

func apply(data []byte, keepWorld bool) error {
	player, weapon, enemy := Player, Weapon, Enemy
	combat, animation, souls, world := Combat, Animation, Souls, World

	t := Tuning{
		Player:    &player,
		Weapon:    &weapon,
		Enemy:     &enemy,
		Combat:    &combat,
		Animation: &animation,
		Souls:     &souls,
		World:     &world,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	types := make(map[string]EnemyTypeConfig, len(Enemy.Types)+len(t.EnemyTypes))
	for name, tc := range Enemy.Types {
		types[name] = tc
	}
	for name, node := range t.EnemyTypes {
		tc, ok := types[name]
		if !ok {
			tc = EnemyTypeConfig{Name: name}
		}
		if err := node.Decode(&tc); err != nil {
			return fmt.Errorf("config: enemy type %s: %w", name, err)
		}
		types[name] = tc
	}
	enemy.Types = types

	if world.CellSize <= 0 {
		return fmt.Errorf("config: world cell_size must be positive, got %d", world.CellSize)
	}
	if keepWorld && world != World {
		return ErrWorldChanged
	}

	Player, Weapon, Enemy = player, weapon, enemy
	Combat, Animation, Souls, World = combat, animation, souls, world
	return nil
}
