package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Cleanup(Reset)

	assert.Equal(t, 25.0, Weapon.Damage)
	assert.Equal(t, 2.0, Weapon.AttackRange)
	assert.Equal(t, 15.0, Weapon.StaminaCost)
	assert.Equal(t, 0.2, Combat.HitboxLifetime)
	assert.Equal(t, 0.3, Combat.AttackEffectLifetime)

	basic, err := EnemyType(EnemyBasicMelee)
	require.NoError(t, err)
	assert.Equal(t, 8.0, basic.DetectionRange)
	assert.Equal(t, 2.0, basic.AttackCooldown)

	_, err = EnemyType("Dragon")
	assert.ErrorIs(t, err, ErrUnknownEnemyType)
}

func TestApply(t *testing.T) {
	t.Cleanup(Reset)

	t.Run("partial sections keep other values", func(t *testing.T) {
		Reset()
		err := Apply([]byte(`
weapon:
  damage: 40
enemy:
  idle_duration: 4
`))
		require.NoError(t, err)

		assert.Equal(t, 40.0, Weapon.Damage)
		assert.Equal(t, 2.0, Weapon.AttackRange)
		assert.Equal(t, 4.0, Enemy.IdleDuration)
		assert.Equal(t, 3.0, Enemy.PatrolDuration)
		assert.Len(t, Enemy.Types, 3)
	})

	t.Run("enemy types merge per field", func(t *testing.T) {
		Reset()
		err := Apply([]byte(`
enemy_types:
  Boss:
    health: 900
  Wraith:
    health: 10
    detection_range: 20
`))
		require.NoError(t, err)

		boss, err := EnemyType(EnemyBoss)
		require.NoError(t, err)
		assert.Equal(t, 900.0, boss.Health)
		assert.Equal(t, 45.0, boss.AttackDamage)

		wraith, err := EnemyType("Wraith")
		require.NoError(t, err)
		assert.Equal(t, "Wraith", wraith.Name)
		assert.Equal(t, 20.0, wraith.DetectionRange)
	})

	t.Run("invalid document changes nothing", func(t *testing.T) {
		Reset()
		err := Apply([]byte("weapon: [1, 2"))
		require.Error(t, err)
		assert.Equal(t, 25.0, Weapon.Damage)

		err = Apply([]byte("weapon:\n  damage: 99\nworld:\n  cell_size: 0\n"))
		require.Error(t, err)
		assert.Equal(t, 25.0, Weapon.Damage)
	})
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  move_speed: 7.5\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 7.5, Player.MoveSpeed)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReloadFile(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	path := filepath.Join(t.TempDir(), "tuning.yaml")

	require.NoError(t, os.WriteFile(path, []byte("weapon:\n  damage: 30\nworld:\n  cell_size: 4\n"), 0o644))
	require.NoError(t, ReloadFile(path))
	assert.Equal(t, 30.0, Weapon.Damage)

	require.NoError(t, os.WriteFile(path, []byte("weapon:\n  damage: 60\nworld:\n  half_extent: 64\n"), 0o644))
	err := ReloadFile(path)
	assert.ErrorIs(t, err, ErrWorldChanged)
	assert.Equal(t, 30.0, Weapon.Damage)
	assert.Equal(t, 1024.0, World.HalfExtent)

	// A startup load may still size the world.
	require.NoError(t, LoadFile(path))
	assert.Equal(t, 64.0, World.HalfExtent)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weapon:\n  damage: 1\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("weapon:\n  damage: 2\n"), 0o644))

	select {
	case got := <-w.Events:
		want, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}
}
