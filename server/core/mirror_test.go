package core

import (
	"testing"

	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/shared/netcomponents"
	"github.com/automoto/ashgrave/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestMirror_Apply(t *testing.T) {
	world := donburi.NewWorld()
	rep := newFakeReplicator()
	m := newMirror(world, rep)

	player := donburi.Entity(1)
	enemy := donburi.Entity(2)
	hitbox := donburi.Entity(3)

	frame := &sim.Frame{
		Tick: 1,
		Actors: []sim.ActorState{
			{Entity: player, Kind: components.KindPlayer, Position: gamemath.Vec3{X: 1, Z: 2}, Yaw: 0.5, Health: 100, MaxHealth: 100},
			{Entity: enemy, Kind: components.KindEnemy, EnemyType: cfg.EnemyBasicMelee, AIState: cfg.AIChase, Health: 50},
		},
		Hitboxes: []sim.HitboxState{
			{Entity: hitbox, Owner: player, Center: gamemath.Vec3{Z: -1}, Radius: 2, Active: true},
		},
	}
	removed := m.apply(frame, netcomponents.NetGameStateData{Tick: 1, Souls: 7}, 9)
	assert.Empty(t, removed)

	require.True(t, m.hasGame)
	state := netcomponents.NetGameState.Get(world.Entry(m.state))
	assert.Equal(t, 7, state.Souls)

	playerID := m.networkID(player)
	require.NotZero(t, playerID)

	pEntry := world.Entry(m.tracked[player])
	assert.Equal(t, 0.5, netcomponents.NetPosition.Get(pEntry).Yaw)
	assert.Equal(t, uint32(9), netcomponents.NetActor.Get(pEntry).LastSequence)

	eEntry := world.Entry(m.tracked[enemy])
	eActor := netcomponents.NetActor.Get(eEntry)
	assert.Equal(t, cfg.EnemyBasicMelee, eActor.EnemyType)
	assert.Equal(t, cfg.AIChase, eActor.AIState)
	assert.Zero(t, eActor.LastSequence)

	hb := netcomponents.NetHitbox.Get(world.Entry(m.tracked[hitbox]))
	assert.Equal(t, playerID, hb.OwnerNetworkID)
	assert.Equal(t, -1.0, hb.Z)

	// The enemy and the hitbox are gone next frame.
	enemyID := m.networkID(enemy)
	frame = &sim.Frame{Tick: 2, Actors: frame.Actors[:1]}
	removed = m.apply(frame, netcomponents.NetGameStateData{Tick: 2}, 9)

	assert.Equal(t, enemyID, removed[enemy])
	assert.Contains(t, removed, hitbox)
	assert.Len(t, removed, 2)
	assert.Zero(t, m.networkID(enemy))
	assert.Equal(t, playerID, m.networkID(player))
}

func TestMirror_TrackFailureSkipsEntity(t *testing.T) {
	world := donburi.NewWorld()
	rep := newFakeReplicator()
	rep.refuse = string(components.KindEnemy)
	m := newMirror(world, rep)

	frame := &sim.Frame{Actors: []sim.ActorState{
		{Entity: 1, Kind: components.KindPlayer},
		{Entity: 2, Kind: components.KindEnemy},
	}}
	m.apply(frame, netcomponents.NetGameStateData{}, 0)

	assert.NotZero(t, m.networkID(1))
	assert.Zero(t, m.networkID(2))
	assert.Len(t, m.tracked, 1)
}
