package core

import (
	"testing"

	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/leveldata"
	"github.com/automoto/ashgrave/shared/messages"
	"github.com/automoto/ashgrave/shared/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const testDT = 1.0 / 30

// duel puts one BasicMelee a step in front of the player.
func duel() *leveldata.Encounter {
	return &leveldata.Encounter{
		Name:         "duel",
		PlayerSpawns: []leveldata.PlayerSpawn{{Position: math.Vec2{}}},
		EnemySpawns:  []leveldata.EnemySpawn{{Position: math.Vec2{Y: -1}, EnemyType: cfg.EnemyBasicMelee}},
	}
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.TickRate == 0 {
		opts.TickRate = 30
	}
	if opts.Encounter == nil {
		opts.Encounter = duel()
	}
	s, err := newServer(opts, donburi.NewWorld(), newFakeReplicator())
	require.NoError(t, err)
	return s
}

func attackInput(seq uint32) messages.PlayerInput {
	in := messages.NewPlayerInput(seq)
	in.Actions[cfg.ActionAttack] = true
	return in
}

func TestNewServer_RejectsBadTickRate(t *testing.T) {
	_, err := newServer(Options{}, donburi.NewWorld(), newFakeReplicator())
	assert.Error(t, err)
}

func TestServer_JoinAssignsPilot(t *testing.T) {
	s := newTestServer(t, Options{Name: "ashgrave"})
	s.Step(testDT)

	pilot := &fakePeer{id: "a"}
	spectator := &fakePeer{id: "b"}
	s.onJoin(pilot, messages.JoinRequest{PlayerName: "a"})
	s.onJoin(spectator, messages.JoinRequest{PlayerName: "b"})

	first, ok := lastOf[messages.JoinAccepted](pilot)
	require.True(t, ok)
	assert.True(t, first.Pilot)
	assert.NotZero(t, first.NetworkID)
	assert.Equal(t, s.SessionID(), first.SessionID)
	assert.Equal(t, "ashgrave", first.ServerName)
	assert.Equal(t, 30, first.TickRate)

	second, ok := lastOf[messages.JoinAccepted](spectator)
	require.True(t, ok)
	assert.False(t, second.Pilot)
	assert.Equal(t, 2, s.PlayerCount())
}

func TestServer_JoinVersionMismatch(t *testing.T) {
	s := newTestServer(t, Options{Version: "1.2"})

	p := &fakePeer{id: "a"}
	s.onJoin(p, messages.JoinRequest{Version: "1.1"})

	rejected, ok := lastOf[messages.JoinRejected](p)
	require.True(t, ok)
	assert.Contains(t, rejected.Reason, "1.2")
	assert.Zero(t, s.PlayerCount())
}

func TestServer_PilotAttackBroadcastsHit(t *testing.T) {
	s := newTestServer(t, Options{})
	s.Step(testDT)

	pilot := &fakePeer{id: "a"}
	spectator := &fakePeer{id: "b"}
	s.onJoin(pilot, messages.JoinRequest{})
	s.onJoin(spectator, messages.JoinRequest{})
	accepted, _ := lastOf[messages.JoinAccepted](pilot)

	s.onPlayerInput(pilot, attackInput(1))
	s.Step(testDT)

	for _, p := range []*fakePeer{pilot, spectator} {
		hits := allOf[messages.HitEvent](p)
		require.Len(t, hits, 1, p.id)
		assert.Equal(t, uint(accepted.NetworkID), hits[0].AttackerID)
		assert.NotZero(t, hits[0].TargetID)
		assert.Equal(t, cfg.Weapon.Damage, hits[0].Damage)
		assert.False(t, hits[0].Killed)
	}
}

func TestServer_SpectatorInputIgnored(t *testing.T) {
	s := newTestServer(t, Options{})
	pilot := &fakePeer{id: "a"}
	spectator := &fakePeer{id: "b"}
	s.onJoin(pilot, messages.JoinRequest{})
	s.onJoin(spectator, messages.JoinRequest{})

	s.onPlayerInput(spectator, attackInput(1))
	s.Step(testDT)

	assert.Empty(t, allOf[messages.HitEvent](pilot))
	assert.Zero(t, s.lastSequence)
}

func TestServer_StaleInputDropped(t *testing.T) {
	s := newTestServer(t, Options{})
	pilot := &fakePeer{id: "a"}
	s.onJoin(pilot, messages.JoinRequest{})

	s.onPlayerInput(pilot, messages.NewPlayerInput(5))
	s.onPlayerInput(pilot, attackInput(3))
	s.Step(testDT)

	assert.Equal(t, uint32(5), s.lastSequence)
	assert.Empty(t, allOf[messages.HitEvent](pilot))
}

func TestServer_PilotLeavingPauses(t *testing.T) {
	s := newTestServer(t, Options{})
	pilot := &fakePeer{id: "a"}
	spectator := &fakePeer{id: "b"}
	s.onJoin(pilot, messages.JoinRequest{})
	s.onJoin(spectator, messages.JoinRequest{})
	s.Step(testDT)

	s.onDisconnect(pilot, nil)
	assert.Equal(t, cfg.ModePaused, s.sim.Mode())
	assert.Equal(t, 1, s.PlayerCount())

	s.Step(testDT)
	change, ok := lastOf[messages.ModeChangeEvent](spectator)
	require.True(t, ok)
	assert.Equal(t, cfg.ModePaused, change.Mode)

	// The spectator cannot resume; the next joiner pilots and resumes.
	s.onPause(spectator, messages.PauseRequest{Paused: false})
	assert.Equal(t, cfg.ModePaused, s.sim.Mode())

	next := &fakePeer{id: "c"}
	s.onJoin(next, messages.JoinRequest{})
	accepted, _ := lastOf[messages.JoinAccepted](next)
	assert.True(t, accepted.Pilot)
	assert.Equal(t, cfg.ModePlaying, s.sim.Mode())
}

func TestServer_PauseRequest(t *testing.T) {
	s := newTestServer(t, Options{})
	pilot := &fakePeer{id: "a"}
	s.onJoin(pilot, messages.JoinRequest{})

	s.onPause(pilot, messages.PauseRequest{Paused: true})
	assert.Equal(t, cfg.ModePaused, s.sim.Mode())

	// A pilot's own pause is not lifted by someone else joining.
	s.onJoin(&fakePeer{id: "b"}, messages.JoinRequest{})
	assert.Equal(t, cfg.ModePaused, s.sim.Mode())

	s.onPause(pilot, messages.PauseRequest{Paused: false})
	assert.Equal(t, cfg.ModePlaying, s.sim.Mode())
}

func TestServer_RespawnOnlyFromDeath(t *testing.T) {
	s := newTestServer(t, Options{})
	pilot := &fakePeer{id: "a"}
	s.onJoin(pilot, messages.JoinRequest{})

	s.onRespawn(pilot)
	assert.Equal(t, cfg.ModePlaying, s.sim.Mode())
}

func TestServer_ProcessCommandsDrainsQueue(t *testing.T) {
	s := newTestServer(t, Options{})

	ran := 0
	for i := 0; i < 3; i++ {
		s.enqueue(func() { ran++ })
	}
	s.ProcessCommands()
	assert.Equal(t, 3, ran)

	s.ProcessCommands()
	assert.Equal(t, 3, ran)
}

type memStorage struct {
	items map[string][]byte
}

func (m *memStorage) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStorage) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func TestServer_Progress(t *testing.T) {
	mem := &memStorage{}
	store := progress.New(mem)
	require.NoError(t, store.Save(progress.Saved{
		Souls:  120,
		Marker: &progress.SavedMarker{Souls: 30, X: 5, Z: -5},
	}))

	s := newTestServer(t, Options{Store: store})
	assert.Equal(t, 120, s.sim.Souls())
	pos, souls, ok := s.sim.Marker()
	require.True(t, ok)
	assert.Equal(t, 30, souls)
	assert.Equal(t, 5.0, pos.X)
	assert.Equal(t, -5.0, pos.Z)

	// Unchanged progress is not rewritten.
	mem.items = nil
	s.Step(testDT)
	assert.Nil(t, mem.items)

	require.NoError(t, s.sim.SetSouls(200))
	s.Step(testDT)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 200, saved.Souls)
	require.NotNil(t, saved.Marker)
	assert.Equal(t, 30, saved.Marker.Souls)
}

func TestRespawnPoint(t *testing.T) {
	enc := &leveldata.Encounter{PlayerSpawns: []leveldata.PlayerSpawn{{Position: math.Vec2{X: 3, Y: 4}}}}
	p := respawnPoint(enc)
	assert.Equal(t, 3.0, p.X)
	assert.Equal(t, 4.0, p.Z)

	assert.Zero(t, respawnPoint(&leveldata.Encounter{}))
}

func TestDefaultEncounter(t *testing.T) {
	s, err := newServer(Options{TickRate: 30}, donburi.NewWorld(), newFakeReplicator())
	require.NoError(t, err)
	_, ok := s.sim.Player()
	assert.True(t, ok)
	assert.Equal(t, "arena", s.opts.Encounter.Name)
}
