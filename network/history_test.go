package network

import (
	"testing"

	"github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputHistory(t *testing.T) {
	var h InputHistory
	assert.Equal(t, uint32(1), h.NextSeq())

	for i := 0; i < 5; i++ {
		in := messages.NewPlayerInput(h.NextSeq())
		in.Actions[config.ActionSprint] = i%2 == 0
		h.Store(in)
	}
	assert.Equal(t, uint32(6), h.NextSeq())

	got, ok := h.Get(3)
	require.True(t, ok)
	assert.True(t, got.Actions[config.ActionSprint])

	pending := h.Unacknowledged(3)
	require.Len(t, pending, 2)
	assert.Equal(t, uint32(4), pending[0].Sequence)
	assert.Equal(t, uint32(5), pending[1].Sequence)

	assert.Empty(t, h.Unacknowledged(5))
}

func TestInputHistory_Overwritten(t *testing.T) {
	var h InputHistory
	for seq := uint32(1); seq <= historySize+2; seq++ {
		h.Store(messages.NewPlayerInput(seq))
	}

	_, ok := h.Get(1)
	assert.False(t, ok)
	_, ok = h.Get(historySize + 1)
	assert.True(t, ok)

	assert.Len(t, h.Unacknowledged(0), historySize)
}

func TestClient_OfflineState(t *testing.T) {
	c := NewClient()
	assert.Equal(t, StateDisconnected, c.State())
	assert.Equal(t, config.ModePlaying, c.Mode())

	c.onJoinAccepted(messages.JoinAccepted{SessionID: "s", Pilot: true, TickRate: 30})
	assert.Equal(t, StateJoinedGame, c.State())
	assert.True(t, c.Pilot())
	assert.Equal(t, "s", c.SessionID())

	c.onModeChange(messages.ModeChangeEvent{Mode: config.ModeDeath})
	assert.Equal(t, config.ModeDeath, c.Mode())

	err := c.SendInput(map[config.ActionID]bool{config.ActionAttack: true}, 0)
	assert.Error(t, err)
	assert.Equal(t, 1, c.Acknowledge(0))
	assert.Zero(t, c.Acknowledge(1))
}

func TestDrainChan(t *testing.T) {
	c := NewClient()
	push(c.hitCh, messages.HitEvent{Damage: 1})
	push(c.hitCh, messages.HitEvent{Damage: 2})

	hits := c.DrainHitEvents()
	require.Len(t, hits, 2)
	assert.Equal(t, 2.0, hits[1].Damage)
	assert.Empty(t, c.DrainHitEvents())
}
