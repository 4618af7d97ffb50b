package messages

import (
	"testing"

	"github.com/automoto/ashgrave/config"
	"github.com/stretchr/testify/assert"
)

func TestPlayerInput_ActionSet(t *testing.T) {
	in := NewPlayerInput(7)
	in.Actions[config.ActionAttack] = true
	in.Actions[config.ActionMoveLeft] = true
	in.Actions[config.ActionSprint] = false
	in.Actions[config.ActionID(200)] = true
	in.Actions[config.ActionNone] = true

	set := in.ActionSet()
	assert.True(t, set[config.ActionAttack])
	assert.True(t, set[config.ActionMoveLeft])
	assert.False(t, set[config.ActionSprint])
	assert.False(t, set[config.ActionNone])
}
