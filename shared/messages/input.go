package messages

import "github.com/automoto/ashgrave/config"

// PlayerInput is sent from client to server each frame with the player's input state.
// Edge actions (attack, roll, parry) are true only in the message sent on the press.
type PlayerInput struct {
	Sequence  uint32                   // Incrementing ID for reconciliation
	Actions   map[config.ActionID]bool // Which actions are currently pressed
	Yaw       float64                  // Camera heading in radians
	Timestamp int64                    // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[config.ActionID]bool),
	}
}

// ActionSet flattens the pressed actions. Unknown action IDs are dropped.
func (p PlayerInput) ActionSet() [config.ActionCount]bool {
	var set [config.ActionCount]bool
	for id, pressed := range p.Actions {
		if id > config.ActionNone && id < config.ActionCount {
			set[id] = pressed
		}
	}
	return set
}

// RespawnRequest asks the server to leave the death screen.
type RespawnRequest struct{}

// PauseRequest toggles the session pause. Only the pilot may send it.
type PauseRequest struct {
	Paused bool
}
