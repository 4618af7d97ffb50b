package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionAttack    // edge
	ActionRoll      // edge
	ActionBlock     // held
	ActionSprint    // held
	ActionSecondary // edge
	ActionCount     // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveForward: "move_forward",
	ActionMoveBack:    "move_back",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionAttack:      "attack",
	ActionRoll:        "roll",
	ActionBlock:       "block",
	ActionSprint:      "sprint",
	ActionSecondary:   "secondary",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// IsEdge reports whether the action fires once per press rather than while held.
func (a ActionID) IsEdge() bool {
	switch a {
	case ActionAttack, ActionRoll, ActionSecondary:
		return true
	}
	return false
}
