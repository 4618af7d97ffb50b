package components

import (
	cfg "github.com/automoto/ashgrave/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Rolling   bool
	RollTimer float64

	Parrying   bool
	ParryTimer float64

	Sprinting bool
}

// PlayerInputData is the control snapshot for the current tick. Edge actions
// (see config.ActionID.IsEdge) read true only on the tick they fired.
type PlayerInputData struct {
	Actions [cfg.ActionCount]bool
	Yaw     float64 // camera heading; movement is relative to it
}

func (p *PlayerInputData) Held(a cfg.ActionID) bool {
	return p.Actions[a]
}

func (p *PlayerInputData) Triggered(a cfg.ActionID) bool {
	return a.IsEdge() && p.Actions[a]
}

// ClearEdges drops edge actions once the tick consumed them.
func (p *PlayerInputData) ClearEdges() {
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		if a.IsEdge() {
			p.Actions[a] = false
		}
	}
}

var Player = donburi.NewComponentType[PlayerData]()
var PlayerInput = donburi.NewComponentType[PlayerInputData]()
