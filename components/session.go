package components

import (
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// ClockData is the per-tick time step set by the host before each update.
type ClockData struct {
	Tick uint64
	DT   float64 // seconds
}

// SessionData holds the game mode machine (playing, paused, death).
type SessionData struct {
	Mode *fsm.FSM
}

var Clock = donburi.NewComponentType[ClockData]()
var Session = donburi.NewComponentType[SessionData]()
