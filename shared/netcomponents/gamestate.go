package netcomponents

import (
	cfg "github.com/automoto/ashgrave/config"
	"github.com/yohamta/donburi"
)

type NetGameStateData struct {
	SessionID string
	Mode      cfg.GameMode
	Tick      uint64
	Souls     int

	// Unrecovered soul drop, if any.
	HasMarker   bool
	MarkerX     float64
	MarkerZ     float64
	MarkerSouls int
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
