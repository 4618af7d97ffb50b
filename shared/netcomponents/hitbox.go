package netcomponents

import "github.com/yohamta/donburi"

// NetHitboxData lets clients draw attack volumes. Hitboxes never move.
type NetHitboxData struct {
	X, Y, Z        float64
	Radius         float64
	OwnerNetworkID uint
	Active         bool
}

var NetHitbox = donburi.NewComponentType[NetHitboxData]()
