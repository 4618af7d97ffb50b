package components

import (
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DeathMarkerData holds the souls dropped where the player died.
type DeathMarkerData struct {
	Souls    int
	Position gamemath.Vec3
}

type SoulsData struct {
	Count int
}

var DeathMarker = donburi.NewComponentType[DeathMarkerData]()
var Souls = donburi.NewComponentType[SoulsData]()
