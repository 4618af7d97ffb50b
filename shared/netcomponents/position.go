package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

type NetPositionData struct {
	X, Y, Z float64
	Yaw     float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// LerpNetPosition interpolates between two positions. Yaw takes the short way
// around the circle.
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	turn := math.Remainder(to.Yaw-from.Yaw, 2*math.Pi)
	return &NetPositionData{
		X:   from.X + (to.X-from.X)*t,
		Y:   from.Y + (to.Y-from.Y)*t,
		Z:   from.Z + (to.Z-from.Z)*t,
		Yaw: from.Yaw + turn*t,
	}
}
