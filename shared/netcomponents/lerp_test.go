package netcomponents

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpNetPosition(t *testing.T) {
	from := NetPositionData{X: 0, Y: 0, Z: 0, Yaw: 0.1}
	to := NetPositionData{X: 4, Y: 2, Z: -8, Yaw: 0.5}

	mid := LerpNetPosition(from, to, 0.5)
	assert.InDelta(t, 2, mid.X, 1e-9)
	assert.InDelta(t, 1, mid.Y, 1e-9)
	assert.InDelta(t, -4, mid.Z, 1e-9)
	assert.InDelta(t, 0.3, mid.Yaw, 1e-9)

	t.Run("yaw wraps the short way", func(t *testing.T) {
		from := NetPositionData{Yaw: math.Pi - 0.1}
		to := NetPositionData{Yaw: -math.Pi + 0.1}
		mid := LerpNetPosition(from, to, 0.5)
		assert.InDelta(t, math.Pi, mid.Yaw, 1e-9)
	})
}

func TestLerpNetVelocity(t *testing.T) {
	v := LerpNetVelocity(NetVelocityData{X: 1}, NetVelocityData{X: 3, Z: 2}, 0.25)
	assert.Equal(t, NetVelocityData{X: 1.5, Z: 0.5}, *v)
}
