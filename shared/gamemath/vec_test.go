package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistances(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 3, Y: 12, Z: 4}

	assert.InDelta(t, 13.0, Distance(a, b), 1e-9)
	assert.InDelta(t, 5.0, HorizontalDistance(a, b), 1e-9)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestYawVectors(t *testing.T) {
	f := YawForward(0)
	assert.InDelta(t, 0, f.X, 1e-9)
	assert.InDelta(t, -1, f.Z, 1e-9)

	r := YawRight(0)
	assert.InDelta(t, 1, r.X, 1e-9)
	assert.InDelta(t, 0, r.Z, 1e-9)

	f = YawForward(math.Pi / 2)
	assert.InDelta(t, -1, f.X, 1e-9)
	assert.InDelta(t, 0, f.Z, 1e-9)

	for _, yaw := range []float64{0, 0.7, -2.1, math.Pi / 2} {
		assert.InDelta(t, yaw, YawOf(YawForward(yaw)), 1e-9)
	}
}

func TestSteerToward(t *testing.T) {
	t.Run("keeps vertical velocity", func(t *testing.T) {
		v := SteerToward(Vec3{Y: -2}, Vec3{}, Vec3{X: 10, Y: 5}, 3)
		assert.InDelta(t, 3, v.X, 1e-9)
		assert.InDelta(t, -2, v.Y, 1e-9)
		assert.InDelta(t, 0, v.Z, 1e-9)
	})

	t.Run("same ground position", func(t *testing.T) {
		v := SteerToward(Vec3{X: 1, Y: 1}, Vec3{}, Vec3{Y: 4}, 3)
		assert.Equal(t, Vec3{Y: 1}, v)
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, ClampUnit(-3, 10))
	assert.Equal(t, 10.0, ClampUnit(12, 10))
	assert.Equal(t, 4.0, ClampUnit(4, 10))
}
