package gamemath

// SteerToward returns a velocity that moves from toward to on the ground
// plane at speed, keeping the vertical component of current. When the two
// points share a ground position the horizontal velocity is zero.
func SteerToward(current, from, to Vec3, speed float64) Vec3 {
	dir := to.Sub(from).Horizontal().Normalize()
	return Vec3{X: dir.X * speed, Y: current.Y, Z: dir.Z * speed}
}

// StopHorizontal zeroes the ground-plane components only.
func StopHorizontal(v Vec3) Vec3 {
	return Vec3{Y: v.Y}
}

// Clamp clamps a value to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUnit clamps a value to [0, max] and is used for the resource pools.
func ClampUnit(v, max float64) float64 {
	return Clamp(v, 0, max)
}
