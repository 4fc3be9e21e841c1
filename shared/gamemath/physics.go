package gamemath

// ClampMagnitude scales v down so its length does not exceed max.
func ClampMagnitude(v Vec3, max float64) Vec3 {
	if l := v.Len(); l > max {
		return v.Scale(max / l)
	}
	return v
}

// SnapToZero returns Zero when v is shorter than epsilon, so a decaying
// velocity stops instead of drifting forever.
func SnapToZero(v Vec3, epsilon float64) Vec3 {
	if v.Len() < epsilon {
		return Zero
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
