package gamemath

import "math"

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls and must be kept by the
// caller. smoothTime is roughly the time to reach the target; the result
// never overshoots target.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	if (target-current > 0) == (out > target) {
		out = target
		*velocity = 0
	}
	return out
}

// Repeat wraps t into [0, length).
func Repeat(t, length float64) float64 {
	return t - math.Floor(t/length)*length
}

// NormalizeAngle wraps degrees into [-180, 180).
func NormalizeAngle(deg float64) float64 {
	return Repeat(deg+180, 360) - 180
}

// DeltaAngle is the shortest signed difference from a to b in degrees.
func DeltaAngle(a, b float64) float64 {
	d := Repeat(b-a, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// LerpAngle interpolates between two headings in degrees along the shortest
// arc, so crossing the -180/180 seam never spins the long way round. t is
// clamped to [0, 1] and the result is normalized.
func LerpAngle(a, b, t float64) float64 {
	return NormalizeAngle(a + DeltaAngle(a, b)*Clamp01(t))
}

// Heading returns the yaw in degrees of a planar direction, measured from +Z
// toward +X.
func Heading(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z) * 180 / math.Pi
}

// Forward is the unit vector a character with the given yaw faces.
func Forward(yawDeg float64) Vec3 {
	r := yawDeg * math.Pi / 180
	return Vec3{X: math.Sin(r), Z: math.Cos(r)}
}
