package gamemath

import "math"

// Vec3 is a 3D vector in world units. Y is up; the ground plane is X/Z.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero = Vec3{}
	Up   = Vec3{Y: 1}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns v scaled to unit length. Vectors too short to have a
// stable direction come back as Zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < 1e-5 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Lerp interpolates from a to b by t, clamped to [0, 1].
func Lerp(a, b Vec3, t float64) Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Scale(t))
}
