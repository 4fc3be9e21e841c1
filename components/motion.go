package components

import (
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MotionData is the smoothed movement state carried between frames.
type MotionData struct {
	Angle               float64       // current facing, degrees in [-180, 180)
	TargetAngle         float64       // heading of the latest input, degrees
	InputMagnitude      float64       // raw normalized input length, 0 or 1
	SmoothInput         float64       // smoothed input magnitude
	SmoothInputVelocity float64       // SmoothDamp spring state
	Velocity            gamemath.Vec3 // world units/second, planar
}

// Speed is the length of the current velocity.
func (m *MotionData) Speed() float64 {
	return m.Velocity.Len()
}

var Motion = donburi.NewComponentType[MotionData]()
