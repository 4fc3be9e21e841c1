package components

import (
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the pose the renderer reads: a world position and a yaw
// about the vertical axis, in degrees.
type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64
}

var Transform = donburi.NewComponentType[TransformData]()
