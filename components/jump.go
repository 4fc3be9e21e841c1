package components

import (
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// JumpPhase is the state of the scripted jump.
type JumpPhase int

const (
	JumpIdle JumpPhase = iota
	JumpAscending
	JumpDescending
)

func (p JumpPhase) String() string {
	switch p {
	case JumpAscending:
		return "ascending"
	case JumpDescending:
		return "descending"
	default:
		return "idle"
	}
}

// JumpData drives the two-phase jump arc. Start and Peak are captured at
// take-off; the arc is always replayed relative to them.
type JumpData struct {
	Phase    JumpPhase
	Start    gamemath.Vec3
	Peak     gamemath.Vec3
	Half     float64 // seconds per phase
	Elapsed  float64 // seconds into the current phase
	Ascend   *gween.Tween
	Descend  *gween.Tween
	Airborne int // completed fixed steps since take-off
}

// Active reports whether a jump is in progress.
func (j *JumpData) Active() bool {
	return j.Phase != JumpIdle
}

var Jump = donburi.NewComponentType[JumpData]()
