package components

import (
	"github.com/automoto/doomerang-monster/assets/animations"
	"github.com/automoto/doomerang-monster/config"
	"github.com/yohamta/donburi"
)

// AnimatorData is the parameter table an animation backend reads, plus the
// pose picked from it and that pose's frame clip.
type AnimatorData struct {
	Floats map[string]float64
	Bools  map[string]bool

	CurrentState     config.StateID
	PreviousState    config.StateID
	StateTimer       int // frames spent in CurrentState
	CurrentAnimation *animations.Animation
	Animations       map[config.StateID]*animations.Animation
}

// NewAnimatorData builds an animator in the Idle pose with one clip per
// configured state.
func NewAnimatorData(clips map[config.StateID]config.ClipConfig) AnimatorData {
	a := AnimatorData{
		Floats:        make(map[string]float64),
		Bools:         make(map[string]bool),
		CurrentState:  config.Idle,
		PreviousState: config.StateNone,
		Animations:    make(map[config.StateID]*animations.Animation, len(clips)),
	}
	for state, clip := range clips {
		anim := animations.NewAnimation(clip.First, clip.Last, clip.FPS)
		anim.FreezeOnComplete = clip.FreezeOnComplete
		a.Animations[state] = anim
	}
	a.CurrentAnimation = a.Animations[config.Idle]
	return a
}

func (a *AnimatorData) SetFloat(name string, v float64) {
	if a.Floats == nil {
		a.Floats = make(map[string]float64)
	}
	a.Floats[name] = v
}

func (a *AnimatorData) SetBool(name string, v bool) {
	if a.Bools == nil {
		a.Bools = make(map[string]bool)
	}
	a.Bools[name] = v
}

func (a *AnimatorData) Float(name string) float64 {
	return a.Floats[name]
}

func (a *AnimatorData) Bool(name string) bool {
	return a.Bools[name]
}

// SetState switches the pose and restarts its timer and clip. Setting the
// current state again keeps both running.
func (a *AnimatorData) SetState(state config.StateID) {
	if a.CurrentState == state {
		a.StateTimer++
		return
	}
	a.PreviousState = a.CurrentState
	a.CurrentState = state
	a.StateTimer = 0

	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart()
}

var Animator = donburi.NewComponentType[AnimatorData]()
