package systems

import (
	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/automoto/doomerang-monster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputSource supplies raw axes and digital actions for one frame.
type InputSource interface {
	Axis(id cfg.AxisID) float64
	Pressed(id cfg.ActionID) bool
}

// Advancer is implemented by sources that play back over time, such as
// recorded scripts. UpdateInput advances them after each poll.
type Advancer interface {
	Advance(dt float64)
}

// UpdateInput returns a system that snapshots src into every monster's
// MotorInput. Must run BEFORE UpdateJumpTrigger and UpdateMotion.
func UpdateInput(src InputSource) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		var snapshot components.MotorInputData
		for axis := cfg.AxisID(0); axis < cfg.AxisCount; axis++ {
			snapshot.Axes[axis] = gamemath.ClampSpeed(src.Axis(axis), 1)
		}
		for action := cfg.ActionID(0); action < cfg.ActionCount; action++ {
			snapshot.Current[action] = src.Pressed(action)
		}

		tags.Monster.Each(ecs.World, func(e *donburi.Entry) {
			input := components.MotorInput.Get(e)
			input.Previous = input.Current
			input.Current = snapshot.Current
			input.Axes = snapshot.Axes
		})

		if adv, ok := src.(Advancer); ok {
			adv.Advance(GetClock(ecs).FrameDelta)
		}
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.MotorInputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
