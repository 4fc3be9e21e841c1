package systems

import (
	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/automoto/doomerang-monster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion smooths each monster's input into a facing angle and a
// velocity using the frame delta.
func UpdateMotion(ecs *ecs.ECS) {
	dt := GetClock(ecs).FrameDelta

	tags.Monster.Each(ecs.World, func(e *donburi.Entry) {
		input := components.MotorInput.Get(e)
		monster := components.Monster.Get(e)
		motion := components.Motion.Get(e)

		StepMotion(motion, monster.MonsterConfig,
			input.Axes[cfg.AxisHorizontal], input.Axes[cfg.AxisVertical], dt)
	})
}

// StepMotion advances motion by one frame of dt seconds for the given raw
// axis values. It only depends on its arguments.
func StepMotion(motion *components.MotionData, tuning cfg.MonsterConfig, horizontal, vertical, dt float64) {
	dir := gamemath.Vec3{X: horizontal, Z: vertical}.Normalized()
	motion.InputMagnitude = dir.Len()

	motion.SmoothInput = gamemath.SmoothDamp(
		motion.SmoothInput, motion.InputMagnitude,
		&motion.SmoothInputVelocity, tuning.SmoothMoveTime, dt)

	// With no input the turn rate is zero, so the atan2(0, 0) target is inert.
	motion.TargetAngle = gamemath.Heading(dir)
	motion.Angle = gamemath.LerpAngle(motion.Angle, motion.TargetAngle,
		dt*tuning.TurnSpeed*motion.InputMagnitude)

	velocity := gamemath.Forward(motion.Angle).Scale(tuning.MoveSpeed * motion.SmoothInput)
	velocity = gamemath.ClampMagnitude(velocity, cfg.Motor.MaxVelocity)
	motion.Velocity = gamemath.SnapToZero(velocity, cfg.Motor.VelocityEpsilon)
}
