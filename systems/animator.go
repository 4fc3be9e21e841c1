package systems

import (
	"math"

	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimator pushes speed and jump state into each monster's animation
// parameters, picks the matching pose and advances its clip.
func UpdateAnimator(ecs *ecs.ECS) {
	dt := GetClock(ecs).FrameDelta

	tags.Monster.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animator.Get(e)
		motion := components.Motion.Get(e)
		jump := components.Jump.Get(e)
		monster := components.Monster.Get(e)

		anim.SetFloat(cfg.Motor.VelocityParam, math.Abs(motion.Speed()))
		anim.SetBool(cfg.Motor.JumpingParam, jump.Active())
		anim.SetState(animationState(anim))

		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt * clipRate(anim, monster.MoveSpeed))
		}
	})
}

func animationState(anim *components.AnimatorData) cfg.StateID {
	switch {
	case anim.Bool(cfg.Motor.JumpingParam):
		return cfg.Jump
	case anim.Float(cfg.Motor.VelocityParam) > cfg.Motor.WalkThreshold:
		return cfg.Walk
	default:
		return cfg.Idle
	}
}

// clipRate scales the walk cycle with speed so feet keep up with the ground.
func clipRate(anim *components.AnimatorData, moveSpeed float64) float64 {
	if anim.CurrentState != cfg.Walk || moveSpeed <= 0 {
		return 1
	}
	t := anim.Float(cfg.Motor.VelocityParam) / moveSpeed
	if t > 1 {
		t = 1
	}
	return cfg.Animation.MinWalkRate + (cfg.Animation.MaxWalkRate-cfg.Animation.MinWalkRate)*t
}
