package systems

import (
	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/logger"
	"github.com/automoto/doomerang-monster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntegration runs once per fixed step. Yaw always follows the facing
// angle; position follows velocity unless a jump owns it for this step.
func UpdateIntegration(ecs *ecs.ECS) {
	dt := GetClock(ecs).FixedDelta

	tags.Monster.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		motion := components.Motion.Get(e)
		jump := components.Jump.Get(e)

		transform.Yaw = motion.Angle

		if !jump.Active() {
			transform.Position = transform.Position.Add(motion.Velocity.Scale(dt))
			return
		}

		pos, event := AdvanceJump(jump, dt)
		transform.Position = pos

		switch event {
		case JumpEventApex:
			logger.L().Debug("jump apex", "entity", e.Entity(), "peak", jump.Peak)
		case JumpEventLanded:
			if e.HasComponent(components.Animator) {
				components.Animator.Get(e).SetBool(cfg.Motor.JumpingParam, false)
			}
			logger.L().Debug("jump landed", "entity", e.Entity(), "position", pos, "steps", jump.Airborne)
		}
	})
}
