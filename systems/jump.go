package systems

import (
	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/logger"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/automoto/doomerang-monster/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// JumpEvent reports what a jump step crossed.
type JumpEvent int

const (
	JumpEventNone JumpEvent = iota
	JumpEventApex
	JumpEventLanded
)

// UpdateJumpTrigger starts a jump on a fresh jump press. Held presses and
// presses during a jump are ignored.
func UpdateJumpTrigger(ecs *ecs.ECS) {
	tags.Monster.Each(ecs.World, func(e *donburi.Entry) {
		input := components.MotorInput.Get(e)
		if !GetAction(input, cfg.ActionJump).JustPressed {
			return
		}

		jump := components.Jump.Get(e)
		monster := components.Monster.Get(e)
		transform := components.Transform.Get(e)
		if !StartJump(jump, transform.Position, monster.JumpHeight, monster.JumpDuration) {
			return
		}

		if e.HasComponent(components.Animator) {
			components.Animator.Get(e).SetBool(cfg.Motor.JumpingParam, true)
		}
		logger.L().Debug("jump started",
			"entity", e.Entity(),
			"start", jump.Start,
			"height", monster.JumpHeight,
			"duration", monster.JumpDuration)
	})
}

// StartJump arms the jump from start. It returns false if a jump is already
// in progress.
func StartJump(jump *components.JumpData, start gamemath.Vec3, height, duration float64) bool {
	if jump.Active() {
		return false
	}

	half := duration / 2
	jump.Phase = components.JumpAscending
	jump.Start = start
	jump.Peak = start.Add(gamemath.Up.Scale(height))
	jump.Half = half
	jump.Elapsed = 0
	jump.Airborne = 0
	jump.Ascend = gween.New(0, float32(height), float32(half), ease.Linear)
	jump.Descend = gween.New(float32(height), 0, float32(half), ease.Linear)
	return true
}

// AdvanceJump moves the jump forward by dt and returns the position for this
// step. Time left over when a phase ends carries into the next one. On
// landing the position is exactly the recorded start.
func AdvanceJump(jump *components.JumpData, dt float64) (gamemath.Vec3, JumpEvent) {
	if !jump.Active() {
		return jump.Start, JumpEventNone
	}

	jump.Elapsed += dt
	jump.Airborne++
	event := JumpEventNone

	if jump.Phase == components.JumpAscending {
		if jump.Elapsed < jump.Half {
			lift, _ := jump.Ascend.Set(float32(jump.Elapsed))
			return jump.Start.Add(gamemath.Up.Scale(float64(lift))), event
		}
		jump.Elapsed -= jump.Half
		jump.Phase = components.JumpDescending
		event = JumpEventApex
		if jump.Elapsed == 0 {
			return jump.Peak, event
		}
	}

	if jump.Elapsed < jump.Half {
		lift, _ := jump.Descend.Set(float32(jump.Elapsed))
		return jump.Start.Add(gamemath.Up.Scale(float64(lift))), event
	}

	jump.Phase = components.JumpIdle
	jump.Elapsed = 0
	return jump.Start, JumpEventLanded
}
