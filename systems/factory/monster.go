package factory

import (
	"fmt"

	"github.com/automoto/doomerang-monster/archetypes"
	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMonster spawns a monster at pos facing +Z with the given tunables.
func CreateMonster(ecs *ecs.ECS, pos gamemath.Vec3, tuning cfg.MonsterConfig) (*donburi.Entry, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("create monster: %w", err)
	}

	monster := archetypes.Monster.Spawn(ecs)

	components.Monster.SetValue(monster, components.MonsterData{MonsterConfig: tuning})
	components.Transform.SetValue(monster, components.TransformData{
		Position: pos,
		Yaw:      0,
	})
	components.Motion.SetValue(monster, components.MotionData{})
	components.MotorInput.SetValue(monster, components.MotorInputData{})
	components.Jump.SetValue(monster, components.JumpData{Phase: components.JumpIdle})
	components.Animator.SetValue(monster, components.NewAnimatorData(cfg.Animation.Clips))

	return monster, nil
}
