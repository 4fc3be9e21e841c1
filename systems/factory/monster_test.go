package factory

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/automoto/doomerang-monster/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateMonster(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	pos := gamemath.Vec3{X: 3, Z: -1}

	monster, err := CreateMonster(w, pos, cfg.Monster)
	require.NoError(t, err)

	assert.True(t, monster.HasComponent(tags.Monster))
	assert.Equal(t, pos, components.Transform.Get(monster).Position)
	assert.Equal(t, cfg.Monster, components.Monster.Get(monster).MonsterConfig)
	assert.False(t, components.Jump.Get(monster).Active())
	assert.Equal(t, cfg.Idle, components.Animator.Get(monster).CurrentState)
	assert.NotNil(t, components.Animator.Get(monster).Floats)
}

func TestCreateMonster_RejectsInvalidTuning(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	tuning := cfg.Monster
	tuning.JumpDuration = 0

	monster, err := CreateMonster(w, gamemath.Zero, tuning)
	assert.Nil(t, monster)
	assert.True(t, errors.Is(err, cfg.ErrInvalidTuning))

	_, ok := tags.Monster.First(w.World)
	assert.False(t, ok, "nothing is spawned on error")
}
