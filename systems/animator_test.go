package systems

import (
	"testing"

	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestUpdateAnimator_ParametersTrackMotion(t *testing.T) {
	w, monster, src := newTestWorld(t, gamemath.Zero, cfg.Monster)

	tick(w, step)
	anim := animatorOf(monster)
	assert.Equal(t, 0.0, anim.Float(cfg.Motor.VelocityParam))
	assert.False(t, anim.Bool(cfg.Motor.JumpingParam))
	assert.Equal(t, cfg.Idle, anim.CurrentState)

	src.set(0, 1)
	ticks(w, 64, step)
	assert.Equal(t, motionOf(monster).Speed(), anim.Float(cfg.Motor.VelocityParam))
	assert.Equal(t, cfg.Walk, anim.CurrentState)
	assert.Equal(t, cfg.Idle, anim.PreviousState)
	assert.Greater(t, anim.StateTimer, 0)
}

func TestUpdateAnimator_StateTimerRestartsOnChange(t *testing.T) {
	w, monster, src := newTestWorld(t, gamemath.Zero, cfg.Monster)
	ticks(w, 5, step)
	assert.Equal(t, 5, animatorOf(monster).StateTimer)

	src.jump = true
	tick(w, step)
	assert.Equal(t, cfg.Jump, animatorOf(monster).CurrentState)
	assert.Equal(t, 0, animatorOf(monster).StateTimer)
}

func TestUpdateAnimator_ClipFollowsPose(t *testing.T) {
	w, monster, src := newTestWorld(t, gamemath.Zero, cfg.Monster)
	anim := animatorOf(monster)
	idle := cfg.Animation.Clips[cfg.Idle]
	assert.Equal(t, idle.First, anim.CurrentAnimation.Frame())

	src.set(1, 0)
	ticks(w, 32, step)
	walk := cfg.Animation.Clips[cfg.Walk]
	assert.Same(t, anim.Animations[cfg.Walk], anim.CurrentAnimation)
	assert.GreaterOrEqual(t, anim.CurrentAnimation.Frame(), walk.First)
	assert.LessOrEqual(t, anim.CurrentAnimation.Frame(), walk.Last)
	assert.True(t, anim.CurrentAnimation.Looped || anim.CurrentAnimation.Frame() > walk.First, "walk cycle advanced")
}

func TestClipRate(t *testing.T) {
	anim := components.NewAnimatorData(cfg.Animation.Clips)
	assert.Equal(t, 1.0, clipRate(&anim, cfg.Monster.MoveSpeed))

	anim.SetState(cfg.Walk)
	anim.SetFloat(cfg.Motor.VelocityParam, 0)
	assert.Equal(t, cfg.Animation.MinWalkRate, clipRate(&anim, 7))
	anim.SetFloat(cfg.Motor.VelocityParam, 20)
	assert.Equal(t, cfg.Animation.MaxWalkRate, clipRate(&anim, 7))
}
