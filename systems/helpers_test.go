package systems

import (
	"testing"

	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/automoto/doomerang-monster/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeInput struct {
	axes [cfg.AxisCount]float64
	jump bool
}

func (f *fakeInput) Axis(id cfg.AxisID) float64 { return f.axes[id] }

func (f *fakeInput) Pressed(id cfg.ActionID) bool { return id == cfg.ActionJump && f.jump }

func (f *fakeInput) set(horizontal, vertical float64) {
	f.axes[cfg.AxisHorizontal] = horizontal
	f.axes[cfg.AxisVertical] = vertical
}

// newTestWorld wires the frame phase the same way the scenes do.
func newTestWorld(t *testing.T, start gamemath.Vec3, tuning cfg.MonsterConfig) (*ecs.ECS, *donburi.Entry, *fakeInput) {
	t.Helper()

	src := &fakeInput{}
	w := ecs.NewECS(donburi.NewWorld())
	w.AddSystem(UpdateInput(src))
	w.AddSystem(UpdateJumpTrigger)
	w.AddSystem(UpdateMotion)
	w.AddSystem(UpdateAnimator)

	monster, err := factory.CreateMonster(w, start, tuning)
	require.NoError(t, err)
	return w, monster, src
}

// tick runs one frame followed by one fixed step of the same length.
func tick(w *ecs.ECS, dt float64) {
	clock := GetClock(w)
	clock.FrameDelta = dt
	clock.FixedDelta = dt
	w.Update()
	UpdateIntegration(w)
}

func ticks(w *ecs.ECS, n int, dt float64) {
	for i := 0; i < n; i++ {
		tick(w, dt)
	}
}

func transformOf(e *donburi.Entry) *components.TransformData { return components.Transform.Get(e) }
func motionOf(e *donburi.Entry) *components.MotionData       { return components.Motion.Get(e) }
func jumpOf(e *donburi.Entry) *components.JumpData           { return components.Jump.Get(e) }
func animatorOf(e *donburi.Entry) *components.AnimatorData   { return components.Animator.Get(e) }
