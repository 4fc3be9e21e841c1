package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothDamp_ConvergesWithoutOvershoot(t *testing.T) {
	current, velocity := 0.0, 0.0
	dt := 1.0 / 60

	for i := 0; i < 120; i++ {
		next := SmoothDamp(current, 1, &velocity, 0.1, dt)
		require.GreaterOrEqual(t, next, current, "frame %d moved away from target", i)
		require.LessOrEqual(t, next, 1.0, "frame %d overshot", i)
		current = next
	}
	assert.InDelta(t, 1.0, current, 1e-4)
}

func TestSmoothDamp_FollowsCriticallyDampedCurve(t *testing.T) {
	current, velocity := 0.0, 0.0
	dt := 1.0 / 1000

	// Elapsed time equal to the smoothing time leaves 1-3e^-2 of the way done.
	for i := 0; i < 100; i++ {
		current = SmoothDamp(current, 1, &velocity, 0.1, dt)
	}
	assert.InDelta(t, 1-3*math.Exp(-2), current, 5e-3)
}

func TestSmoothDamp_ZeroDeltaIsNoop(t *testing.T) {
	velocity := 0.5
	assert.Equal(t, 0.3, SmoothDamp(0.3, 1, &velocity, 0.1, 0))
	assert.Equal(t, 0.5, velocity)
}

func TestSmoothDamp_DecaysTowardZero(t *testing.T) {
	current, velocity := 1.0, 0.0
	prev := current
	for i := 0; i < 30; i++ {
		current = SmoothDamp(current, 0, &velocity, 0.1, 1.0/60)
		require.Less(t, current, prev)
		require.GreaterOrEqual(t, current, 0.0)
		prev = current
	}
}

func TestDeltaAngle(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"same", 10, 10, 0},
		{"positive", 10, 40, 30},
		{"negative", 40, 10, -30},
		{"across seam clockwise", 170, -170, 20},
		{"across seam counter clockwise", -170, 170, -20},
		{"half turn", 0, 180, 180},
		{"unnormalized input", 720, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DeltaAngle(tt.a, tt.b), 1e-9)
		})
	}
}

func TestLerpAngle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 90, 0, 0},
		{"end", 0, 90, 1, 90},
		{"middle", 0, 90, 0.5, 45},
		{"clamped above", 0, 90, 3, 90},
		{"clamped below", 0, 90, -1, 0},
		{"through seam", 170, -170, 0.5, -180},
		{"past seam", 170, -170, 0.75, -175},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LerpAngle(tt.a, tt.b, tt.t), 1e-9)
		})
	}
}

func TestLerpAngle_ContinuousAcrossSeam(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	angle := 0.0
	const step = 0.2

	for i := 0; i < 5000; i++ {
		target := rng.Float64()*360 - 180
		next := LerpAngle(angle, target, step)

		require.GreaterOrEqual(t, next, -180.0)
		require.Less(t, next, 180.0)
		// The heading never moves more than step of the shortest arc.
		assert.LessOrEqual(t, math.Abs(DeltaAngle(angle, next)), math.Abs(DeltaAngle(angle, target))*step+1e-9)
		angle = next
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, -180.0, NormalizeAngle(180), 1e-9)
	assert.InDelta(t, 90.0, NormalizeAngle(450), 1e-9)
	assert.InDelta(t, -90.0, NormalizeAngle(270), 1e-9)
	assert.InDelta(t, 0.0, NormalizeAngle(-360), 1e-9)
}

func TestHeadingAndForward(t *testing.T) {
	assert.InDelta(t, 0.0, Heading(Vec3{Z: 1}), 1e-9)
	assert.InDelta(t, 90.0, Heading(Vec3{X: 1}), 1e-9)
	assert.InDelta(t, -90.0, Heading(Vec3{X: -1}), 1e-9)
	assert.InDelta(t, 180.0, Heading(Vec3{Z: -1}), 1e-9)
	assert.Equal(t, 0.0, Heading(Zero))

	for _, yaw := range []float64{-135, -90, 0, 45, 90, 179} {
		fwd := Forward(yaw)
		assert.InDelta(t, 1.0, fwd.Len(), 1e-9)
		assert.InDelta(t, yaw, Heading(fwd), 1e-9)
	}
}
