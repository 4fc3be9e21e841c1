package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimation_LoopsThroughFrames(t *testing.T) {
	a := NewAnimation(4, 6, 4)
	assert.Equal(t, 4, a.Frame())

	var frames []int
	for i := 0; i < 8; i++ {
		// Slightly more than one period so float rounding cannot stall a frame
		a.Update(0.2501)
		frames = append(frames, a.Frame())
	}
	assert.Equal(t, []int{5, 6, 4, 5, 6, 4, 5, 6}, frames)
	assert.True(t, a.Looped)
}

func TestAnimation_FreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 2, 10)
	a.FreezeOnComplete = true

	a.Update(1)
	assert.Equal(t, 2, a.Frame())
	assert.True(t, a.Looped)

	a.Update(1)
	assert.Equal(t, 2, a.Frame())
}

func TestAnimation_LongDeltaSkipsFrames(t *testing.T) {
	a := NewAnimation(0, 9, 10)
	a.Update(0.35)
	assert.Equal(t, 3, a.Frame())
	assert.InDelta(t, 0.3, a.Progress(), 1e-9)
}

func TestAnimation_Restart(t *testing.T) {
	a := NewAnimation(1, 3, 5)
	a.Update(1)
	a.Restart()
	assert.Equal(t, 1, a.Frame())
	assert.False(t, a.Looped)
	assert.Equal(t, 0.0, a.Progress())
}

func TestAnimation_ZeroRateHolds(t *testing.T) {
	a := NewAnimation(2, 5, 0)
	a.Update(10)
	assert.Equal(t, 2, a.Frame())
}
