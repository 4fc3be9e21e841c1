package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Normalized(t *testing.T) {
	n := Vec3{X: 1, Z: 1}.Normalized()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
	assert.InDelta(t, n.X, n.Z, 1e-12)

	assert.Equal(t, Zero, Zero.Normalized())
	assert.Equal(t, Zero, Vec3{X: 1e-7}.Normalized())
}

func TestLerp(t *testing.T) {
	a := Vec3{X: 1, Y: 0, Z: 2}
	b := a.Add(Up.Scale(2))

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.InDelta(t, 1.0, Lerp(a, b, 0.5).Y, 1e-12)
	assert.Equal(t, b, Lerp(a, b, 2))
}

func TestClampMagnitude(t *testing.T) {
	v := ClampMagnitude(Vec3{X: 30, Z: 40}, 7)
	assert.InDelta(t, 7.0, v.Len(), 1e-9)
	assert.InDelta(t, 0.6, v.X/7, 1e-9)

	short := Vec3{X: 1, Z: 1}
	assert.Equal(t, short, ClampMagnitude(short, 7))
}

func TestSnapToZero(t *testing.T) {
	assert.Equal(t, Zero, SnapToZero(Vec3{X: 0.005, Z: 0.005}, 0.01))
	kept := Vec3{X: 0.01}
	assert.Equal(t, kept, SnapToZero(kept, 0.01))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 1.0, ClampSpeed(3, 1))
	assert.Equal(t, -1.0, ClampSpeed(-3, 1))
	assert.Equal(t, 0.5, ClampSpeed(0.5, 1))
}
