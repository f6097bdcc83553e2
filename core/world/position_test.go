package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionDistance(t *testing.T) {
	a := Position{X: 0, Y: 0, Z: 0}
	b := Position{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, a.Distance(b), 1e-9)
	assert.InDelta(t, 5.0, b.Distance(a), 1e-9)
}

func TestPositionApproxEqual(t *testing.T) {
	a := Position{X: 100, Y: 200, Z: 3}
	assert.True(t, a.ApproxEqual(Position{X: 100.009, Y: 200, Z: 3}))
	assert.True(t, a.ApproxEqual(Position{X: 100, Y: 199.995, Z: 3.005}))
	assert.False(t, a.ApproxEqual(Position{X: 100.02, Y: 200, Z: 3}))
}

func TestPositionLessIsTotalOrder(t *testing.T) {
	a := Position{X: 1, Y: 5, Z: 0}
	b := Position{X: 1, Y: 6, Z: 0}
	c := Position{X: 2, Y: 0, Z: 0}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(c))
	assert.False(t, a.Less(a))
	assert.False(t, b.Less(a))
}

func TestPositionLerp(t *testing.T) {
	a := Position{X: 0, Y: 0, Z: 0}
	b := Position{X: 10, Y: 20, Z: 30}
	mid := a.Lerp(b, 0.5)
	assert.Equal(t, Position{X: 5, Y: 10, Z: 15}, mid)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}
