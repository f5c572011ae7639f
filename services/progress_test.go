package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-10, 1},
		{0, 1},
		{49, 1},
		{50, 2},
		{199, 2},
		{200, 3},
		{450, 4},
		{800, 5},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestXPForNextLevel(t *testing.T) {
	needed, ok := XPForNextLevel(0)
	assert.True(t, ok)
	assert.Equal(t, 50, needed)

	needed, ok = XPForNextLevel(60)
	assert.True(t, ok)
	assert.Equal(t, 140, needed)

	// Cap.
	_, ok = XPForNextLevel(50 * 49 * 49)
	assert.False(t, ok)
}

func TestLevelThresholdsAreMonotonic(t *testing.T) {
	prev := 0
	for level := 2; level <= maxLevel; level++ {
		cur := xpForLevel(level)
		assert.Greater(t, cur, prev)
		prev = cur
	}
}
