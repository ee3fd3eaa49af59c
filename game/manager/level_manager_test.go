package manager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var classic = LevelSchedule{
	IntervalTicks: 30,
	Decrease:      200 * time.Millisecond,
	Minimum:       300 * time.Millisecond,
}

func TestAdvanceLevelSchedule(t *testing.T) {
	level, interval := 1, 500*time.Millisecond

	for ticks := 1; ticks <= 90; ticks++ {
		prevLevel, prevInterval := level, interval
		level, interval = AdvanceLevel(ticks, level, interval, classic)

		assert.GreaterOrEqual(t, level, prevLevel)
		assert.LessOrEqual(t, interval, prevInterval)
		assert.GreaterOrEqual(t, interval, classic.Minimum)

		switch ticks {
		case 30:
			assert.Equal(t, 2, level)
			assert.Equal(t, 300*time.Millisecond, interval)
		case 60:
			assert.Equal(t, 3, level)
			assert.Equal(t, 300*time.Millisecond, interval)
		case 90:
			assert.Equal(t, 4, level)
		default:
			assert.Equal(t, prevLevel, level, "tick %d", ticks)
		}
	}
}

func TestAdvanceLevelSkipsTickZero(t *testing.T) {
	level, interval := AdvanceLevel(0, 1, 500*time.Millisecond, classic)

	assert.Equal(t, 1, level)
	assert.Equal(t, 500*time.Millisecond, interval)
}

func TestLevelManager(t *testing.T) {
	lm := NewLevelManager(LevelSchedule{IntervalTicks: 2, Decrease: 100 * time.Millisecond, Minimum: 250 * time.Millisecond}, 500*time.Millisecond)

	assert.False(t, lm.Update(1))
	assert.True(t, lm.Update(2))
	assert.Equal(t, 2, lm.Level())
	assert.Equal(t, 400*time.Millisecond, lm.Interval())

	lm.Update(4)
	lm.Update(6)
	assert.Equal(t, 4, lm.Level())
	assert.Equal(t, 250*time.Millisecond, lm.Interval())
}
