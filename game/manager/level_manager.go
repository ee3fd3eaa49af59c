package manager

import "time"

// LevelSchedule holds the difficulty tuning.
type LevelSchedule struct {
	IntervalTicks int
	Decrease      time.Duration
	Minimum       time.Duration
}

// AdvanceLevel bumps the level and shortens the tick interval every
// IntervalTicks ticks, never below Minimum. Tick zero never levels up.
func AdvanceLevel(ticks, level int, interval time.Duration, s LevelSchedule) (int, time.Duration) {
	if ticks <= 0 || s.IntervalTicks <= 0 || ticks%s.IntervalTicks != 0 {
		return level, interval
	}
	level++
	interval -= s.Decrease
	if interval < s.Minimum {
		interval = s.Minimum
	}
	return level, interval
}

type LevelManager struct {
	schedule LevelSchedule
	level    int
	interval time.Duration
}

func NewLevelManager(schedule LevelSchedule, initial time.Duration) *LevelManager {
	return &LevelManager{
		schedule: schedule,
		level:    1,
		interval: initial,
	}
}

// Update applies AdvanceLevel for the given tick count and reports whether
// the level changed.
func (lm *LevelManager) Update(ticks int) bool {
	level, interval := AdvanceLevel(ticks, lm.level, lm.interval, lm.schedule)
	changed := level != lm.level
	lm.level, lm.interval = level, interval
	return changed
}

func (lm *LevelManager) Level() int {
	return lm.level
}

func (lm *LevelManager) Interval() time.Duration {
	return lm.interval
}
