package clock

import "time"

// Pacer decides when a frame-driven loop should run the next tick.
// Frontends that own the main thread (raylib) poll Due once per frame
// instead of handing control to a Scheduler.
type Pacer struct {
	time       TimeProvider
	lastUpdate time.Time
	started    bool
}

func NewPacer(tp TimeProvider) *Pacer {
	if tp == nil {
		tp = RealTime{}
	}
	return &Pacer{time: tp}
}

// Due reports whether period has elapsed since the last tick and, if so,
// marks now as the last tick. The first call is always due.
func (p *Pacer) Due(period time.Duration) bool {
	now := p.time.Now()
	if p.started && now.Sub(p.lastUpdate) < period {
		return false
	}
	p.started = true
	p.lastUpdate = now
	return true
}

// Reset makes the next call to Due fire immediately.
func (p *Pacer) Reset() {
	p.started = false
}
