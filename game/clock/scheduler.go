package clock

import (
	"context"
	"time"
)

// Scheduler runs a repeating task whose period may change between cycles.
//
// The task runs first, then the scheduler waits period() before running it
// again; period is read fresh for every wait, so a change made inside the
// task applies from the next wait on. Callbacks received on inbox run on
// the scheduler's goroutine between ticks, never concurrently with the
// task. Run returns nil once the task reports false.
type Scheduler interface {
	Run(ctx context.Context, period func() time.Duration, task func() bool, inbox <-chan func()) error
}

// Loop is a Scheduler backed by real timers.
type Loop struct{}

func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) Run(ctx context.Context, period func() time.Duration, task func() bool, inbox <-chan func()) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !task() {
			return nil
		}

		timer := time.NewTimer(period())
	wait:
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case f, ok := <-inbox:
				if !ok {
					inbox = nil
					continue
				}
				f()
			case <-timer.C:
				break wait
			}
		}
	}
}

// Virtual is a Scheduler that never sleeps: each wait advances Clock by the
// requested period. Pending inbox callbacks are drained before every tick.
type Virtual struct {
	Clock *MockTime
	// MaxTicks stops the run after this many ticks; zero means no limit.
	MaxTicks int
	// Periods records every wait that was requested, in order.
	Periods []time.Duration
}

// NewVirtual creates a virtual scheduler starting at the Unix epoch.
func NewVirtual(maxTicks int) *Virtual {
	return &Virtual{
		Clock:    NewMockTime(time.Unix(0, 0)),
		MaxTicks: maxTicks,
	}
}

func (v *Virtual) Run(ctx context.Context, period func() time.Duration, task func() bool, inbox <-chan func()) error {
	for n := 0; v.MaxTicks == 0 || n < v.MaxTicks; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		inbox = drain(inbox)
		if !task() {
			return nil
		}
		p := period()
		v.Periods = append(v.Periods, p)
		v.Clock.Advance(p)
	}
	return nil
}

func drain(inbox <-chan func()) <-chan func() {
	for inbox != nil {
		select {
		case f, ok := <-inbox:
			if !ok {
				return nil
			}
			f()
		default:
			return inbox
		}
	}
	return nil
}
